package definition

import (
	"fmt"
	"slices"
	"strings"

	"entity-exposure/exposure"
	"entity-exposure/internal/diagnostic"
	"entity-exposure/internal/suggest"
)

// maxSuggestDistance bounds the edit distance of suggested option names.
const maxSuggestDistance = 2

// Validate checks a definition file and reports every problem found. It never
// stops at the first error.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("definition_is_nil", "definition file is nil", "", "")
		return res
	}

	seenEntities := map[string]struct{}{}

	for i := range f.Entities {
		e := &f.Entities[i]

		name := e.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
			res.AddError("missing_entity_name", "entity has no name", name, "")
		} else if _, ok := seenEntities[name]; ok {
			res.AddError("duplicate_entity", fmt.Sprintf("duplicate entity %q", name), name, "")
		}

		seenEntities[name] = struct{}{}

		v := &scopeValidator{res: res, entity: name, seen: map[string]struct{}{}}
		v.scope(&e.Scope)
	}

	return res
}

type scopeValidator struct {
	res    *diagnostic.Diagnostics
	entity string
	// seen holds exposed attribute names.
	seen map[string]struct{}
}

func (v *scopeValidator) scope(s *Scope) {
	v.options(s.Options, "")

	for i := range s.Exposures {
		v.exposure(&s.Exposures[i])
	}

	for i := range s.Blocks {
		v.scope(&s.Blocks[i])
	}
}

func (v *scopeValidator) exposure(x *Exposure) {
	if len(x.Attributes) == 0 {
		v.res.AddError("missing_attributes", "exposure has no attributes", v.entity, "")
		return
	}

	v.options(x.Options, strings.Join(x.Attributes, ", "))

	for _, attr := range x.Attributes {
		if _, ok := v.seen[attr]; ok {
			v.res.AddWarning("duplicate_exposure",
				fmt.Sprintf("attribute %q is exposed more than once", attr), v.entity, attr)
		}

		v.seen[attr] = struct{}{}
	}

	if _, ok := x.Options[string(exposure.KeyAs)]; ok && len(x.Attributes) > 1 {
		v.res.AddError("as_with_multiple_attributes",
			ErrAsWithMultipleAttributes.Error(), v.entity, x.Attributes[0])
	}
}

func (v *scopeValidator) options(raw RawOptions, attr string) {
	names := optionNames()

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	for _, k := range keys {
		key := exposure.Key(k)

		switch {
		case !key.IsValid():
			v.res.AddError("invalid_option", (&exposure.InvalidOptionError{Key: key}).Error(),
				v.entity, attr, suggest.Closest(k, names, maxSuggestDistance)...)
		case key == exposure.KeyWith:
			v.res.AddWarning("deprecated_option", "with is deprecated", v.entity, attr,
				string(exposure.KeyUsing))
		case key == exposure.KeyIfExtras || key == exposure.KeyUnlessExtras:
			v.res.AddWarning("internal_option",
				fmt.Sprintf("%s is filled in by merging and should not be set", k), v.entity, attr)
		}
	}
}

func optionNames() []string {
	keys := exposure.Keys()

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == exposure.KeyWith {
			continue
		}

		out = append(out, k.String())
	}

	return out
}
