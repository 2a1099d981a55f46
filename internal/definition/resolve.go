package definition

import (
	"errors"
	"fmt"

	"entity-exposure/exposure"
)

// ErrAsWithMultipleAttributes is returned when as is set on an exposure that
// declares several attributes.
var ErrAsWithMultipleAttributes = errors.New("as may only be used when exposing a single attribute")

// Resolve merges every exposure of every entity in f. opts are applied to each
// exposure.Config, after the block layers.
//
// Resolution stops at the first invalid option set. Use Validate to collect
// every problem.
func Resolve(f *File, opts ...exposure.ConfigOption) ([]ResolvedEntity, error) {
	if f == nil {
		return nil, errors.New("definition file is nil")
	}

	out := make([]ResolvedEntity, 0, len(f.Entities))

	for i := range f.Entities {
		e := &f.Entities[i]

		r := &resolver{
			stack: exposure.NewConfig(nil),
			opts:  opts,
		}

		exposures, err := r.scope(&e.Scope)
		if err != nil {
			return nil, fmt.Errorf("entity %s: %w", e.Name, err)
		}

		out = append(out, ResolvedEntity{Name: e.Name, Exposures: exposures})
	}

	return out, nil
}

type resolver struct {
	// stack carries the block layers of the current scope.
	stack *exposure.Config
	opts  []exposure.ConfigOption
}

func (r *resolver) scope(s *Scope) ([]ResolvedExposure, error) {
	if err := r.stack.PushBlockOptions(s.Options.ToOptions()); err != nil {
		return nil, err
	}
	defer r.stack.PopBlockOptions()

	var out []ResolvedExposure

	for i := range s.Exposures {
		x := &s.Exposures[i]

		if _, ok := x.Options[string(exposure.KeyAs)]; ok && len(x.Attributes) > 1 {
			return nil, fmt.Errorf("attributes %v: %w", []string(x.Attributes), ErrAsWithMultipleAttributes)
		}

		for _, attr := range x.Attributes {
			merged, err := r.merge(x.Options)
			if err != nil {
				return nil, fmt.Errorf("attribute %s: %w", attr, err)
			}

			out = append(out, ResolvedExposure{Attribute: attr, Options: merged})
		}
	}

	for i := range s.Blocks {
		nested, err := r.scope(&s.Blocks[i])
		if err != nil {
			return nil, err
		}

		out = append(out, nested...)
	}

	return out, nil
}

func (r *resolver) merge(raw RawOptions) (exposure.Options, error) {
	opts := make([]exposure.ConfigOption, 0, len(r.opts)+1)
	opts = append(opts, exposure.WithBlockOptions(r.stack.BlockOptions()...))
	opts = append(opts, r.opts...)

	return exposure.NewConfig(nil, opts...).MergeOptions(raw.ToOptions())
}
