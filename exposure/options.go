package exposure

import (
	"maps"
	"slices"
)

// Options is an exposure option set keyed by option name.
type Options map[Key]any

// Clone returns a shallow copy. A nil set clones to an empty one.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	maps.Copy(out, o)

	return out
}

// SortedKeys returns the keys in lexical order.
func (o Options) SortedKeys() []Key {
	return slices.Sorted(maps.Keys(o))
}

// ValidateOptions checks that every key of raw is recognized and rewrites the
// deprecated with key to using. raw is not modified.
//
// The first unrecognized key in lexical order is reported as an
// *InvalidOptionError.
func ValidateOptions(raw Options) (Options, error) {
	for _, k := range raw.SortedKeys() {
		if !k.IsValid() {
			return nil, &InvalidOptionError{Key: k}
		}
	}

	out := raw.Clone()
	if v, ok := out[KeyWith]; ok {
		delete(out, KeyWith)
		out[KeyUsing] = v
	}

	return out, nil
}
