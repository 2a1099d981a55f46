package exposure

import (
	"maps"
	"reflect"
)

// Conditions is the map form of an if/unless predicate: named sub-conditions
// that all have to apply.
type Conditions map[string]any

// AsConditions reports whether v is a map-form predicate and returns it as
// Conditions. Any map with string-kinded keys qualifies, so values decoded
// from YAML or JSON work without conversion.
func AsConditions(v any) (Conditions, bool) {
	switch m := v.(type) {
	case Conditions:
		return m, true
	case map[string]any:
		return Conditions(m), true
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	out := make(Conditions, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}

	return out, true
}

// IsConditions returns true if v is a map-form predicate.
func IsConditions(v any) bool {
	_, ok := AsConditions(v)
	return ok
}

// Merge returns a new set holding c overlaid with other. Entries of other win.
func (c Conditions) Merge(other Conditions) Conditions {
	out := make(Conditions, len(c)+len(other))
	maps.Copy(out, c)
	maps.Copy(out, other)

	return out
}
