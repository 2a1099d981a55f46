package exposure

import (
	"slices"
)

// Key is a recognized exposure option name.
type Key string

const (
	KeyAs            Key = "as"
	KeyIf            Key = "if"
	KeyUnless        Key = "unless"
	KeyUsing         Key = "using"
	KeyWith          Key = "with" // deprecated alias of KeyUsing
	KeyProc          Key = "proc"
	KeyDocumentation Key = "documentation"
	KeyFormatWith    Key = "format_with"
	KeySafe          Key = "safe"
	KeyIfExtras      Key = "if_extras"
	KeyUnlessExtras  Key = "unless_extras"
)

// knownKeys is the closed set of recognized keys, in declaration order.
var knownKeys = [...]Key{
	KeyAs,
	KeyIf,
	KeyUnless,
	KeyUsing,
	KeyWith,
	KeyProc,
	KeyDocumentation,
	KeyFormatWith,
	KeySafe,
	KeyIfExtras,
	KeyUnlessExtras,
}

// extrasKeys maps a predicate key to the key collecting its displaced values.
var extrasKeys = map[Key]Key{
	KeyIf:     KeyIfExtras,
	KeyUnless: KeyUnlessExtras,
}

// Keys returns all recognized keys in declaration order.
func Keys() []Key {
	return slices.Clone(knownKeys[:])
}

// IsValid returns true if the key is a recognized option.
func (k Key) IsValid() bool {
	return slices.Contains(knownKeys[:], k)
}

// IsPredicate returns true for the keys with map-aware merge semantics.
func (k Key) IsPredicate() bool {
	_, ok := extrasKeys[k]
	return ok
}

// ExtrasKey returns the key that collects displaced predicates for k.
// The second result is false when k is not a predicate key.
func (k Key) ExtrasKey() (Key, bool) {
	e, ok := extrasKeys[k]
	return e, ok
}

// String returns the option name.
func (k Key) String() string {
	return string(k)
}
