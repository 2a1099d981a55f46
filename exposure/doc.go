// Package exposure validates and merges the option sets that describe how a
// single entity attribute is exposed.
//
// An exposure option set is a map from a small, closed set of keys to
// arbitrary values:
//
//	as             rename the attribute in the output
//	if, unless     inclusion predicates
//	using          nested entity used to render the value
//	with           deprecated alias of using, rewritten on validation
//	proc           custom value extractor
//	documentation  free-form documentation payload
//	format_with    value formatter
//	safe           suppress extraction errors
//	if_extras      predicates displaced while merging if
//	unless_extras  predicates displaced while merging unless
//
// # Layers
//
// Option sets are layered. Block options (shared by a group of declarations)
// are folded oldest first, then the declaration's own options are folded on
// top. Every key is last-write-wins except the two predicates.
//
// # Predicates
//
// An if/unless value is either a single predicate (any non-map value: a func,
// a bool, a predicate name) or a map of named sub-conditions. When two layers
// disagree on the form, the map form is kept and the single predicate is moved
// to the matching _extras list so nothing is silently dropped:
//
//	existing  incoming  result    extras
//	map       map       merged    -
//	single    map       incoming  existing
//	map       single    existing  incoming
//	single    single    incoming  -
//
// Predicates are never evaluated here; that is the job of the renderer.
package exposure
