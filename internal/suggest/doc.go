// Package suggest ranks known names by edit distance to an unknown one.
package suggest
