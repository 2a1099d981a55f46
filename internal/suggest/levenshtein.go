package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// Levenshtein computes the edit distance between two strings, counting
// insertions, deletions and substitutions of runes.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// keep the row sized by the shorter string
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// Closest returns the candidates within maxDistance of name, nearest first.
// Comparison ignores case; ties keep candidate order.
func Closest(name string, candidates []string, maxDistance int) []string {
	type scored struct {
		name string
		dist int
	}

	needle := strings.ToLower(name)

	var found []scored

	for _, c := range candidates {
		d := Levenshtein(needle, strings.ToLower(c))
		if d <= maxDistance {
			found = append(found, scored{name: c, dist: d})
		}
	}

	slices.SortStableFunc(found, func(x, y scored) int {
		return cmp.Compare(x.dist, y.dist)
	})

	out := make([]string, len(found))
	for i, s := range found {
		out[i] = s.name
	}

	return out
}
