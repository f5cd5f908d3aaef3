package listing

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Contains reports whether any field contains term, ignoring case.
// An empty term matches everything.
func Contains(term string, fields ...string) bool {
	if term == "" {
		return true
	}

	// A Caser keeps state, so each call gets its own.
	fold := cases.Fold()
	needle := fold.String(term)
	for _, field := range fields {
		if strings.Contains(fold.String(field), needle) {
			return true
		}
	}

	return false
}

// UniqueSorted derives a facet: the distinct non-empty values, sorted.
func UniqueSorted(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	slices.Sort(out)

	return slices.Compact(out)
}

// MatchesExact is an exact-match filter predicate that ignores case.
// An empty want matches everything.
func MatchesExact(want, got string) bool {
	return want == "" || strings.EqualFold(want, got)
}

// Filter keeps the items satisfying pred, preserving order.
func Filter[T any](items []T, pred func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}

	return out
}
