// Package taxonomy contains types of NCBI Taxonomy lookups, parsers of
// E-utilities XML responses and interfaces of services that perform the
// lookups. This is a pure package - no I/O.
package taxonomy

import (
	"context"
	"strings"
)

// Separator joins synonyms in the output field.
const Separator = "; "

// ID is an opaque NCBI taxonomy identifier (taxid).
type ID string

// Lookup is a result of a lookup that might find nothing. Not finding
// anything is a normal outcome, not an error.
type Lookup[T any] struct {
	Value T
	Found bool
}

// Found wraps a value of a successful lookup.
func Found[T any](v T) Lookup[T] {
	return Lookup[T]{Value: v, Found: true}
}

// Absent is the result of a lookup that found nothing.
func Absent[T any]() Lookup[T] {
	return Lookup[T]{}
}

// Searcher resolves a name to a taxonomy ID.
type Searcher interface {
	// Search sends a query to the taxonomy name index and returns the first
	// ID it finds. Failures are reported by the implementation and
	// returned as Absent.
	Search(ctx context.Context, query string) Lookup[ID]
}

// Fetcher retrieves synonyms of a taxonomy ID.
type Fetcher interface {
	// Fetch returns deduplicated synonyms of a taxon. Failures are reported
	// by the implementation and returned as an empty slice.
	Fetch(ctx context.Context, id ID) []string
}

// JoinSynonyms serializes synonyms into one field.
func JoinSynonyms(syns []string) string {
	return strings.Join(syns, Separator)
}

// Dedupe trims strings, drops empty ones and removes exact repeats,
// keeping the first occurrence order.
func Dedupe(ss []string) []string {
	seen := make(map[string]struct{}, len(ss))
	res := make([]string, 0, len(ss))
	for _, s := range ss {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		res = append(res, s)
	}
	return res
}
