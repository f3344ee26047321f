// Package enrich resolves food names of table rows to NCBI taxonomy IDs
// and finds their synonyms. Remote lookups are delegated to
// taxonomy.Searcher and taxonomy.Fetcher; this package decides which
// lookups are necessary and remembers their results.
//
// Enricher is not safe for concurrent use. Rows are processed one by one
// because the remote service is rate limited anyway.
package enrich

import (
	"context"
	"log/slog"

	"github.com/gnames/gnsyn/pkg/names"
	"github.com/gnames/gnsyn/pkg/table"
	"github.com/gnames/gnsyn/pkg/taxonomy"
)

// Enricher adds NCBI synonyms to table rows. It keeps three caches:
// query string to ID, identity key to ID and ID to joined synonyms, so
// every distinct query, key and ID is looked up at most once.
type Enricher struct {
	searcher      taxonomy.Searcher
	fetcher       taxonomy.Fetcher
	canonicalizer names.Canonicalizer

	candidates   map[names.Key][]string
	queryCache   map[string]taxonomy.Lookup[taxonomy.ID]
	keyCache     map[names.Key]taxonomy.Lookup[taxonomy.ID]
	synonymCache map[taxonomy.ID]string
}

// Option modifies Enricher.
type Option func(*Enricher)

// OptCanonicalizer makes Enricher add canonical forms of scientific names
// to search candidates.
func OptCanonicalizer(c names.Canonicalizer) Option {
	return func(e *Enricher) {
		e.canonicalizer = c
	}
}

// New creates an Enricher with empty caches.
func New(
	s taxonomy.Searcher,
	f taxonomy.Fetcher,
	opts ...Option,
) *Enricher {
	res := &Enricher{
		searcher:     s,
		fetcher:      f,
		candidates:   make(map[names.Key][]string),
		queryCache:   make(map[string]taxonomy.Lookup[taxonomy.ID]),
		keyCache:     make(map[names.Key]taxonomy.Lookup[taxonomy.ID]),
		synonymCache: make(map[taxonomy.ID]string),
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Prepare computes identity keys and search candidates for all rows.
// The first candidates list of a key wins, later rows with the same key
// reuse it. Keys without candidates are not stored.
func (e *Enricher) Prepare(rows []table.Row) {
	for i, row := range rows {
		sci, com := row.Get(table.FoodSci), row.Get(table.FoodCom)
		key := names.BuildKey(sci, com, i)
		if _, ok := e.candidates[key]; ok {
			continue
		}

		queries := names.Candidates(sci, com, e.candidateOpts()...)
		if len(queries) > 0 {
			e.candidates[key] = queries
		}
	}
}

// EnrichRow returns the output row for the input row with the index idx.
// The index has to be the same as the one the row had in Prepare.
func (e *Enricher) EnrichRow(
	ctx context.Context,
	tbl *table.Table,
	idx int,
	row table.Row,
) table.Row {
	key := names.BuildKey(row.Get(table.FoodSci), row.Get(table.FoodCom), idx)

	var syns string
	if id := e.Resolve(ctx, key); id.Found {
		syns = e.Synonyms(ctx, id.Value)
	}
	return tbl.OutputRow(row, syns)
}

// Resolve returns a taxonomy ID for the key. It tries candidates of the
// key until one of them is found. The outcome, including Absent, is
// cached for the key.
func (e *Enricher) Resolve(
	ctx context.Context,
	key names.Key,
) taxonomy.Lookup[taxonomy.ID] {
	if res, ok := e.keyCache[key]; ok {
		return res
	}

	res := taxonomy.Absent[taxonomy.ID]()
	for _, query := range e.candidates[key] {
		res = e.search(ctx, query)
		if res.Found {
			break
		}
	}

	e.keyCache[key] = res
	slog.Debug("Resolved identity key",
		"key", key.String(),
		"key_id", key.ID(),
		"found", res.Found,
		"taxid", string(res.Value),
	)
	return res
}

// Synonyms returns synonyms of the ID joined into one string.
func (e *Enricher) Synonyms(ctx context.Context, id taxonomy.ID) string {
	if res, ok := e.synonymCache[id]; ok {
		return res
	}

	res := taxonomy.JoinSynonyms(e.fetcher.Fetch(ctx, id))
	e.synonymCache[id] = res
	return res
}

// Candidates returns search candidates prepared for the key.
func (e *Enricher) Candidates(key names.Key) []string {
	return e.candidates[key]
}

// Stats returns counters of the enrichment.
func (e *Enricher) Stats() Stats {
	res := Stats{
		Keys:    len(e.candidates),
		Queries: len(e.queryCache),
		IDs:     len(e.synonymCache),
	}
	for _, v := range e.keyCache {
		if v.Found {
			res.ResolvedKeys++
		}
	}
	return res
}

func (e *Enricher) search(
	ctx context.Context,
	query string,
) taxonomy.Lookup[taxonomy.ID] {
	if res, ok := e.queryCache[query]; ok {
		return res
	}

	res := e.searcher.Search(ctx, query)
	e.queryCache[query] = res
	return res
}

func (e *Enricher) candidateOpts() []names.CandidateOption {
	if e.canonicalizer == nil {
		return nil
	}
	return []names.CandidateOption{names.OptCanonical(e.canonicalizer)}
}
