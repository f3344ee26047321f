package enrich

// Stats summarizes the work done by Enricher.
type Stats struct {
	// Keys is the number of identity keys that have search candidates.
	Keys int
	// ResolvedKeys is the number of keys resolved to a taxonomy ID.
	ResolvedKeys int
	// Queries is the number of distinct query strings sent to search.
	Queries int
	// IDs is the number of distinct taxonomy IDs synonyms were fetched for.
	IDs int
}
