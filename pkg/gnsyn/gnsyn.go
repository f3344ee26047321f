package gnsyn

import (
	"context"
)

// Runner enriches a table of food names with NCBI synonyms.
// Configuration is provided during construction.
type Runner interface {
	// Run reads the input table, adds synonyms_ncbi column and writes
	// the result. Failures of remote lookups do not stop the run, they
	// produce empty synonyms.
	Run(ctx context.Context) error
}
