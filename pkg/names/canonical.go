package names

import (
	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
)

// Canonicalizer converts a scientific name to its canonical form
// (a name without authors, years and other annotations).
type Canonicalizer interface {
	// Canonical returns the simple canonical form of a name and true,
	// or an empty string and false if the name could not be parsed.
	Canonical(name string) (string, bool)
}

type canonicalizer struct {
	parser gnparser.GNparser
}

// NewCanonicalizer creates a Canonicalizer backed by GNparser.
// Most food names are plants and fungi, so botanical code is used.
// It is not safe for concurrent use.
func NewCanonicalizer() Canonicalizer {
	cfg := gnparser.NewConfig(gnparser.OptCode(nomcode.Botanical))
	return &canonicalizer{parser: gnparser.New(cfg)}
}

func (c *canonicalizer) Canonical(name string) (string, bool) {
	parsed := c.parser.ParseName(name)
	if !parsed.Parsed {
		return "", false
	}

	res := parsed.Canonical.Simple
	return res, res != ""
}
