package names

import (
	"strings"
)

// placeholders are trailing species markers that make a name
// genus-only ("Allium sp.", "Citrus spp").
var placeholders = []string{" sp.", " sp", " spp.", " spp"}

type candidatesCfg struct {
	canonicalizer Canonicalizer
}

// CandidateOption modifies candidates generation.
type CandidateOption func(*candidatesCfg)

// OptCanonical adds a canonical form of the scientific name to the
// candidates, right before the common name.
func OptCanonical(c Canonicalizer) CandidateOption {
	return func(cfg *candidatesCfg) {
		cfg.canonicalizer = c
	}
}

// Candidates returns search strings for a row, most specific first:
// the scientific name; its genus if the name ends with a species
// placeholder, or the name without a trailing period; optionally the
// canonical form; the common name. The result has no duplicates and no
// empty strings. It is empty when both names are empty.
func Candidates(
	scientific, common string,
	opts ...CandidateOption,
) []string {
	var cfg candidatesCfg
	for _, opt := range opts {
		opt(&cfg)
	}

	var res []string
	sci := Normalize(scientific)
	com := Normalize(common)

	if sci != "" {
		res = append(res, sci)
		if genus, ok := stripPlaceholder(sci); ok {
			res = append(res, genus)
		} else if strings.HasSuffix(sci, ".") {
			res = append(res, strings.TrimSpace(sci[:len(sci)-1]))
		}

		if cfg.canonicalizer != nil {
			if can, ok := cfg.canonicalizer.Canonical(sci); ok {
				res = append(res, can)
			}
		}
	}

	if com != "" {
		res = append(res, com)
	}

	return unique(res)
}

// stripPlaceholder removes the last word if the name ends with
// a species placeholder.
func stripPlaceholder(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, v := range placeholders {
		if strings.HasSuffix(lower, v) {
			idx := strings.LastIndex(name, " ")
			return strings.TrimSpace(name[:idx]), true
		}
	}
	return "", false
}

func unique(ss []string) []string {
	seen := make(map[string]struct{}, len(ss))
	res := make([]string, 0, len(ss))
	for _, s := range ss {
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
