package names

import (
	"strconv"

	"github.com/gnames/gnuuid"
)

// KeyKind tells which of the row fields produced an identity key.
type KeyKind int

const (
	// RowKey is a fallback for rows without any names.
	RowKey KeyKind = iota
	// ScientificKey is built from the scientific name.
	ScientificKey
	// CommonKey is built from the common name.
	CommonKey
)

// String returns a short prefix used in key representation.
func (k KeyKind) String() string {
	switch k {
	case ScientificKey:
		return "sci"
	case CommonKey:
		return "com"
	default:
		return "row"
	}
}

// Key groups rows that describe the same species, so remote lookups
// happen only once per key. Key is comparable and works as a map key.
type Key struct {
	Kind  KeyKind
	Value string
}

// BuildKey returns the scientific-name key if the normalized scientific
// name is not empty, otherwise the common-name key if the normalized common
// name is not empty, otherwise a key made from fallbackIndex.
func BuildKey(scientific, common string, fallbackIndex int) Key {
	if sci := Normalize(scientific); sci != "" {
		return Key{Kind: ScientificKey, Value: sci}
	}

	if com := Normalize(common); com != "" {
		return Key{Kind: CommonKey, Value: com}
	}

	return Key{Kind: RowKey, Value: strconv.Itoa(fallbackIndex)}
}

func (k Key) String() string {
	return k.Kind.String() + ":" + k.Value
}

// ID is a deterministic UUID v5 of the key, it is used to correlate
// log records about the same key.
func (k Key) ID() string {
	return gnuuid.New(k.String()).String()
}
