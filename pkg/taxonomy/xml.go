package taxonomy

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// esearch.fcgi response.
type searchResult struct {
	IDList *struct {
		IDs []string `xml:"Id"`
	} `xml:"IdList"`
}

// efetch.fcgi response for db=taxonomy. Only direct Taxon children of the
// root are records, Taxon elements inside LineageEx are ancestors.
type taxaSet struct {
	Taxa []taxon `xml:"Taxon"`
}

type taxon struct {
	TaxID          string      `xml:"TaxId"`
	ScientificName string      `xml:"ScientificName"`
	OtherNames     *otherNames `xml:"OtherNames"`
}

type otherNames struct {
	Synonyms           []string    `xml:"Synonym"`
	EquivalentNames    []string    `xml:"EquivalentName"`
	GenbankSynonyms    []string    `xml:"GenbankSynonym"`
	GenbankCommonNames []string    `xml:"GenbankCommonName"`
	CommonNames        []string    `xml:"CommonName"`
	Names              []nameEntry `xml:"Name"`
}

type nameEntry struct {
	DispName string `xml:"DispName"`
}

// Record is a taxon from a taxonomy efetch response.
type Record struct {
	ID             ID
	ScientificName string
	// Synonyms are alternative names of the taxon in the following order:
	// synonyms, equivalent names, GenBank synonyms, GenBank common names,
	// common names, display names of other name entries.
	Synonyms []string
}

// ParseSearch returns the first ID from an esearch XML response.
// A response without IdList or with an empty list is Absent.
func ParseSearch(data []byte) (Lookup[ID], error) {
	var res searchResult
	if err := decode(data, &res); err != nil {
		return Absent[ID](), fmt.Errorf("cannot parse esearch response: %w", err)
	}

	if res.IDList == nil {
		return Absent[ID](), nil
	}

	for _, v := range res.IDList.IDs {
		v = strings.TrimSpace(v)
		if v != "" {
			return Found(ID(v)), nil
		}
	}
	return Absent[ID](), nil
}

// ParseRecord returns the first taxon of an efetch XML response.
// A response without Taxon is Absent.
func ParseRecord(data []byte) (Lookup[Record], error) {
	var set taxaSet
	if err := decode(data, &set); err != nil {
		return Absent[Record](), fmt.Errorf("cannot parse efetch response: %w", err)
	}

	if len(set.Taxa) == 0 {
		return Absent[Record](), nil
	}

	t := set.Taxa[0]
	res := Record{
		ID:             ID(strings.TrimSpace(t.TaxID)),
		ScientificName: strings.TrimSpace(t.ScientificName),
		Synonyms:       t.OtherNames.synonyms(),
	}
	return Found(res), nil
}

// ExtractSynonyms returns synonyms of the first taxon of an efetch
// response. Missing taxon or missing OtherNames section give an empty
// slice.
func ExtractSynonyms(data []byte) ([]string, error) {
	rec, err := ParseRecord(data)
	if err != nil {
		return []string{}, err
	}
	if !rec.Found {
		return []string{}, nil
	}
	return rec.Value.Synonyms, nil
}

func (o *otherNames) synonyms() []string {
	if o == nil {
		return []string{}
	}

	var res []string
	res = append(res, o.Synonyms...)
	res = append(res, o.EquivalentNames...)
	res = append(res, o.GenbankSynonyms...)
	res = append(res, o.GenbankCommonNames...)
	res = append(res, o.CommonNames...)
	for _, v := range o.Names {
		res = append(res, v.DispName)
	}
	return Dedupe(res)
}

func decode(data []byte, v any) error {
	// DOCTYPE directives of NCBI responses are skipped by the decoder.
	return xml.Unmarshal(data, v)
}
