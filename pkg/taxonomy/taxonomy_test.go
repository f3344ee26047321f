package taxonomy_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnsyn/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func TestParseSearch(t *testing.T) {
	tests := []struct {
		msg   string
		data  []byte
		found bool
		id    taxonomy.ID
	}{
		{
			msg:   "first id is used",
			data:  readFixture(t, "esearch_found.xml"),
			found: true,
			id:    "4081",
		},
		{
			msg:  "empty id list",
			data: readFixture(t, "esearch_empty.xml"),
		},
		{
			msg:  "no id list",
			data: []byte(`<eSearchResult><Count>0</Count></eSearchResult>`),
		},
		{
			msg: "blank ids are skipped",
			data: []byte(`<eSearchResult><IdList><Id> </Id><Id>9606</Id>` +
				`</IdList></eSearchResult>`),
			found: true,
			id:    "9606",
		},
	}

	for _, v := range tests {
		res, err := taxonomy.ParseSearch(v.data)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.found, res.Found, v.msg)
		assert.Equal(t, v.id, res.Value, v.msg)
	}
}

func TestParseSearchMalformed(t *testing.T) {
	res, err := taxonomy.ParseSearch([]byte(`<eSearchResult><IdList>`))
	assert.Error(t, err)
	assert.False(t, res.Found)
}

func TestParseRecord(t *testing.T) {
	res, err := taxonomy.ParseRecord(readFixture(t, "efetch_tomato.xml"))
	require.NoError(t, err)
	require.True(t, res.Found)

	rec := res.Value
	assert.Equal(t, taxonomy.ID("4081"), rec.ID)
	assert.Equal(t, "Solanum lycopersicum", rec.ScientificName)
	assert.Equal(t, []string{
		"Lycopersicon esculentum",
		"Solanum esculentum",
		"Lycopersicon lycopersicum",
		"tomato",
		"garden tomato",
		"Solanum lycopersicum L.",
	}, rec.Synonyms)
}

func TestExtractSynonyms(t *testing.T) {
	tests := []struct {
		msg  string
		data []byte
		res  []string
	}{
		{
			msg:  "no other names",
			data: readFixture(t, "efetch_no_other_names.xml"),
			res:  []string{},
		},
		{
			msg:  "no taxon",
			data: []byte(`<TaxaSet></TaxaSet>`),
			res:  []string{},
		},
		{
			msg: "error document",
			data: []byte(`<eFetchResult><ERROR>ID list is empty!` +
				`</ERROR></eFetchResult>`),
			res: []string{},
		},
		{
			msg: "field kinds order",
			data: []byte(`<TaxaSet><Taxon><TaxId>1</TaxId><OtherNames>` +
				`<CommonName>c</CommonName>` +
				`<Name><DispName>n</DispName></Name>` +
				`<GenbankCommonName>gc</GenbankCommonName>` +
				`<GenbankSynonym>gs</GenbankSynonym>` +
				`<EquivalentName>e</EquivalentName>` +
				`<Synonym>s</Synonym>` +
				`</OtherNames></Taxon></TaxaSet>`),
			res: []string{"s", "e", "gs", "gc", "c", "n"},
		},
		{
			msg: "case sensitive dedupe",
			data: []byte(`<TaxaSet><Taxon><OtherNames>` +
				`<Synonym>Tomato</Synonym>` +
				`<CommonName>tomato</CommonName>` +
				`<CommonName>Tomato</CommonName>` +
				`</OtherNames></Taxon></TaxaSet>`),
			res: []string{"Tomato", "tomato"},
		},
	}

	for _, v := range tests {
		res, err := taxonomy.ExtractSynonyms(v.data)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestExtractSynonymsMalformed(t *testing.T) {
	res, err := taxonomy.ExtractSynonyms([]byte("not xml at all <"))
	assert.Error(t, err)
	assert.Empty(t, res)
}

func TestDedupe(t *testing.T) {
	res := taxonomy.Dedupe([]string{" a", "b", "", "a", "  ", "B", "b "})
	assert.Equal(t, []string{"a", "b", "B"}, res)
	assert.Equal(t, []string{}, taxonomy.Dedupe(nil))
}

func TestJoinSynonyms(t *testing.T) {
	assert.Equal(t, "a; b; c", taxonomy.JoinSynonyms([]string{"a", "b", "c"}))
	assert.Equal(t, "", taxonomy.JoinSynonyms(nil))
}

func TestLookup(t *testing.T) {
	f := taxonomy.Found(taxonomy.ID("42"))
	assert.True(t, f.Found)
	assert.Equal(t, taxonomy.ID("42"), f.Value)

	a := taxonomy.Absent[taxonomy.ID]()
	assert.False(t, a.Found)
	assert.Equal(t, taxonomy.ID(""), a.Value)
}
