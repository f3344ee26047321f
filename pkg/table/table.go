// Package table describes the food names table that is read, enriched
// and written back. This is a pure package - no I/O.
package table

import (
	"errors"
	"fmt"
	"slices"
)

// Column names used by gnsyn.
const (
	FoodSci          = "food_sci"
	FoodCom          = "food_com"
	OpenTreeSynonyms = "synonyms_open_tree_of_life"
	WikiSynonyms     = "synonyms_wiki_search"
	NCBISynonyms     = "synonyms_ncbi"
)

var (
	// ErrNoHeader means the table does not have a header row.
	ErrNoHeader = errors.New("table has no header")

	// ErrMissingColumns means a required column is not in the header.
	ErrMissingColumns = errors.New("required columns are missing")
)

// Row maps column names to values.
type Row map[string]string

// Get returns value of a column or an empty string if the column
// does not exist.
func (r Row) Get(col string) string {
	return r[col]
}

// Table is a header with rows. The first column of the header is an
// index column, its name can be arbitrary.
type Table struct {
	Header []string
	Rows   []Row
}

// IndexField returns the name of the first column.
func (t *Table) IndexField() string {
	if len(t.Header) == 0 {
		return ""
	}
	return t.Header[0]
}

// Validate checks that the table has a header with food_sci and food_com
// columns.
func (t *Table) Validate() error {
	if len(t.Header) == 0 {
		return ErrNoHeader
	}

	var missing []string
	for _, v := range []string{FoodSci, FoodCom} {
		if !slices.Contains(t.Header, v) {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", ErrMissingColumns, missing)
	}
	return nil
}

// Limit keeps only the first n rows. Values less than 1 keep all rows.
func (t *Table) Limit(n int) {
	if n < 1 || n >= len(t.Rows) {
		return
	}
	t.Rows = t.Rows[:n]
}

// OutputHeader returns columns of the enriched table.
func (t *Table) OutputHeader() []string {
	return []string{
		t.IndexField(),
		FoodCom,
		FoodSci,
		OpenTreeSynonyms,
		WikiSynonyms,
		NCBISynonyms,
	}
}

// OutputRow builds a row of the enriched table from an input row and
// the NCBI synonyms field.
func (t *Table) OutputRow(row Row, ncbi string) Row {
	idx := t.IndexField()
	return Row{
		idx:              row.Get(idx),
		FoodCom:          row.Get(FoodCom),
		FoodSci:          row.Get(FoodSci),
		OpenTreeSynonyms: row.Get(OpenTreeSynonyms),
		WikiSynonyms:     row.Get(WikiSynonyms),
		NCBISynonyms:     ncbi,
	}
}

// Records converts rows to string slices in the order of header.
func Records(header []string, rows []Row) [][]string {
	res := make([][]string, 0, len(rows))
	for _, row := range rows {
		rec := make([]string, len(header))
		for i, col := range header {
			rec[i] = row.Get(col)
		}
		res = append(res, rec)
	}
	return res
}

// FromRecords builds a Table from a header and data records. Short
// records get empty values, extra values without header are dropped.
func FromRecords(header []string, recs [][]string) *Table {
	res := &Table{Header: header, Rows: make([]Row, 0, len(recs))}
	for _, rec := range recs {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		res.Rows = append(res.Rows, row)
	}
	return res
}
