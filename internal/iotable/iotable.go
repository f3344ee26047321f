// Package iotable reads food names tables from CSV, TSV or Excel files
// and writes enriched tables as CSV.
package iotable

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gnsyn/pkg/table"
	"github.com/xuri/excelize/v2"
)

const (
	bom     = "\ufeff"
	lineEnd = "\r\n"
)

// Read loads a table from path. The format is chosen by the file
// extension: .tsv is tab-separated, .xlsx is an Excel workbook (first
// sheet), anything else is CSV. The table is validated, so the returned
// table always has a header with food_sci and food_com columns.
func Read(path string) (*table.Table, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return nil, InputNotFoundError(path)
	}
	if err != nil {
		return nil, InputReadError(path, err)
	}

	var recs [][]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		recs, err = readXLSX(path)
	case ".tsv", ".tab":
		recs, err = readDelimited(path, '\t')
	default:
		recs, err = readDelimited(path, ',')
	}
	if err != nil {
		return nil, InputReadError(path, err)
	}

	var header []string
	if len(recs) > 0 {
		header = recs[0]
		recs = recs[1:]
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], bom)
	}

	res := table.FromRecords(header, recs)
	if err = res.Validate(); err != nil {
		if errors.Is(err, table.ErrNoHeader) {
			return nil, MissingHeadersError(path, err)
		}
		return nil, MissingColumnsError(path, err)
	}
	return res, nil
}

func readDelimited(path string, comma rune) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.Comma = comma
	r.FieldsPerRecord = -1
	if comma == '\t' {
		r.LazyQuotes = true
	}

	var res [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	return f.GetRows(sheets[0])
}

// Write saves the enriched table to path as CSV with every field
// quoted. Columns follow tbl.OutputHeader(). Data go to a temporary file
// in the same directory that replaces path at the end, so path may be
// the input file.
func Write(path string, tbl *table.Table, rows []table.Row) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return OutputWriteError(path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	header := tbl.OutputHeader()
	w := bufio.NewWriter(tmp)
	writeRecord(w, header)
	for _, rec := range table.Records(header, rows) {
		writeRecord(w, rec)
	}

	if err = w.Flush(); err != nil {
		tmp.Close()
		return OutputWriteError(path, err)
	}
	if err = tmp.Close(); err != nil {
		return OutputWriteError(path, err)
	}
	if err = os.Chmod(tmpPath, 0644); err != nil {
		return OutputWriteError(path, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return OutputWriteError(path, err)
	}
	return nil
}

// writeRecord quotes every field, encoding/csv only quotes when needed.
// Write errors surface on Flush.
func writeRecord(w *bufio.Writer, rec []string) {
	for i, v := range rec {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteByte('"')
		w.WriteString(strings.ReplaceAll(v, `"`, `""`))
		w.WriteByte('"')
	}
	w.WriteString(lineEnd)
}
