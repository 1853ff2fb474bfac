package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadCSV loads a CSV/TSV file into a Table. If delim is 0 the delimiter is
// sniffed from the filename (.tsv -> tab, otherwise comma).
func ReadCSV(path string, delim rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = delim

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: file is empty")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	t, err := New(header)
	if err != nil {
		return nil, err
	}
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", t.NumRows()+1, err)
		}
		t.AppendRow(rec)
	}
	return t, nil
}

// WriteCSV writes the table as comma-separated values.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.names); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := 0; i < t.rows; i++ {
		if err := cw.Write(t.Row(i)); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Load dispatches on the file extension: .xlsx goes through the workbook
// reader, everything else is treated as CSV/TSV.
func Load(path string, delim rune, sheetName string, sheetIndex int) (*Table, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return ReadXLSX(path, sheetName, sheetIndex)
	}
	return ReadCSV(path, delim)
}

func sniffDelimiter(path string) rune {
	if strings.HasSuffix(strings.ToLower(path), ".tsv") {
		return '\t'
	}
	return ','
}
