package table

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeTempFile(t, "data.csv", "name,age\nalice,34\nbob,28\n")
	tb, err := ReadCSV(path, 0)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if rows, cols := tb.Shape(); rows != 2 || cols != 2 {
		t.Fatalf("shape = %dx%d, want 2x2", rows, cols)
	}
	if tb.Cell(1, 0) != "bob" {
		t.Fatalf("cell(1,0) = %q, want bob", tb.Cell(1, 0))
	}
}

func TestReadCSVSemicolon(t *testing.T) {
	path := writeTempFile(t, "data.csv", "a;b\n1;2\n")
	tb, err := ReadCSV(path, ';')
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if tb.NumCols() != 2 {
		t.Fatalf("NumCols = %d, want 2", tb.NumCols())
	}
}

func TestReadCSVSniffsTSV(t *testing.T) {
	path := writeTempFile(t, "data.tsv", "a\tb\n1\t2\n")
	tb, err := ReadCSV(path, 0)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if tb.NumCols() != 2 {
		t.Fatalf("NumCols = %d, want 2", tb.NumCols())
	}
}

func TestReadCSVRaggedRows(t *testing.T) {
	path := writeTempFile(t, "data.csv", "a,b,c\n1,2\n1,2,3,4\n")
	tb, err := ReadCSV(path, 0)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if tb.NumRows() != 2 || tb.NumCols() != 3 {
		t.Fatalf("shape = %dx%d, want 2x3", tb.NumRows(), tb.NumCols())
	}
}

func TestReadCSVEmptyFile(t *testing.T) {
	path := writeTempFile(t, "empty.csv", "")
	if _, err := ReadCSV(path, 0); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	tb := mustTable(t, []string{"a", "b"}, [][]string{{"1", "x,y"}, {"2", "z"}})
	var buf bytes.Buffer
	if err := tb.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	path := writeTempFile(t, "out.csv", buf.String())
	back, err := ReadCSV(path, 0)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if back.Cell(0, 1) != "x,y" {
		t.Fatalf("quoted cell lost: %q", back.Cell(0, 1))
	}
}

// writeXLSXFixture builds a minimal workbook with inline strings.
func writeXLSXFixture(t *testing.T, sheetName string, rows [][]string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	add := func(name, content string) {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}

	add("xl/workbook.xml",
		`<workbook><sheets><sheet name="`+sheetName+`" sheetId="1" id="rId1"/></sheets></workbook>`)
	add("xl/_rels/workbook.xml.rels",
		`<Relationships><Relationship Id="rId1" Target="worksheets/sheet1.xml"/></Relationships>`)

	var sheet strings.Builder
	sheet.WriteString("<worksheet><sheetData>")
	for ri, row := range rows {
		sheet.WriteString("<row>")
		for ci, v := range row {
			ref := string(rune('A'+ci)) + string(rune('1'+ri))
			sheet.WriteString(`<c r="` + ref + `" t="inlineStr"><is><t>` + v + `</t></is></c>`)
		}
		sheet.WriteString("</row>")
	}
	sheet.WriteString("</sheetData></worksheet>")
	add("xl/worksheets/sheet1.xml", sheet.String())

	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	path := filepath.Join(t.TempDir(), "data.xlsx")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write xlsx: %v", err)
	}
	return path
}

func TestReadXLSX(t *testing.T) {
	path := writeXLSXFixture(t, "Data", [][]string{
		{"name", "age"},
		{"alice", "34"},
		{"bob", "28"},
	})
	tb, err := ReadXLSX(path, "", 1)
	if err != nil {
		t.Fatalf("ReadXLSX: %v", err)
	}
	if rows, cols := tb.Shape(); rows != 2 || cols != 2 {
		t.Fatalf("shape = %dx%d, want 2x2", rows, cols)
	}
	if tb.Cell(0, 1) != "34" {
		t.Fatalf("cell(0,1) = %q, want 34", tb.Cell(0, 1))
	}
}

func TestReadXLSXSheetByName(t *testing.T) {
	path := writeXLSXFixture(t, "Metrics", [][]string{{"a"}, {"1"}})
	if _, err := ReadXLSX(path, "Metrics", 0); err != nil {
		t.Fatalf("ReadXLSX by name: %v", err)
	}
	_, err := ReadXLSX(path, "Missing", 0)
	if err == nil || !strings.Contains(err.Error(), "Available sheets") {
		t.Fatalf("expected available-sheets error, got %v", err)
	}
}

func TestLoadDispatchesByExtension(t *testing.T) {
	csvPath := writeTempFile(t, "data.csv", "a\n1\n")
	if _, err := Load(csvPath, 0, "", 0); err != nil {
		t.Fatalf("Load csv: %v", err)
	}
	xlsxPath := writeXLSXFixture(t, "Sheet1", [][]string{{"a"}, {"1"}})
	if _, err := Load(xlsxPath, 0, "", 1); err != nil {
		t.Fatalf("Load xlsx: %v", err)
	}
}
