package xlsload

import (
	"errors"
	"testing"
)

func validGrid() [][]string {
	return [][]string{
		{"Feature ID", "Chemical Name", "Ionization Mode", "Retention Time", "RF s1", "RF s2"},
		{"F1", "A", "ESI+", "5", "10", "20"},
		{"F2", "A", "ESI-", "3", "5"}, // short row: RF s2 reads as empty
	}
}

func TestTableFromGrid(t *testing.T) {
	table, err := tableFromGrid(validGrid())
	if err != nil {
		t.Fatal(err)
	}

	if len(table.Columns) != 6 {
		t.Error("Expected 6 columns, got", len(table.Columns))
	}
	if table.Columns[0] != "Feature ID" || table.Columns[4] != "RF s1" {
		t.Error("Column order should follow the header row")
	}

	if len(table.Rows) != 2 {
		t.Fatal("Expected 2 rows, got", len(table.Rows))
	}
	if table.Rows[0]["RF s2"] != "20" {
		t.Error("Cell mapping mismatch")
	}
	if table.Rows[1]["RF s2"] != "" {
		t.Error("Short rows should read as empty cells")
	}
}

func TestTableFromGridMissingColumn(t *testing.T) {
	grid := [][]string{
		{"Feature ID", "Chemical Name", "Retention Time", "RF s1"},
		{"F1", "A", "5", "10"},
	}

	if _, err := tableFromGrid(grid); !errors.Is(err, ErrMissingColumn) {
		t.Error("Expected ErrMissingColumn, got", err)
	}
}

func TestTableFromGridEmpty(t *testing.T) {
	if _, err := tableFromGrid(nil); !errors.Is(err, ErrEmptySheet) {
		t.Error("Expected ErrEmptySheet, got", err)
	}
	if _, err := tableFromGrid([][]string{{}}); !errors.Is(err, ErrEmptySheet) {
		t.Error("Expected ErrEmptySheet for an empty header, got", err)
	}
}

func TestTableFromGridDuplicateHeader(t *testing.T) {
	grid := [][]string{
		{"Feature ID", "Chemical Name", "Ionization Mode", "Retention Time", "RF s1", "RF s1"},
		{"F1", "A", "ESI+", "5", "10", "999"},
	}

	table, err := tableFromGrid(grid)
	if err != nil {
		t.Fatal(err)
	}

	if len(table.Columns) != 5 {
		t.Error("Duplicate header names should collapse to one column")
	}
	if table.Rows[0]["RF s1"] != "10" {
		t.Error("The first occurrence of a duplicated column should win")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.xls", ""); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
