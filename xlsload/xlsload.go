// Package xlsload reads a binary XLS workbook into the ordered Table that
// the rfdata pipeline consumes.
package xlsload

import (
	"errors"
	"fmt"

	"github.com/carbocation/pfx"
	"github.com/extrame/xls"

	"github.com/chemplot/rfstrip/rfdata"
)

// DefaultSheet is the worksheet name the analysis workflow exports to.
const DefaultSheet = "Sheet1"

var (
	// ErrSheetNotFound indicates the workbook has no sheet with the
	// requested name.
	ErrSheetNotFound = errors.New("xlsload: sheet not found")

	// ErrMissingColumn indicates a required identity column is absent from
	// the header row.
	ErrMissingColumn = errors.New("xlsload: required column missing")

	// ErrEmptySheet indicates the sheet has no header row.
	ErrEmptySheet = errors.New("xlsload: sheet has no rows")
)

// requiredColumns must all be present in the header row. Sample columns
// ("RF "-prefixed) are optional and variable in number.
var requiredColumns = []string{
	rfdata.ColFeatureID,
	rfdata.ColChemicalName,
	rfdata.ColIonizationMode,
	rfdata.ColRetentionTime,
}

// Load opens the workbook at path and decodes the named sheet into a Table.
// Pass sheetName == "" for DefaultSheet.
func Load(path, sheetName string) (*rfdata.Table, error) {
	if sheetName == "" {
		sheetName = DefaultSheet
	}

	workbook, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, pfx.Err(err)
	}

	sheet := sheetByName(workbook, sheetName)
	if sheet == nil {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	return tableFromGrid(sheetGrid(sheet))
}

func sheetByName(workbook *xls.WorkBook, name string) *xls.WorkSheet {
	for i := 0; i < workbook.NumSheets(); i++ {
		if sheet := workbook.GetSheet(i); sheet != nil && sheet.Name == name {
			return sheet
		}
	}

	return nil
}

func sheetGrid(sheet *xls.WorkSheet) [][]string {
	grid := make([][]string, 0, int(sheet.MaxRow)+1)

	for rowID := 0; rowID <= int(sheet.MaxRow); rowID++ {
		row := sheet.Row(rowID)
		if row == nil {
			grid = append(grid, nil)
			continue
		}

		cells := make([]string, 0, row.LastCol()+1)
		for colID := 0; colID <= row.LastCol(); colID++ {
			cells = append(cells, row.Col(colID))
		}
		grid = append(grid, cells)
	}

	return grid
}

// tableFromGrid turns a raw cell grid into a Table. The first row is the
// header; duplicate header names keep their first occurrence; short data
// rows read as empty cells for the missing columns.
func tableFromGrid(grid [][]string) (*rfdata.Table, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptySheet
	}

	header := grid[0]
	seen := make(map[string]bool, len(header))
	columns := make([]string, 0, len(header))
	for _, col := range header {
		if col == "" || seen[col] {
			continue
		}
		seen[col] = true
		columns = append(columns, col)
	}

	for _, required := range requiredColumns {
		if !seen[required] {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, required)
		}
	}

	table := &rfdata.Table{
		Columns: columns,
		Rows:    make([]rfdata.RawRow, 0, len(grid)-1),
	}

	for _, cells := range grid[1:] {
		row := make(rfdata.RawRow, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			if _, dup := row[col]; dup {
				continue
			}
			if i < len(cells) {
				row[col] = cells[i]
			} else {
				row[col] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
