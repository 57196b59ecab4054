package main

import (
	"github.com/chemplot/rfstrip/rfdata"
)

// Global provides values that must be safe for concurrent use from multiple
// goroutines to each handler method. The cleaned rows are immutable after
// startup; handlers copy before sorting.
type Global struct {
	log logger

	Site string

	SourcePath string
	SheetName  string

	rows     []rfdata.CleanedRow
	rejected []rfdata.RowError
}

// Rows returns a copy the caller may reorder freely.
func (g *Global) Rows() []rfdata.CleanedRow {
	return append([]rfdata.CleanedRow(nil), g.rows...)
}

func (g *Global) RejectedCount() int {
	return len(g.rejected)
}

type logger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}
