package stripchart

import (
	"io"

	"github.com/gocarina/gocsv"

	"github.com/chemplot/rfstrip/rfdata"
)

// WritePointsCSV writes the plot points as CSV, one row per point, with the
// same fields the chart and info panel consume.
func WritePointsCSV(w io.Writer, points []rfdata.PlotPoint) error {
	return gocsv.Marshal(&points, w)
}
