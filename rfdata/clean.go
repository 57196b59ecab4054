package rfdata

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
)

// Clean reduces raw spreadsheet rows to the columns the strip plot needs:
// the four identity columns plus the natural log of every "RF "-prefixed
// sample column, and stamps each row with the median log RF of its
// chemical-identity key across the whole dataset.
//
// A blank RF cell is treated as an absent observation and skipped. A
// non-blank cell that is non-numeric, zero, or negative rejects the whole
// row (log is undefined there); rejected rows are returned as RowErrors so
// the caller can report them without aborting the dataset. The same applies
// to an unparseable Retention Time. Rows are never partially emitted.
func Clean(t *Table) ([]CleanedRow, []RowError) {
	rfColumns := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		if strings.HasPrefix(col, RFPrefix) {
			rfColumns = append(rfColumns, col)
		}
	}

	cleaned := make([]CleanedRow, 0, len(t.Rows))
	var rejected []RowError

	// First pass: log-transform each row, accumulating every log value
	// under its chemical-identity key.
	logsByChemical := make(map[string][]float64)

	for i, row := range t.Rows {
		cr, rowErr := cleanRow(i, row, rfColumns)
		if rowErr != nil {
			rejected = append(rejected, *rowErr)
			continue
		}

		for _, s := range cr.Samples {
			logsByChemical[cr.Chemical] = append(logsByChemical[cr.Chemical], s.LogRF)
		}

		cleaned = append(cleaned, cr)
	}

	// Second pass: every row sharing an identity key carries that key's
	// median. A key with no observations draws no points; its median is NaN.
	for i := range cleaned {
		vals := logsByChemical[cleaned[i].Chemical]
		if len(vals) == 0 {
			cleaned[i].MedianLogRF = math.NaN()
			continue
		}

		med, err := stats.Median(vals)
		if err != nil {
			// Unreachable with a non-empty slice; keep the row visibly wrong
			// rather than silently zeroed.
			med = math.NaN()
		}
		cleaned[i].MedianLogRF = med
	}

	return cleaned, rejected
}

func cleanRow(idx int, row RawRow, rfColumns []string) (CleanedRow, *RowError) {
	mode := Mode(strings.TrimSpace(row[ColIonizationMode]))

	cr := CleanedRow{
		FeatureID: row[ColFeatureID],
		Chemical:  ChemicalKey(row[ColChemicalName], mode),
		Mode:      mode,
	}

	rt, err := strconv.ParseFloat(strings.TrimSpace(row[ColRetentionTime]), 64)
	if err != nil {
		return cr, &RowError{Row: idx, Column: ColRetentionTime, Value: row[ColRetentionTime], Reason: "retention time is not numeric"}
	}
	cr.RetentionTime = rt

	cr.Samples = make([]Sample, 0, len(rfColumns))
	for _, col := range rfColumns {
		cell := strings.TrimSpace(row[col])
		if cell == "" {
			continue
		}

		rf, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return cr, &RowError{Row: idx, Column: col, Value: row[col], Reason: "response factor is not numeric"}
		}
		if rf <= 0 {
			return cr, &RowError{Row: idx, Column: col, Value: row[col], Reason: "response factor must be positive to take its log"}
		}

		cr.Samples = append(cr.Samples, Sample{
			Column: col,
			Name:   SampleName(col),
			LogRF:  math.Log(rf),
		})
	}

	return cr, nil
}

// ChemicalKey builds the identity key that groups rows for medians and
// coloring, e.g. "Benzene (ESI+)".
func ChemicalKey(name string, mode Mode) string {
	return fmt.Sprintf("%s (%s)", strings.TrimSpace(name), mode)
}

// SampleName derives the display name of a sample column: the "RF " prefix
// goes, and one trailing underscore goes with it ("RF sample1_" => "sample1").
func SampleName(column string) string {
	return strings.TrimSuffix(strings.TrimPrefix(column, RFPrefix), "_")
}
