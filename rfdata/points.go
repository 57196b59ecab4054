package rfdata

import "strings"

// BuildPoints expands cleaned rows into one PlotPoint per (row, sample)
// pair, in row traversal order then sample column order.
//
// Colors are ordinal: the nth distinct chemical-identity key encountered in
// the retained traversal gets the nth palette color, wrapping every
// PaletteSize chemicals. That couples color to the caller's sort order on
// purpose; re-running with the same input and filter reproduces every field
// exactly, but a different sort may recolor a chemical.
func BuildPoints(rows []CleanedRow, filter ModeFilter) []PlotPoint {
	palette := Palette()

	var points []PlotPoint

	ordinal := -1
	prevChemical := ""

	for _, row := range rows {
		if excluded(row.Chemical, filter) {
			continue
		}

		if row.Chemical != prevChemical {
			ordinal++
			prevChemical = row.Chemical
		}
		color := palette[ordinal%PaletteSize]

		for _, s := range row.Samples {
			points = append(points, PlotPoint{
				Chemical:      row.Chemical,
				LogRF:         s.LogRF,
				FeatureID:     row.FeatureID,
				SampleName:    s.Name,
				Mode:          row.Mode,
				RetentionTime: row.RetentionTime,
				Color:         color,
			})
		}
	}

	return points
}

// excluded filters on the identity key rather than the Mode field so that
// the key string stays the single source of truth for grouping.
func excluded(chemical string, filter ModeFilter) bool {
	switch filter {
	case FilterPositive:
		return strings.Contains(chemical, "(ESI-)")
	case FilterNegative:
		return strings.Contains(chemical, "(ESI+)")
	}

	return false
}
