// Package rfdata reshapes response-factor spreadsheet rows into
// strip-plot points. All transformations are pure: callers can re-run
// them on every UI toggle without tracking shared state.
package rfdata

import "fmt"

// Column names that identify a feature. Everything else in the input is
// either an "RF "-prefixed sample column or noise to be dropped.
const (
	ColFeatureID      = "Feature ID"
	ColChemicalName   = "Chemical Name"
	ColIonizationMode = "Ionization Mode"
	ColRetentionTime  = "Retention Time"
)

// RFPrefix marks per-sample response-factor columns.
const RFPrefix = "RF "

// Mode is the ionization polarity under which a feature was detected.
// It is part of a chemical's identity for plotting purposes.
type Mode string

const (
	ModePositive Mode = "ESI+"
	ModeNegative Mode = "ESI-"
)

// ModeFilter selects which ionization modes survive point-building.
type ModeFilter string

const (
	FilterPositive ModeFilter = "+"
	FilterNegative ModeFilter = "-"
	FilterBoth     ModeFilter = "both"
)

// SortKey selects the row order applied before point-building. Because
// point colors are assigned by traversal order, changing the sort key may
// change which color a chemical receives.
type SortKey string

const (
	SortRetentionTime SortKey = "retention"
	SortMedianLogRF   SortKey = "median"
)

// RawRow is one spreadsheet row keyed by column name, as loaded.
type RawRow map[string]string

// Table is an ordered spreadsheet: Columns preserves the sheet's column
// order, which determines sample traversal order downstream.
type Table struct {
	Columns []string
	Rows    []RawRow
}

// Sample is one log response-factor observation from a single sample
// column. Name is the column name with the "RF " prefix and a single
// trailing underscore removed.
type Sample struct {
	Column string
	Name   string
	LogRF  float64
}

// CleanedRow is one feature (chemical × ionization mode) with its log
// response factors. Chemical is the identity key
// "<Chemical Name> (<Ionization Mode>)" used for grouping, medians, and
// color assignment.
type CleanedRow struct {
	FeatureID     string
	Chemical      string
	Mode          Mode
	RetentionTime float64
	Samples       []Sample
	MedianLogRF   float64
}

// PlotPoint is one visual mark on the strip plot.
type PlotPoint struct {
	Chemical      string  `csv:"Chemical" json:"chemical"`
	LogRF         float64 `csv:"Log RF" json:"logRF"`
	FeatureID     string  `csv:"Feature ID" json:"featureId"`
	SampleName    string  `csv:"Sample" json:"sampleName"`
	Mode          Mode    `csv:"Ionization Mode" json:"mode"`
	RetentionTime float64 `csv:"Retention Time" json:"retentionTime"`
	Color         string  `csv:"Color" json:"color"`
}

// RowError reports a spreadsheet row rejected during cleaning. Row is the
// zero-based index into the input table's Rows.
type RowError struct {
	Row    int
	Column string
	Value  string
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d, column %q: %s (value %q)", e.Row, e.Column, e.Reason, e.Value)
}
