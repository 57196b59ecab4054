package rfdata

import (
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// ChemicalSummary is the per-chemical panel shown alongside the plot.
type ChemicalSummary struct {
	Chemical string
	N        int
	Min      float64
	Max      float64
	Mean     float64
	StdDev   float64
	Median   float64
	Q1       float64
	Q3       float64
}

// Summaries computes descriptive statistics of the log response factors for
// each distinct chemical-identity key, in the order the keys first appear in
// rows. Rows sharing a key pool their observations. Keys with no
// observations are skipped.
func Summaries(rows []CleanedRow) []ChemicalSummary {
	order := make([]string, 0, len(rows))
	byChemical := make(map[string][]float64)

	for _, row := range rows {
		if _, seen := byChemical[row.Chemical]; !seen {
			order = append(order, row.Chemical)
			byChemical[row.Chemical] = nil
		}
		for _, s := range row.Samples {
			byChemical[row.Chemical] = append(byChemical[row.Chemical], s.LogRF)
		}
	}

	out := make([]ChemicalSummary, 0, len(order))
	for _, chem := range order {
		vals := byChemical[chem]
		if len(vals) == 0 {
			continue
		}

		data := stats.Float64Data(vals)

		min, err := data.Min()
		if err != nil {
			continue
		}
		max, _ := data.Max()
		mean, _ := data.Mean()
		sd, _ := data.StandardDeviation()
		med, _ := data.Median()

		sorted := append([]float64(nil), vals...)
		sort.Float64s(sorted)

		out = append(out, ChemicalSummary{
			Chemical: chem,
			N:        len(vals),
			Min:      min,
			Max:      max,
			Mean:     mean,
			StdDev:   sd,
			Median:   med,
			Q1:       stat.Quantile(0.25, stat.Empirical, sorted, nil),
			Q3:       stat.Quantile(0.75, stat.Empirical, sorted, nil),
		})
	}

	return out
}
