package stripchart

import (
	"io"

	"github.com/fogleman/gg"

	"github.com/chemplot/rfstrip/rfdata"
)

// LegendEntry pairs a chemical-identity key with its assigned strip color.
type LegendEntry struct {
	Label string
	Color string
}

// LegendEntries reduces a point set to one entry per chemical, in
// first-appearance order.
func LegendEntries(points []rfdata.PlotPoint) []LegendEntry {
	seen := make(map[string]bool)
	var entries []LegendEntry

	for _, p := range points {
		if seen[p.Chemical] {
			continue
		}
		seen[p.Chemical] = true
		entries = append(entries, LegendEntry{Label: p.Chemical, Color: p.Color})
	}

	return entries
}

// Legend rasterizes a swatch-per-chemical legend and writes it to w as PNG.
func Legend(w io.Writer, entries []LegendEntry) error {
	const (
		rowHeight = 22
		swatch    = 14
		padding   = 8
		width     = 360
	)

	height := padding*2 + rowHeight*len(entries)
	if len(entries) == 0 {
		height = padding * 2
	}

	ctx := gg.NewContext(width, height)
	ctx.SetRGB(1, 1, 1)
	ctx.Clear()

	for i, entry := range entries {
		y := float64(padding + i*rowHeight)

		ctx.SetHexColor(entry.Color)
		ctx.DrawRectangle(float64(padding), y+float64(rowHeight-swatch)/2, swatch, swatch)
		ctx.Fill()

		ctx.SetRGB(0.1, 0.1, 0.1)
		ctx.DrawString(entry.Label, float64(padding*2+swatch), y+float64(rowHeight)/2+4)
	}

	return ctx.EncodePNG(w)
}
