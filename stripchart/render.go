// Package stripchart draws response-factor strip plots: one horizontal band
// per chemical, individual log-RF observations as dots along the x axis.
package stripchart

import (
	"errors"
	"fmt"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/chemplot/rfstrip/rfdata"
)

// Output formats supported by Render.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ErrNoPoints indicates there was nothing to plot, usually because the mode
// filter excluded every row.
var ErrNoPoints = errors.New("stripchart: no points to plot")

// Options controls chart geometry. XMin/XMax, when XMin < XMax, clamp the
// log-RF axis; this is the zoom contract for callers that re-render on a
// viewport change.
type Options struct {
	Width  int
	Height int
	Format string
	Title  string
	XMin   float64
	XMax   float64
}

// DefaultOptions sizes the chart so that typical datasets (tens of
// chemicals) keep readable band spacing.
func DefaultOptions() Options {
	return Options{
		Width:  1280,
		Height: 720,
		Format: FormatSVG,
	}
}

// band is one strip: a chemical, its y position, and its observations.
type band struct {
	chemical string
	color    string
	xs       []float64
}

// Render draws points as a strip plot and writes the encoded chart to w.
// Band order follows first appearance in points, so the caller's sort order
// is the top-to-bottom order of the chart.
func Render(w io.Writer, points []rfdata.PlotPoint, opts Options) error {
	if len(points) == 0 {
		return ErrNoPoints
	}

	if opts.Width <= 0 || opts.Height <= 0 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}

	bands := collectBands(points)

	series := make([]chart.Series, 0, len(bands))
	ticks := []chart.Tick{{Value: -1, Label: ""}}

	for i, b := range bands {
		ys := make([]float64, len(b.xs))
		for j := range ys {
			ys[j] = float64(i)
		}

		series = append(series, chart.ContinuousSeries{
			Name: b.chemical,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    4,
				DotColor:    drawing.ColorFromHex(strings.TrimPrefix(b.color, "#")),
			},
			XValues: b.xs,
			YValues: ys,
		})

		ticks = append(ticks, chart.Tick{Value: float64(i), Label: b.chemical})
	}

	ticks = append(ticks, chart.Tick{Value: float64(len(bands)), Label: ""})

	gridStyle := chart.Style{
		StrokeColor: drawing.Color{R: 220, G: 220, B: 220, A: 255},
		StrokeWidth: 1.0,
	}

	var xRange *chart.ContinuousRange
	if opts.XMin < opts.XMax {
		xRange = &chart.ContinuousRange{Min: opts.XMin, Max: opts.XMax}
	} else if min, max := xExtent(points); min == max {
		// A single distinct x value leaves the axis with zero width; pad it.
		xRange = &chart.ContinuousRange{Min: min - 1, Max: max + 1}
	}

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		XAxis: chart.XAxis{
			Name:           "log RF",
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Ticks:          ticks,
			Range:          &chart.ContinuousRange{Min: -1, Max: float64(len(bands))},
			GridMajorStyle: gridStyle,
		},
		Series: series,
	}

	if xRange != nil {
		graph.XAxis.Range = xRange
	}

	switch opts.Format {
	case FormatPNG:
		return graph.Render(chart.PNG, w)
	case FormatSVG, "":
		return graph.Render(chart.SVG, w)
	}

	return fmt.Errorf("stripchart: unknown format %q", opts.Format)
}

func xExtent(points []rfdata.PlotPoint) (min, max float64) {
	min, max = points[0].LogRF, points[0].LogRF
	for _, p := range points[1:] {
		if p.LogRF < min {
			min = p.LogRF
		}
		if p.LogRF > max {
			max = p.LogRF
		}
	}

	return min, max
}

// collectBands groups points by chemical in first-appearance order. Each
// point set already carries one color per chemical, so the band takes the
// color of its first point.
func collectBands(points []rfdata.PlotPoint) []band {
	index := make(map[string]int)
	var bands []band

	for _, p := range points {
		i, ok := index[p.Chemical]
		if !ok {
			i = len(bands)
			index[p.Chemical] = i
			bands = append(bands, band{chemical: p.Chemical, color: p.Color})
		}
		bands[i].xs = append(bands[i].xs, p.LogRF)
	}

	return bands
}
