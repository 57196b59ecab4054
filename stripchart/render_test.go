package stripchart

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/chemplot/rfstrip/rfdata"
)

func pointFixture() []rfdata.PlotPoint {
	return []rfdata.PlotPoint{
		{Chemical: "A (ESI+)", LogRF: 2.3, FeatureID: "F1", SampleName: "s1", Mode: rfdata.ModePositive, RetentionTime: 5, Color: "#ff00ff"},
		{Chemical: "A (ESI+)", LogRF: 3.0, FeatureID: "F1", SampleName: "s2", Mode: rfdata.ModePositive, RetentionTime: 5, Color: "#ff00ff"},
		{Chemical: "A (ESI-)", LogRF: 1.6, FeatureID: "F2", SampleName: "s1", Mode: rfdata.ModeNegative, RetentionTime: 3, Color: "#8040c0"},
	}
}

func TestRenderSVG(t *testing.T) {
	var buf bytes.Buffer

	if err := Render(&buf, pointFixture(), Options{Width: 640, Height: 480, Format: FormatSVG}); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Error("Output should be SVG")
	}
	// Band labels are y-axis ticks.
	if !strings.Contains(out, "A (ESI+)") || !strings.Contains(out, "A (ESI-)") {
		t.Error("Chemical band labels should appear in the chart")
	}
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer

	if err := Render(&buf, pointFixture(), Options{Width: 640, Height: 480, Format: FormatPNG}); err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("Output should be PNG")
	}
}

func TestRenderNoPoints(t *testing.T) {
	var buf bytes.Buffer

	if err := Render(&buf, nil, DefaultOptions()); !errors.Is(err, ErrNoPoints) {
		t.Error("Expected ErrNoPoints, got", err)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	var buf bytes.Buffer

	if err := Render(&buf, pointFixture(), Options{Width: 10, Height: 10, Format: "gif"}); err == nil {
		t.Error("Expected an error for an unknown format")
	}
}

func TestRenderSinglePoint(t *testing.T) {
	var buf bytes.Buffer

	points := pointFixture()[:1]
	if err := Render(&buf, points, Options{Width: 640, Height: 480, Format: FormatSVG}); err != nil {
		t.Fatal("A single observation should still render:", err)
	}
}

func TestCollectBands(t *testing.T) {
	bands := collectBands(pointFixture())

	if len(bands) != 2 {
		t.Fatal("Expected 2 bands, got", len(bands))
	}
	if bands[0].chemical != "A (ESI+)" || len(bands[0].xs) != 2 {
		t.Error("First band should group both ESI+ observations")
	}
	if bands[1].color != "#8040c0" {
		t.Error("Band color should come from its points")
	}
}
