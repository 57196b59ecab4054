package main

import (
	"net/http/httptest"
	"testing"

	"github.com/chemplot/rfstrip/rfdata"
)

func TestParseViewStateDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)

	state, err := parseViewState(r)
	if err != nil {
		t.Fatal(err)
	}

	if state.Sort != rfdata.SortRetentionTime || state.Mode != rfdata.FilterBoth {
		t.Error("Blank query should default to retention sort over both modes")
	}
	if state.Width != 1280 || state.Height != 720 {
		t.Error("Geometry defaults mismatch")
	}
}

func TestParseViewStateQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/?sort=median&mode=neg&xmin=-2&xmax=5&w=800&h=400", nil)

	state, err := parseViewState(r)
	if err != nil {
		t.Fatal(err)
	}

	if state.Sort != rfdata.SortMedianLogRF || state.Mode != rfdata.FilterNegative {
		t.Error("Sort/mode mismatch:", state.Sort, state.Mode)
	}
	if state.XMin != -2 || state.XMax != 5 || state.Width != 800 || state.Height != 400 {
		t.Error("Zoom/geometry mismatch")
	}
}

func TestParseViewStateRejectsUnknowns(t *testing.T) {
	for _, target := range []string{"/?sort=bogus", "/?mode=bogus", "/?xmin=abc"} {
		r := httptest.NewRequest("GET", target, nil)
		if _, err := parseViewState(r); err == nil {
			t.Error("Expected an error for", target)
		}
	}
}

func TestChartQueryRoundTrips(t *testing.T) {
	state := viewState{
		Sort: rfdata.SortMedianLogRF, Mode: rfdata.FilterPositive,
		XMin: -1, XMax: 4, Width: 800, Height: 400,
	}

	r := httptest.NewRequest("GET", "/?"+chartQuery(state), nil)
	parsed, err := parseViewState(r)
	if err != nil {
		t.Fatal(err)
	}

	if parsed != state {
		t.Errorf("Round trip mismatch:\ngot  %+v\nwant %+v", parsed, state)
	}
}
