package rfdata

import (
	"math"
	"testing"
)

func TestSummaries(t *testing.T) {
	rows := []CleanedRow{
		{Chemical: "S (ESI+)", Samples: []Sample{{Name: "s1", LogRF: math.Log(2)}}},
		{Chemical: "S (ESI+)", Samples: []Sample{{Name: "s1", LogRF: math.Log(8)}}},
		{Chemical: "Empty (ESI+)"}, // no observations: skipped
	}

	summaries := Summaries(rows)
	if len(summaries) != 1 {
		t.Fatal("Expected 1 summary, got", len(summaries))
	}

	s := summaries[0]
	if s.Chemical != "S (ESI+)" || s.N != 2 {
		t.Error("Summary identity mismatch")
	}
	if s.Min != math.Log(2) || s.Max != math.Log(8) {
		t.Error("Extent mismatch")
	}

	wantMean := (math.Log(2) + math.Log(8)) / 2
	if math.Abs(s.Mean-wantMean) > 1e-12 {
		t.Error("Mean mismatch")
	}
	if math.Abs(s.Median-wantMean) > 1e-12 {
		t.Error("Even-count median should be the mean of the central values")
	}

	// Population standard deviation of {ln 2, ln 8} is ln 2.
	if math.Abs(s.StdDev-math.Log(2)) > 1e-12 {
		t.Error("Standard deviation mismatch")
	}

	if s.Q1 != math.Log(2) || s.Q3 != math.Log(8) {
		t.Error("Quartile mismatch")
	}
}

func TestSummariesOrder(t *testing.T) {
	rows := []CleanedRow{
		{Chemical: "B (ESI+)", Samples: []Sample{{LogRF: 1}}},
		{Chemical: "A (ESI+)", Samples: []Sample{{LogRF: 2}}},
		{Chemical: "B (ESI+)", Samples: []Sample{{LogRF: 3}}},
	}

	summaries := Summaries(rows)
	if len(summaries) != 2 {
		t.Fatal("Expected 2 summaries, got", len(summaries))
	}
	if summaries[0].Chemical != "B (ESI+)" || summaries[1].Chemical != "A (ESI+)" {
		t.Error("Summaries should follow first-appearance order")
	}
	if summaries[0].N != 2 {
		t.Error("Rows sharing a key should pool their observations")
	}
}
