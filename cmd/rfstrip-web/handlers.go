package main

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chemplot/rfstrip/rfdata"
	"github.com/chemplot/rfstrip/stripchart"
)

// viewState is the complete plot state for one request: sort order, mode
// filter, and zoom. Every toggle on the page round-trips through these
// query parameters, so each render is a pure function of the URL.
type viewState struct {
	Sort   rfdata.SortKey
	Mode   rfdata.ModeFilter
	XMin   float64
	XMax   float64
	Width  int
	Height int
}

func parseViewState(r *http.Request) (viewState, error) {
	r.ParseForm()

	state := viewState{
		Width:  1280,
		Height: 720,
	}

	var ok bool
	if state.Sort, ok = rfdata.ParseSortKey(r.Form.Get("sort")); !ok {
		return state, fmt.Errorf("Unknown sort value %q", r.Form.Get("sort"))
	}
	if state.Mode, ok = rfdata.ParseModeFilter(r.Form.Get("mode")); !ok {
		return state, fmt.Errorf("Unknown mode value %q", r.Form.Get("mode"))
	}

	// Zoom and geometry are optional; blank means autoscale / defaults.
	for _, v := range []struct {
		name string
		dest *float64
	}{
		{"xmin", &state.XMin},
		{"xmax", &state.XMax},
	} {
		if raw := r.Form.Get(v.name); raw != "" {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return state, fmt.Errorf("Value %q for %s is not numeric", raw, v.name)
			}
			*v.dest = f
		}
	}

	if raw := r.Form.Get("w"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			state.Width = n
		}
	}
	if raw := r.Form.Get("h"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			state.Height = n
		}
	}

	return state, nil
}

// points re-runs the pure pipeline for one request.
func (h *handler) points(state viewState) []rfdata.PlotPoint {
	rows := h.Global.Rows()
	rfdata.SortRows(rows, state.Sort)

	return rfdata.BuildPoints(rows, state.Mode)
}

func (h *handler) Index(w http.ResponseWriter, r *http.Request) {
	state, err := parseViewState(r)
	if err != nil {
		HTTPError(h, w, r, err, http.StatusBadRequest)
		return
	}

	rows := h.Global.Rows()
	rfdata.SortRows(rows, state.Sort)
	points := rfdata.BuildPoints(rows, state.Mode)

	output := struct {
		State      viewState
		SortParam  string
		ModeParam  string
		SourcePath string
		SheetName  string
		Rejected   int
		PointCount int
		ChartQuery string
		Summaries  []rfdata.ChemicalSummary
	}{
		State:      state,
		SortParam:  string(state.Sort),
		ModeParam:  modeParam(state.Mode),
		SourcePath: h.Global.SourcePath,
		SheetName:  h.Global.SheetName,
		Rejected:   h.Global.RejectedCount(),
		PointCount: len(points),
		ChartQuery: chartQuery(state),
		Summaries:  rfdata.Summaries(rows),
	}

	Render(h, w, r, h.Global.Site, "index.html", output)
}

func (h *handler) Chart(w http.ResponseWriter, r *http.Request) {
	state, err := parseViewState(r)
	if err != nil {
		HTTPError(h, w, r, err, http.StatusBadRequest)
		return
	}

	format := mux.Vars(r)["format"]
	switch format {
	case stripchart.FormatPNG:
		w.Header().Set("Content-Type", "image/png")
	default:
		w.Header().Set("Content-Type", "image/svg+xml")
	}

	opts := stripchart.Options{
		Width:  state.Width,
		Height: state.Height,
		Format: format,
		XMin:   state.XMin,
		XMax:   state.XMax,
	}

	if err := stripchart.Render(w, h.points(state), opts); err != nil {
		h.log.Println(r.Host, r.URL.Path, ":", err)
	}
}

func (h *handler) Legend(w http.ResponseWriter, r *http.Request) {
	state, err := parseViewState(r)
	if err != nil {
		HTTPError(h, w, r, err, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := stripchart.Legend(w, stripchart.LegendEntries(h.points(state))); err != nil {
		h.log.Println(r.Host, r.URL.Path, ":", err)
	}
}

func (h *handler) PointsCSV(w http.ResponseWriter, r *http.Request) {
	state, err := parseViewState(r)
	if err != nil {
		HTTPError(h, w, r, err, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="points.csv"`)

	if err := stripchart.WritePointsCSV(w, h.points(state)); err != nil {
		h.log.Println(r.Host, r.URL.Path, ":", err)
	}
}

func (h *handler) PointsJSON(w http.ResponseWriter, r *http.Request) {
	state, err := parseViewState(r)
	if err != nil {
		HTTPError(h, w, r, err, http.StatusBadRequest)
		return
	}

	RenderJSON(h, w, r, h.points(state))
}

func chartQuery(state viewState) string {
	q := url.Values{}
	q.Set("sort", string(state.Sort))
	q.Set("mode", modeParam(state.Mode))
	q.Set("w", strconv.Itoa(state.Width))
	q.Set("h", strconv.Itoa(state.Height))
	if state.XMin < state.XMax {
		q.Set("xmin", strconv.FormatFloat(state.XMin, 'g', -1, 64))
		q.Set("xmax", strconv.FormatFloat(state.XMax, 'g', -1, 64))
	}

	return q.Encode()
}

// modeParam keeps "+" out of query strings, where it would decode as a
// space.
func modeParam(m rfdata.ModeFilter) string {
	switch m {
	case rfdata.FilterPositive:
		return "pos"
	case rfdata.FilterNegative:
		return "neg"
	}

	return "both"
}
