package main

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type Page struct {
	Title string
	Site  string
	Data  interface{}
}

func Render(h *handler, w http.ResponseWriter, r *http.Request, title, tpl string, data interface{}) {
	page := Page{
		Title: title,
		Site:  h.Global.Site,
		Data:  data,
	}

	if err := h.Template(tpl).Execute(w, page); err != nil {
		HTTPError(h, w, r, err)
	}
}

func RenderJSON(h *handler, w http.ResponseWriter, r *http.Request, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		h.log.Println(r.Host, r.URL.Path, ":", err)
	}
}

func HTTPError(h *handler, w http.ResponseWriter, r *http.Request, err error, code ...int) {
	output := struct {
		StatusCode     int
		StatusCodeText string
		Error          string
	}{
		StatusCode:     http.StatusInternalServerError,
		StatusCodeText: http.StatusText(http.StatusInternalServerError),
		Error:          err.Error(),
	}

	for _, c := range code {
		output.StatusCode = c
		output.StatusCodeText = http.StatusText(c)
		break // Take the first, if any is given
	}

	w.WriteHeader(output.StatusCode)
	h.log.Println(r.Host, r.URL.Path, ":", output.StatusCode, err)

	// Built from Render(), but not calling Render() to avoid the
	// possibility of an infinite loop.
	page := Page{
		Title: "Error",
		Site:  h.Global.Site,
		Data:  output,
	}

	if err := h.Template("error.html").Execute(w, page); err != nil {
		fmt.Fprintf(w, "Error (%d) (%v) with %+v", output.StatusCode, err, page)
	}
}
