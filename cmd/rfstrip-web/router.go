package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/interpose/middleware"
	"github.com/justinas/alice"
)

func router(config *Global) (http.Handler, error) {
	router := mux.NewRouter()
	GET := router.Methods("GET", "HEAD").Subrouter()

	h := &handler{Global: config, router: router}
	if err := h.parseTemplates(); err != nil {
		return nil, err
	}

	GET.HandleFunc("/", h.Index).Name("index")
	GET.HandleFunc("/chart.{format:(?:svg|png)}", h.Chart).Name("chart")
	GET.HandleFunc("/points.csv", h.PointsCSV)
	GET.HandleFunc("/points.json", h.PointsJSON)

	// The legend only changes when the underlying dataset does, so let
	// clients cache it briefly.
	GET.Handle("/legend.png",
		middleware.MaxAgeHandler(60*5, http.HandlerFunc(h.Legend)))

	standard := alice.New(
		// Log all requests to STDOUT
		middleware.GorillaLog(),
	)

	return standard.Then(router), nil
}
