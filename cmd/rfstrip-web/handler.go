package main

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/gorilla/mux"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// handler provides global values to each handler method. Templates are
// parsed once at startup from the embedded filesystem.
type handler struct {
	*Global

	router *mux.Router

	template map[string]*template.Template
}

func (h *handler) parseTemplates() error {
	entries, err := embeddedTemplates.ReadDir("templates")
	if err != nil {
		return err
	}

	h.template = make(map[string]*template.Template, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		tpl, err := template.ParseFS(embeddedTemplates, fmt.Sprintf("templates/%s", name))
		if err != nil {
			return err
		}
		h.template[name] = tpl
	}

	return nil
}

func (h *handler) Template(name string) *template.Template {
	tpl, ok := h.template[name]
	if !ok {
		panic(fmt.Errorf("handler.go:Template: no template named %q", name))
	}

	return tpl
}
