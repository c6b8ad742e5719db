package server

import (
	"net/http"
	"strings"

	"github.com/verdantweb/verdant/internal/page"
)

// pageHandler renders a page per request. Programming errors inside the
// emission passes surface as panics; they are recovered here and mapped
// to a generic 500 without leaking internals.
func (s *Server) pageHandler(route page.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("render panic",
					"route", route.Pattern,
					"panic", rec,
				)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		p := route.New(r)
		doc := page.Render(p, s.currentTheme(), s.site())

		if s.reload != nil {
			doc = injectReloadSnippet(doc)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(doc))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// injectReloadSnippet places the live-reload client just before the
// closing body tag; dev mode only.
func injectReloadSnippet(doc string) string {
	idx := strings.LastIndex(doc, "</body>")
	if idx < 0 {
		return doc
	}
	return doc[:idx] + reloadSnippet + doc[idx:]
}
