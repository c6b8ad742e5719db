// Package page defines the Page abstraction and the per-request pipeline
// that compiles a page into a finished HTML document: one tree
// evaluation, then three independent passes over it (style collection,
// markup rendering, binding extraction) that agree on traversal order and
// content-addressed class names by construction.
package page

import (
	"net/http"

	"github.com/verdantweb/verdant/internal/css"
	"github.com/verdantweb/verdant/internal/document"
	"github.com/verdantweb/verdant/internal/markup"
	"github.com/verdantweb/verdant/internal/node"
	"github.com/verdantweb/verdant/internal/script"
	"github.com/verdantweb/verdant/internal/theme"
)

// Page is an immutable page value: a composite node whose expansion is
// the page's tree. The rendering pipeline never mutates it.
type Page interface {
	Body() node.Node
}

// WithMeta is implemented by pages that override document metadata.
type WithMeta interface {
	Meta() document.Meta
}

// Reactive is implemented by pages that declare reactive fields. The
// declaration is collected through the builder; the page itself is never
// inspected.
type Reactive interface {
	Fields() *script.Fields
}

// Constructor builds a page for one request. Pages are constructed fresh
// per request and discarded with the response.
type Constructor func(r *http.Request) Page

// Route pairs a path pattern with a page constructor.
type Route struct {
	Pattern string
	New     Constructor
}

// Registry holds the registered routes in registration order.
type Registry struct {
	routes []Route
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{} }

// Register adds a route.
func (reg *Registry) Register(pattern string, fn Constructor) {
	reg.routes = append(reg.routes, Route{Pattern: pattern, New: fn})
}

// Routes returns the routes in registration order.
func (reg *Registry) Routes() []Route {
	return append([]Route(nil), reg.routes...)
}

// Render compiles p into a complete HTML document. The page's expansion
// is evaluated once; the style collector, markup renderer, and binding
// extractor each walk the resulting tree independently, in identical
// document order. Everything built here is request-local and discarded
// once the string is returned.
func Render(p Page, th *theme.Theme, site document.Site) string {
	root := p.Body()

	table := css.Collect(root)
	bindings := script.Bindings(root)

	var fields *script.Fields
	if r, ok := p.(Reactive); ok {
		fields = r.Fields()
	}
	js := script.Emit(fields, bindings)

	body := markup.Render(root, markup.Options{
		ClassFor: table.ClassFor,
		Bound:    script.BoundPositions(bindings),
	})

	var meta document.Meta
	if m, ok := p.(WithMeta); ok {
		meta = m.Meta()
	}

	var themeCSS string
	if th != nil {
		themeCSS = th.CSS()
	}

	return document.Assemble(document.Input{
		Site:         site,
		Meta:         meta,
		ThemeCSS:     themeCSS,
		ComponentCSS: table.Stylesheet(),
		BodyHTML:     body,
		Script:       js,
	})
}
