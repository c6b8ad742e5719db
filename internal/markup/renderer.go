// Package markup renders a node tree to HTML. It is the second emission
// pass: it walks the same tree in the same order as the style collector
// and recomputes, through the supplied class lookup, the same fingerprint
// the collector derived, injecting the resulting class names into the
// emitted tags.
package markup

import (
	"strconv"
	"strings"

	"github.com/verdantweb/verdant/internal/element"
	"github.com/verdantweb/verdant/internal/modifier"
	"github.com/verdantweb/verdant/internal/node"
)

// ClassLookup resolves a collapsed modifier chain to a stylesheet class.
// It must replay the exact conversion and fingerprint logic of the
// collection pass; any divergence produces silently unstyled output.
type ClassLookup func(mods []modifier.Modifier) (string, bool)

// Options configures one render pass.
type Options struct {
	// ClassFor resolves modifier chains to class names. Nil disables
	// class injection.
	ClassFor ClassLookup
	// Bound holds the element positions that carry event bindings.
	// Elements at those positions receive a data-rid attribute so the
	// reactivity script can target them; when empty, no position
	// attributes are emitted at all.
	Bound map[int]bool
}

// Render emits the HTML for the tree rooted at root.
func Render(root node.Node, opts Options) string {
	r := &renderer{opts: opts, pos: -1}
	r.render(root)
	return r.buf.String()
}

type renderer struct {
	buf  strings.Builder
	opts Options
	// pos counts element primitives in pre-order document order. The
	// binding extractor counts with the identical rule; the two passes
	// must agree on every index.
	pos int
}

func (r *renderer) render(n node.Node) {
	if n == nil {
		return
	}
	inner, mods := node.Unwrap(n)
	switch v := inner.(type) {
	case nil:
		return
	case *node.Text:
		r.buf.WriteString(EscapeText(v.Content))
	case *node.Raw:
		r.buf.WriteString(v.Content)
	case *element.Element:
		r.renderElement(v, mods)
	case node.Container:
		v.VisitChildren(func(c node.Node) { r.render(c) })
	default:
		// The composite's annotations apply to its expansion, mirroring
		// node.Walk; both passes deliver the identical chain to the
		// element that finally carries the class.
		r.render(node.Modify(inner.Body(), mods...))
	}
}

func (r *renderer) renderElement(e *element.Element, mods []modifier.Modifier) {
	r.pos++
	pos := r.pos

	class := ""
	if r.opts.ClassFor != nil && len(mods) > 0 {
		if c, ok := r.opts.ClassFor(mods); ok {
			class = c
		}
	}

	r.buf.WriteByte('<')
	r.buf.WriteString(e.Tag)

	classWritten := false
	for _, a := range e.Attrs {
		if a.Key == "class" && class != "" {
			// Merge the derived class with the literal one.
			r.writeAttr("class", a.Value+" "+class)
			classWritten = true
			continue
		}
		r.writeAttr(a.Key, a.Value)
	}
	if class != "" && !classWritten {
		r.writeAttr("class", class)
	}
	if r.opts.Bound[pos] {
		r.writeAttr("data-rid", strconv.Itoa(pos))
	}
	r.buf.WriteByte('>')

	if e.Void {
		return
	}
	for _, c := range e.Children {
		r.render(c)
	}
	r.buf.WriteString("</")
	r.buf.WriteString(e.Tag)
	r.buf.WriteByte('>')
}

func (r *renderer) writeAttr(key, value string) {
	r.buf.WriteByte(' ')
	r.buf.WriteString(key)
	r.buf.WriteString(`="`)
	r.buf.WriteString(EscapeAttr(value))
	r.buf.WriteByte('"')
}
