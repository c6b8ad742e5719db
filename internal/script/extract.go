package script

import (
	"github.com/verdantweb/verdant/internal/element"
	"github.com/verdantweb/verdant/internal/modifier"
	"github.com/verdantweb/verdant/internal/node"
)

// Binding ties an event on the element at a document-order position to a
// named handler.
type Binding struct {
	Position int
	Event    string
	Handler  string
}

// extractor counts element primitives in pre-order document order,
// exactly as the markup renderer does, and records a binding for every On
// modifier in an element's collapsed chain.
type extractor struct {
	pos      int
	bindings []Binding
}

func (e *extractor) Visit(n node.Node, mods []modifier.Modifier) bool {
	if _, ok := n.(*element.Element); !ok {
		return true
	}
	e.pos++
	for _, m := range mods {
		if on, ok := m.(modifier.On); ok {
			e.bindings = append(e.bindings, Binding{
				Position: e.pos,
				Event:    on.Event,
				Handler:  on.Handler,
			})
		}
	}
	return true
}

// Bindings walks the tree and returns its event bindings in document
// order.
func Bindings(root node.Node) []Binding {
	e := &extractor{pos: -1}
	node.Walk(root, e)
	return e.bindings
}

// BoundPositions collapses bindings to the set of element positions that
// need a position attribute in the rendered markup.
func BoundPositions(bindings []Binding) map[int]bool {
	if len(bindings) == 0 {
		return nil
	}
	set := make(map[int]bool, len(bindings))
	for _, b := range bindings {
		set[b.Position] = true
	}
	return set
}
