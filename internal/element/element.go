// Package element provides the concrete HTML element nodes of the
// catalog. Elements are simple data carriers: a tag name, an attribute
// list, and structural children. All rendering logic lives in
// internal/markup.
package element

import "github.com/verdantweb/verdant/internal/node"

// Attr is one HTML attribute. Values are escaped by the renderer for the
// quoted-attribute context.
type Attr struct {
	Key   string
	Value string
}

// Element is a primitive node rendered as one HTML tag. Void elements
// render without children or a closing tag.
type Element struct {
	node.Primitive
	Tag      string
	Attrs    []Attr
	Void     bool
	Children []node.Node
}

// New builds an element with the given tag and children.
func New(tag string, children ...node.Node) *Element {
	return &Element{Tag: tag, Children: children}
}

// NewVoid builds a childless void element.
func NewVoid(tag string) *Element {
	return &Element{Tag: tag, Void: true}
}

// WithAttr appends an attribute and returns the element for chaining.
func (e *Element) WithAttr(key, value string) *Element {
	e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
	return e
}

// VisitChildren visits the element's children in document order.
func (e *Element) VisitChildren(visit func(node.Node)) {
	for _, c := range e.Children {
		if c != nil {
			visit(c)
		}
	}
}
