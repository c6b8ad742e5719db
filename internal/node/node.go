// Package node defines the open declarative UI tree and the traversal
// contract shared by every consumer of it.
//
// The node set is open: any caller can define a composite node by
// implementing Node with a one-step expansion. Recursion mechanics are
// closed: a fixed set of primitive structural shapes (Tuple, Either,
// Option, ForEach, Group, Text) enumerate their children directly and are
// never expanded. Consumers walk the tree through Walk, which dispatches
// on shape for primitives and falls back to expansion for composites, so
// every consumer visits every tree in the same pre-order, left-to-right,
// depth-first order.
package node

import "github.com/verdantweb/verdant/internal/modifier"

// Node is one element of a declarative UI tree.
//
// Composite (user-defined) nodes return their one-step expansion from
// Body. Primitive nodes embed Primitive, whose Body panics: a primitive's
// children are enumerated structurally and its expansion must never be
// evaluated.
type Node interface {
	Body() Node
}

// Primitive is embedded by the framework's structural node types. Calling
// Body on a primitive is a programming error, not a recoverable condition.
type Primitive struct{}

// Body panics. Primitives are terminal: consumers dispatch on their shape
// instead of expanding them.
func (Primitive) Body() Node {
	panic("verdant/node: Body evaluated on a primitive node")
}

// Container is the capability primitives use to expose their structural
// children. VisitChildren must call visit once per child in document
// order; consumers rely on this order being identical across passes.
type Container interface {
	Node
	VisitChildren(visit func(Node))
}

// Walker observes nodes during a traversal. Visit is called exactly once
// per non-Modified node, in strict pre-order, with the node's collapsed
// modifier chain (nil when the node carries none). Returning false skips
// the node's children.
type Walker interface {
	Visit(n Node, mods []modifier.Modifier) bool
}

// Walk traverses the tree rooted at root, visiting nodes in pre-order,
// left-to-right, depth-first. Modified wrapper chains are collapsed via
// Unwrap before their inner node is visited, so every Walker sees the
// same (node, modifiers) pairs in the same order. Annotations on a
// composite are re-applied to its one-step expansion, so the chain
// arriving at a primitive includes every annotation from enclosing
// expansions, innermost first. An expansion that never terminates is a
// caller error and recurses without bound.
func Walk(root Node, w Walker) {
	walk(root, w)
}

func walk(n Node, w Walker) {
	if n == nil {
		return
	}
	inner, mods := Unwrap(n)
	if inner == nil {
		return
	}
	if !w.Visit(inner, mods) {
		return
	}
	if c, ok := inner.(Container); ok {
		c.VisitChildren(func(child Node) {
			walk(child, w)
		})
		return
	}
	// The composite's annotations apply to whatever it expands into.
	walk(Modify(inner.Body(), mods...), w)
}
