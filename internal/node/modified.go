package node

import "github.com/verdantweb/verdant/internal/modifier"

// Modified wraps one inner node with an ordered annotation list. The
// wrapper exclusively owns both; annotations are immutable value data and
// must not be mutated after construction. Repeated application nests
// wrappers, outermost last-applied.
type Modified struct {
	Primitive
	inner Node
	mods  []modifier.Modifier
}

// Modify attaches mods to n. With no mods it returns n unchanged.
func Modify(n Node, mods ...modifier.Modifier) Node {
	if len(mods) == 0 {
		return n
	}
	return &Modified{inner: n, mods: mods}
}

// Inner returns the wrapped node.
func (m *Modified) Inner() Node { return m.inner }

// Modifiers returns the wrapper's own annotation list in application
// order. Callers must treat the slice as read-only.
func (m *Modified) Modifiers() []modifier.Modifier { return m.mods }

// Unwrap collapses a chain of Modified wrappers into the innermost
// non-Modified node and the combined annotation list in application order,
// innermost first. Every consumer resolves wrapper chains through this one
// routine; it is what keeps the declaration ordering, and therefore the
// style fingerprint, identical between the collection and lookup passes.
func Unwrap(n Node) (Node, []modifier.Modifier) {
	m, ok := n.(*Modified)
	if !ok {
		return n, nil
	}
	// Wrappers are encountered outermost first; each layer's annotations
	// are prepended so the combined list reads innermost first.
	var mods []modifier.Modifier
	for ok {
		mods = append(append([]modifier.Modifier{}, m.mods...), mods...)
		n = m.inner
		m, ok = n.(*Modified)
	}
	return n, mods
}
