package node

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantweb/verdant/internal/modifier"
)

// labeled is a leaf used to observe visitation order.
type labeled struct {
	Primitive
	name string
}

func (*labeled) VisitChildren(func(Node)) {}

// card is a composite: it expands one step into a primitive tree.
type card struct {
	title string
	body  Node
}

func (c *card) Body() Node {
	return NewGroup(NewText(c.title), c.body)
}

// recordingWalker appends one entry per visited node.
type recordingWalker struct {
	visits []string
}

func (w *recordingWalker) Visit(n Node, mods []modifier.Modifier) bool {
	switch v := n.(type) {
	case *labeled:
		w.visits = append(w.visits, v.name)
	case *Text:
		w.visits = append(w.visits, "text:"+v.Content)
	default:
		w.visits = append(w.visits, fmt.Sprintf("%T", n))
	}
	return true
}

func TestWalkPreOrderLeftToRight(t *testing.T) {
	tree := NewGroup(
		&labeled{name: "a"},
		NewTuple(&labeled{name: "b"}, &labeled{name: "c"}),
		&labeled{name: "d"},
	)

	w := &recordingWalker{}
	Walk(tree, w)

	require.Equal(t, []string{"*node.Group", "a", "*node.Tuple", "b", "c", "d"}, w.visits)
}

func TestWalkExpandsComposites(t *testing.T) {
	tree := &card{title: "Hello", body: &labeled{name: "inner"}}

	w := &recordingWalker{}
	Walk(tree, w)

	// The composite itself is visited, then its one-step expansion.
	assert.Equal(t, []string{"*node.card", "*node.Group", "text:Hello", "inner"}, w.visits)
}

func TestEitherVisitsOnlyActiveBranch(t *testing.T) {
	tests := []struct {
		name string
		cond bool
		want []string
	}{
		{"first branch", true, []string{"*node.Either", "then"}},
		{"second branch", false, []string{"*node.Either", "else"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := If(tt.cond, &labeled{name: "then"}, &labeled{name: "else"})

			w := &recordingWalker{}
			Walk(tree, w)

			assert.Equal(t, tt.want, w.visits)
		})
	}
}

func TestOptionVisitsZeroOrOne(t *testing.T) {
	w := &recordingWalker{}
	Walk(When(false, &labeled{name: "absent"}), w)
	assert.Equal(t, []string{"*node.Option"}, w.visits)

	w = &recordingWalker{}
	Walk(When(true, &labeled{name: "present"}), w)
	assert.Equal(t, []string{"*node.Option", "present"}, w.visits)
}

func TestForEachPreservesSourceOrder(t *testing.T) {
	data := []string{"one", "two", "three"}
	tree := Each(data, func(s string) Node {
		return &labeled{name: s}
	})

	w := &recordingWalker{}
	Walk(tree, w)

	require.Equal(t, []string{"*node.ForEach[string]", "one", "two", "three"}, w.visits)
}

func TestPrimitiveBodyPanics(t *testing.T) {
	assert.Panics(t, func() {
		_ = NewGroup().Body()
	})
	assert.Panics(t, func() {
		_ = NewText("leaf").Body()
	})
}

func TestUnwrapCollapsesChainInnermostFirst(t *testing.T) {
	inner := &labeled{name: "x"}
	a := modifier.Pad(4)
	b := modifier.Background{Color: "red"}
	c := modifier.OnClick("go")

	wrapped := Modify(Modify(inner, a, b), c)

	got, mods := Unwrap(wrapped)
	require.Same(t, inner, got)
	require.Equal(t, []modifier.Modifier{a, b, c}, mods)
}

func TestUnwrapPlainNode(t *testing.T) {
	n := &labeled{name: "plain"}
	got, mods := Unwrap(n)
	assert.Same(t, n, got)
	assert.Nil(t, mods)
}

func TestModifyWithoutModifiersIsIdentity(t *testing.T) {
	n := &labeled{name: "n"}
	assert.Same(t, Node(n), Modify(n))
}

func TestWalkerSeesCollapsedModifierChain(t *testing.T) {
	inner := &labeled{name: "x"}
	wrapped := Modify(Modify(inner, modifier.Pad(8)), modifier.Bold())

	var seen []modifier.Modifier
	Walk(wrapped, walkFunc(func(n Node, mods []modifier.Modifier) bool {
		if n == Node(inner) {
			seen = mods
		}
		return true
	}))

	require.Len(t, seen, 2)
	assert.Equal(t, modifier.Pad(8), seen[0])
	assert.Equal(t, modifier.Bold(), seen[1])
}

func TestWalkCarriesModifiersThroughExpansion(t *testing.T) {
	inner := &labeled{name: "x"}
	tree := Modify(&framed{child: inner}, modifier.Pad(8))

	var seen []modifier.Modifier
	Walk(tree, walkFunc(func(n Node, mods []modifier.Modifier) bool {
		if n == Node(inner) {
			seen = mods
		}
		return true
	}))

	// The expansion's own annotation is innermost, the composite's outermost.
	require.Equal(t, []modifier.Modifier{modifier.Space(4), modifier.Pad(8)}, seen)
}

// framed is a composite whose expansion carries its own annotation.
type framed struct {
	child Node
}

func (f *framed) Body() Node {
	return Modify(f.child, modifier.Space(4))
}

type walkFunc func(Node, []modifier.Modifier) bool

func (f walkFunc) Visit(n Node, mods []modifier.Modifier) bool { return f(n, mods) }
