package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantweb/verdant/internal/node"
)

func TestHeadingClampsLevel(t *testing.T) {
	assert.Equal(t, "h1", Heading(0).Tag)
	assert.Equal(t, "h3", Heading(3).Tag)
	assert.Equal(t, "h6", Heading(9).Tag)
}

func TestWithAttrPreservesOrder(t *testing.T) {
	e := New("a").WithAttr("href", "/x").WithAttr("rel", "noopener")
	require.Equal(t, []Attr{{"href", "/x"}, {"rel", "noopener"}}, e.Attrs)
}

func TestVisitChildrenSkipsNil(t *testing.T) {
	e := New("div", Text("a"), nil, Text("b"))

	var got []string
	e.VisitChildren(func(n node.Node) {
		got = append(got, n.(*node.Text).Content)
	})

	assert.Equal(t, []string{"a", "b"}, got)
}

func TestVoidElementsHaveNoChildren(t *testing.T) {
	img := Image("/logo.png", "logo")
	assert.True(t, img.Void)
	assert.Empty(t, img.Children)
	assert.Equal(t, []Attr{{"src", "/logo.png"}, {"alt", "logo"}}, img.Attrs)
}

func TestRowWrapsDivWithFlexModifiers(t *testing.T) {
	r := Row(8, Text("a"))

	inner, mods := node.Unwrap(r)
	div, ok := inner.(*Element)
	require.True(t, ok)
	assert.Equal(t, "div", div.Tag)
	assert.Len(t, mods, 3)
}
