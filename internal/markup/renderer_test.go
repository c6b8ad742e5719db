package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/verdantweb/verdant/internal/css"
	"github.com/verdantweb/verdant/internal/element"
	"github.com/verdantweb/verdant/internal/modifier"
	"github.com/verdantweb/verdant/internal/node"
)

func TestRenderPlainTree(t *testing.T) {
	tree := element.Div(
		element.Heading(1, element.Text("Welcome")),
		element.Paragraph(element.Text("Hello, world")),
	)

	got := Render(tree, Options{})

	assert.Equal(t, "<div><h1>Welcome</h1><p>Hello, world</p></div>", got)
}

func TestRenderEscapesTextContent(t *testing.T) {
	got := Render(element.Span(element.Text(`a < b & c > "d"`)), Options{})

	assert.Equal(t, `<span>a &lt; b &amp; c &gt; "d"</span>`, got)
}

func TestRenderEscapesAttributeValues(t *testing.T) {
	got := Render(element.Link(`/q?a=1&b="2"<x>`, element.Text("go")), Options{})

	assert.Equal(t, `<a href="/q?a=1&amp;b=&quot;2&quot;&lt;x&gt;">go</a>`, got)
}

func TestRenderVoidElements(t *testing.T) {
	got := Render(element.Div(element.Image("/a.png", "pic"), element.Rule()), Options{})

	assert.Equal(t, `<div><img src="/a.png" alt="pic"><hr></div>`, got)
}

func TestRenderInjectsClassFromLookup(t *testing.T) {
	mods := []modifier.Modifier{modifier.Pad(16)}
	tree := node.Modify(element.Div(element.Text("x")), mods...)

	table := css.Collect(tree)
	got := Render(tree, Options{ClassFor: table.ClassFor})

	class, ok := table.ClassFor(mods)
	require.True(t, ok)
	assert.Equal(t, `<div class="`+class+`">x</div>`, got)
}

func TestRenderMergesWithLiteralClass(t *testing.T) {
	tree := node.Modify(
		element.Div().WithAttr("class", "hero"),
		modifier.Pad(8),
	)

	table := css.Collect(tree)
	got := Render(tree, Options{ClassFor: table.ClassFor})

	class, _ := table.ClassFor([]modifier.Modifier{modifier.Pad(8)})
	assert.Equal(t, `<div class="hero `+class+`"></div>`, got)
}

func TestRenderBehaviorOnlyNodesGetNoClass(t *testing.T) {
	tree := node.Modify(element.Button(element.Text("go")), modifier.OnClick("go"))

	table := css.Collect(tree)
	got := Render(tree, Options{ClassFor: table.ClassFor})

	assert.Equal(t, `<button type="button">go</button>`, got)
}

func TestRenderIdenticalSiblingsShareOneClass(t *testing.T) {
	bg := modifier.Background{Color: "salmon"}
	tree := element.Div(
		node.Modify(element.Span(element.Text("a")), bg),
		node.Modify(element.Span(element.Text("b")), bg),
	)

	table := css.Collect(tree)
	got := Render(tree, Options{ClassFor: table.ClassFor})

	require.Equal(t, 1, table.Len())
	class := table.Classes()[0]
	assert.Equal(t, 2, strings.Count(got, `class="`+class+`"`))
}

func TestRenderExpandsComposites(t *testing.T) {
	got := Render(greeting{name: "Ada"}, Options{})

	assert.Equal(t, "<p>Hello, Ada</p>", got)
}

func TestRenderStyledCompositeCarriesClassToExpansion(t *testing.T) {
	tree := node.Modify(greeting{name: "Ada"}, modifier.Pad(16))

	table := css.Collect(tree)
	got := Render(tree, Options{ClassFor: table.ClassFor})

	// The rule collected for the composite's chain is the one the
	// expanded element references; nothing in the stylesheet is orphaned.
	require.Equal(t, 1, table.Len())
	class := table.Classes()[0]
	assert.Equal(t, `<p class="`+class+`">Hello, Ada</p>`, got)
}

func TestRenderEitherOnlyActiveBranch(t *testing.T) {
	tree := node.If(false,
		element.Span(element.Text("then")),
		element.Span(element.Text("else")),
	)

	assert.Equal(t, "<span>else</span>", Render(tree, Options{}))
}

func TestRenderDataRIDOnlyForBoundPositions(t *testing.T) {
	tree := element.Div( // position 0
		element.Span(element.Text("a")), // position 1
		element.Button(),                // position 2
	)

	got := Render(tree, Options{Bound: map[int]bool{2: true}})
	assert.Equal(t, `<div><span>a</span><button type="button" data-rid="2"></button></div>`, got)

	// Without bindings no position attributes appear anywhere.
	got = Render(tree, Options{})
	assert.NotContains(t, got, "data-rid")
}

func TestRenderDeterministic(t *testing.T) {
	build := func() node.Node {
		return element.Div(
			node.Modify(element.Span(element.Text("x")), modifier.Pad(4)),
			node.Each([]string{"a", "b"}, func(s string) node.Node {
				return element.Item(element.Text(s))
			}),
		)
	}

	renderOnce := func() string {
		tree := build()
		table := css.Collect(tree)
		return Render(tree, Options{ClassFor: table.ClassFor})
	}

	assert.Equal(t, renderOnce(), renderOnce())
}

// TestRenderedTreeParses feeds the output through an HTML parser and
// checks the recovered structure, the way a browser would see it.
func TestRenderedTreeParses(t *testing.T) {
	tree := element.Div(
		element.Heading(2, element.Text("Docs & Guides")),
		element.List(
			element.Item(element.Text("<one>")),
			element.Item(element.Text("two")),
		),
	)

	doc, err := html.Parse(strings.NewReader(Render(tree, Options{})))
	require.NoError(t, err)

	var tags []string
	var texts []string
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			tags = append(tags, n.Data)
		case html.TextNode:
			if s := strings.TrimSpace(n.Data); s != "" {
				texts = append(texts, s)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)

	assert.Equal(t, []string{"html", "head", "body", "div", "h2", "ul", "li", "li"}, tags)
	assert.Equal(t, []string{"Docs & Guides", "<one>", "two"}, texts)
}

type greeting struct {
	name string
}

func (g greeting) Body() node.Node {
	return element.Paragraph(element.Text("Hello, " + g.name))
}
