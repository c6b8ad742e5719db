package element

import (
	"strconv"

	"github.com/verdantweb/verdant/internal/node"
)

// Text builds a plain-text leaf. Content is escaped for the element-text
// context by the renderer.
func Text(s string) *node.Text { return node.NewText(s) }

// Div builds a generic block container.
func Div(children ...node.Node) *Element { return New("div", children...) }

// Span builds a generic inline container.
func Span(children ...node.Node) *Element { return New("span", children...) }

// Paragraph builds a <p>.
func Paragraph(children ...node.Node) *Element { return New("p", children...) }

// Heading builds an <h1>..<h6>; levels outside that range clamp.
func Heading(level int, children ...node.Node) *Element {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return New("h"+strconv.Itoa(level), children...)
}

// Link builds an <a href>.
func Link(href string, children ...node.Node) *Element {
	return New("a", children...).WithAttr("href", href)
}

// Image builds a void <img>.
func Image(src, alt string) *Element {
	return NewVoid("img").WithAttr("src", src).WithAttr("alt", alt)
}

// Button builds a <button type="button">.
func Button(children ...node.Node) *Element {
	return New("button", children...).WithAttr("type", "button")
}

// Input builds a void <input> of the given type.
func Input(inputType, name string) *Element {
	return NewVoid("input").WithAttr("type", inputType).WithAttr("name", name)
}

// Label builds a <label for>.
func Label(forID string, children ...node.Node) *Element {
	return New("label", children...).WithAttr("for", forID)
}

// Form builds a <form method action>.
func Form(method, action string, children ...node.Node) *Element {
	return New("form", children...).WithAttr("method", method).WithAttr("action", action)
}

// List builds a <ul>.
func List(children ...node.Node) *Element { return New("ul", children...) }

// OrderedList builds an <ol>.
func OrderedList(children ...node.Node) *Element { return New("ol", children...) }

// Item builds an <li>.
func Item(children ...node.Node) *Element { return New("li", children...) }

// Code builds an inline <code>.
func Code(children ...node.Node) *Element { return New("code", children...) }

// Pre builds a <pre>.
func Pre(children ...node.Node) *Element { return New("pre", children...) }

// Nav builds a <nav>.
func Nav(children ...node.Node) *Element { return New("nav", children...) }

// Header builds a <header>.
func Header(children ...node.Node) *Element { return New("header", children...) }

// Footer builds a <footer>.
func Footer(children ...node.Node) *Element { return New("footer", children...) }

// Main builds a <main>.
func Main(children ...node.Node) *Element { return New("main", children...) }

// Section builds a <section>.
func Section(children ...node.Node) *Element { return New("section", children...) }

// Article builds an <article>.
func Article(children ...node.Node) *Element { return New("article", children...) }

// Rule builds a void <hr>.
func Rule() *Element { return NewVoid("hr") }

// Break builds a void <br>.
func Break() *Element { return NewVoid("br") }
