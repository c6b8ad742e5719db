// Package document assembles the terminal output: one complete HTML
// document string composed from the three emission passes plus page and
// site metadata. It is pure string composition; all tree logic lives
// upstream.
package document

import (
	"strings"

	"github.com/verdantweb/verdant/internal/markup"
)

// Site carries site-level metadata shared by every page.
type Site struct {
	Name string
	Lang string
	// ThemeVariant is the default data-theme value, used when a page's
	// metadata does not select one.
	ThemeVariant string
}

// Meta carries per-page metadata overrides.
type Meta struct {
	Title       string
	Description string
	Keywords    []string
	// ThemeVariant selects a named theme variant; rendered as the
	// data-theme attribute on <html>.
	ThemeVariant string
	// StructuredData holds JSON-LD payloads emitted verbatim inside
	// application/ld+json script tags.
	StructuredData []string
	// BootstrapScripts lists script URLs loaded before the reactivity
	// script. They are only emitted when the page actually has one.
	BootstrapScripts []string
}

// Input bundles the assembler's inputs for one request.
type Input struct {
	Site         Site
	Meta         Meta
	ThemeCSS     string
	ComponentCSS string
	BodyHTML     string
	Script       string
}

// titleSeparator joins the page title and site name when both are set.
const titleSeparator = " | "

// Title composes the document title: page title and site name joined
// when both are present, either one verbatim when alone, empty when
// neither is set (in which case no title tag is emitted).
func Title(pageTitle, siteName string) string {
	switch {
	case pageTitle != "" && siteName != "":
		return pageTitle + titleSeparator + siteName
	case pageTitle != "":
		return pageTitle
	default:
		return siteName
	}
}

// Assemble composes the final document.
func Assemble(in Input) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")

	b.WriteString("<html")
	if in.Site.Lang != "" {
		b.WriteString(` lang="` + markup.EscapeAttr(in.Site.Lang) + `"`)
	}
	variant := in.Meta.ThemeVariant
	if variant == "" {
		variant = in.Site.ThemeVariant
	}
	if variant != "" {
		b.WriteString(` data-theme="` + markup.EscapeAttr(variant) + `"`)
	}
	b.WriteString(">\n<head>\n")

	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")

	if title := Title(in.Meta.Title, in.Site.Name); title != "" {
		b.WriteString("<title>" + markup.EscapeText(title) + "</title>\n")
	}
	if in.Meta.Description != "" {
		b.WriteString(`<meta name="description" content="` + markup.EscapeAttr(in.Meta.Description) + "\">\n")
	}
	if len(in.Meta.Keywords) > 0 {
		b.WriteString(`<meta name="keywords" content="` + markup.EscapeAttr(strings.Join(in.Meta.Keywords, ", ")) + "\">\n")
	}

	if in.ThemeCSS != "" {
		b.WriteString("<style>\n" + in.ThemeCSS + "</style>\n")
	}
	if in.ComponentCSS != "" {
		b.WriteString("<style>\n" + in.ComponentCSS + "</style>\n")
	}
	for _, ld := range in.Meta.StructuredData {
		b.WriteString("<script type=\"application/ld+json\">\n" + ld + "\n</script>\n")
	}

	b.WriteString("</head>\n<body>\n")
	b.WriteString(in.BodyHTML)
	b.WriteString("\n")

	if in.Script != "" {
		for _, src := range in.Meta.BootstrapScripts {
			b.WriteString(`<script src="` + markup.EscapeAttr(src) + "\"></script>\n")
		}
		b.WriteString("<script>\n" + in.Script + "\n</script>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}
