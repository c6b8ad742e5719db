package markup

import "strings"

// The entity tables are normative: ampersand, less-than, and greater-than
// are always escaped; double-quote additionally in the quoted-attribute
// context.
var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
)

// EscapeText escapes s for the element-text context.
func EscapeText(s string) string { return textEscaper.Replace(s) }

// EscapeAttr escapes s for the double-quoted attribute context.
func EscapeAttr(s string) string { return attrEscaper.Replace(s) }
