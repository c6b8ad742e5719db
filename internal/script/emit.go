package script

import (
	"strconv"
	"strings"
)

// Emit composes the client reactivity script from a page's declared
// fields and the bindings extracted from its tree. When nothing is
// declared and no binding exists the result is exactly the empty string,
// so pages without reactivity carry no script markup at all.
func Emit(fields *Fields, bindings []Binding) string {
	if fields.Empty() && len(bindings) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("(() => {\n")

	if !fields.Empty() {
		for _, f := range fields.fields {
			switch f.kind {
			case stateField:
				b.WriteString("let ")
				b.WriteString(f.name)
				b.WriteString(" = ")
				b.WriteString(serializeValue(f.initial))
				b.WriteString(";\n")
			case computedField:
				b.WriteString("let ")
				b.WriteString(f.name)
				b.WriteString(";\n")
			case actionField:
				b.WriteString("function ")
				b.WriteString(f.name)
				b.WriteString("() {}\n")
			}
		}
	}

	for _, bind := range bindings {
		b.WriteString(`document.querySelector('[data-rid="`)
		b.WriteString(strconv.Itoa(bind.Position))
		b.WriteString(`"]').addEventListener(`)
		b.WriteString(quoteJS(bind.Event))
		b.WriteString(", ")
		b.WriteString(bind.Handler)
		b.WriteString(");\n")
	}

	b.WriteString("})();")
	return b.String()
}
