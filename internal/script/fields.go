// Package script implements the third emission pass: extracting event
// bindings from the node tree and composing the client-side reactivity
// script from a page's declared reactive fields.
//
// Reactive fields are declared explicitly through the Fields builder
// rather than discovered by reflecting over page structs; the framework
// collects the declaration once at page construction and never inspects
// or mutates the page itself.
package script

import (
	"fmt"
	"strconv"
	"strings"
)

type fieldKind uint8

const (
	stateField fieldKind = iota
	computedField
	actionField
)

type field struct {
	kind    fieldKind
	name    string
	initial any
}

// Fields is a page's declared reactive surface: state cells with
// serializable initial values, computed cells derived on the client, and
// named action handlers. Declaration order is preserved in the emitted
// script.
type Fields struct {
	fields []field
}

// NewFields returns an empty declaration.
func NewFields() *Fields { return &Fields{} }

// State declares a reactive state cell with its initial value.
func (f *Fields) State(name string, initial any) *Fields {
	f.fields = append(f.fields, field{kind: stateField, name: name, initial: initial})
	return f
}

// Computed declares a derived cell; it needs no initializer.
func (f *Fields) Computed(name string) *Fields {
	f.fields = append(f.fields, field{kind: computedField, name: name})
	return f
}

// Action declares a named handler, emitted as an empty-bodied function
// stub for the page's client code to fill in.
func (f *Fields) Action(name string) *Fields {
	f.fields = append(f.fields, field{kind: actionField, name: name})
	return f
}

// Empty reports whether nothing has been declared.
func (f *Fields) Empty() bool { return f == nil || len(f.fields) == 0 }

// serializeValue renders an initial value as a script literal. Strings
// are quoted and escaped for the script-string context; booleans and
// numeric types render as literals; anything else falls back to a quoted,
// escaped description. Raw interpolation never happens.
func serializeValue(v any) string {
	switch x := v.(type) {
	case string:
		return quoteJS(x)
	case bool:
		if x {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(x)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return quoteJS(fmt.Sprintf("%v", x))
	}
}

// quoteJS wraps s in double quotes, escaping backslash, quote, newline,
// and carriage return for the script-string context.
func quoteJS(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
