package css

import (
	"fmt"
	"reflect"

	"github.com/verdantweb/verdant/internal/modifier"
)

// Conversion expands one style modifier into zero or more declarations.
type Conversion func(modifier.Style) []Declaration

// conversions maps each style modifier's concrete type to its expansion.
// Populated at init from builtin.go; read-only afterwards, so lookups are
// safe under concurrent requests.
var conversions = map[reflect.Type]Conversion{}

// register installs the conversion for the concrete type of proto.
func register(proto modifier.Style, fn Conversion) {
	conversions[reflect.TypeOf(proto)] = fn
}

// Convert expands a modifier list in application order into one ordered
// declaration set. Behavior modifiers contribute nothing. A style
// modifier with no registered conversion is a defect in the catalog and
// panics rather than being dropped silently.
func Convert(mods []modifier.Modifier) []Declaration {
	var decls []Declaration
	for _, m := range mods {
		s, ok := m.(modifier.Style)
		if !ok {
			continue
		}
		fn, ok := conversions[reflect.TypeOf(s)]
		if !ok {
			panic(fmt.Sprintf("verdant/css: no conversion registered for %T", s))
		}
		decls = append(decls, fn(s)...)
	}
	return decls
}
