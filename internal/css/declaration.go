// Package css implements the style emission pass: converting node
// annotations into CSS declarations, fingerprinting declaration sets into
// content-addressed class names, and accumulating a deduplicated rule
// table that renders to a stylesheet.
//
// The fingerprint function is pure and depends only on declaration
// content, so the markup renderer can recompute it independently during
// its own pass and arrive at the identical class name.
package css

import "strings"

// Declaration is one ordered (property, value) CSS pair.
type Declaration struct {
	Property string
	Value    string
}

// String renders the declaration as "property:value".
func (d Declaration) String() string {
	return d.Property + ":" + d.Value
}

// renderDeclarations joins a declaration set for a rule body.
func renderDeclarations(decls []Declaration) string {
	var b strings.Builder
	for i, d := range decls {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(d.Property)
		b.WriteByte(':')
		b.WriteString(d.Value)
	}
	return b.String()
}
