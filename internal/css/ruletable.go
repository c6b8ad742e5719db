package css

import (
	"strings"

	"github.com/verdantweb/verdant/internal/modifier"
)

// RuleTable is an insertion-ordered, deduplicated mapping from class name
// to declaration set. One table is built per request and discarded with
// the response; it is not safe for concurrent mutation and never needs to
// be, since each request owns its own.
type RuleTable struct {
	order []string
	rules map[string][]Declaration
}

// NewRuleTable returns an empty table.
func NewRuleTable() *RuleTable {
	return &RuleTable{rules: make(map[string][]Declaration)}
}

// Insert records a class and its declaration set. Insertion is
// idempotent: a class already present is left untouched (first writer
// wins; by construction a repeated class carries identical content).
// Empty declaration sets are never inserted.
func (t *RuleTable) Insert(class string, decls []Declaration) {
	if len(decls) == 0 {
		return
	}
	if _, ok := t.rules[class]; ok {
		return
	}
	t.order = append(t.order, class)
	t.rules[class] = decls
}

// Has reports whether class is present.
func (t *RuleTable) Has(class string) bool {
	_, ok := t.rules[class]
	return ok
}

// Len reports the number of distinct rules.
func (t *RuleTable) Len() int { return len(t.order) }

// Classes returns the class names in insertion order.
func (t *RuleTable) Classes() []string {
	return append([]string(nil), t.order...)
}

// Declarations returns the declaration set for class, or nil.
func (t *RuleTable) Declarations(class string) []Declaration {
	return t.rules[class]
}

// Stylesheet renders the table as CSS rules in insertion order.
func (t *RuleTable) Stylesheet() string {
	var b strings.Builder
	for _, class := range t.order {
		b.WriteByte('.')
		b.WriteString(class)
		b.WriteByte('{')
		b.WriteString(renderDeclarations(t.rules[class]))
		b.WriteByte('}')
		b.WriteByte('\n')
	}
	return b.String()
}

// ClassFor replays the collection pass's conversion and fingerprint logic
// over a modifier list and returns the class name the collector assigned,
// or false when the list yields no declarations. This is the lookup
// callback the markup renderer closes over; it must share Convert and
// ClassName with Collect or styling silently diverges.
func (t *RuleTable) ClassFor(mods []modifier.Modifier) (string, bool) {
	decls := Convert(mods)
	if len(decls) == 0 {
		return "", false
	}
	class := ClassName(decls)
	if !t.Has(class) {
		return "", false
	}
	return class, true
}
