package css

import (
	"github.com/verdantweb/verdant/internal/element"
	"github.com/verdantweb/verdant/internal/modifier"
	"github.com/verdantweb/verdant/internal/node"
)

// collector accumulates rules while walking a tree.
type collector struct {
	table *RuleTable
}

// Visit converts an element's collapsed modifier chain into one
// declaration set and records it. Chains are fingerprinted only where
// the renderer can attach a class, so every rule in the table is
// referenced by at least one tag; the walk carries annotations on
// composites down to their expansion.
func (c *collector) Visit(n node.Node, mods []modifier.Modifier) bool {
	if _, ok := n.(*element.Element); !ok {
		return true
	}
	if len(mods) == 0 {
		return true
	}
	decls := Convert(mods)
	if len(decls) == 0 {
		return true
	}
	c.table.Insert(ClassName(decls), decls)
	return true
}

// Collect walks the tree rooted at root and returns the deduplicated rule
// table: exactly one entry per distinct declaration set encountered,
// regardless of how many nodes produced it.
func Collect(root node.Node) *RuleTable {
	c := &collector{table: NewRuleTable()}
	node.Walk(root, c)
	return c.table
}
