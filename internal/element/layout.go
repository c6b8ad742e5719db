package element

import (
	"github.com/verdantweb/verdant/internal/modifier"
	"github.com/verdantweb/verdant/internal/node"
)

// Row lays children out horizontally with the given gap in pixels.
func Row(gap int, children ...node.Node) node.Node {
	return node.Modify(Div(children...),
		modifier.Display{Value: "flex"},
		modifier.Direction{Value: "row"},
		modifier.Gap{Px: gap},
	)
}

// Column lays children out vertically with the given gap in pixels.
func Column(gap int, children ...node.Node) node.Node {
	return node.Modify(Div(children...),
		modifier.Display{Value: "flex"},
		modifier.Direction{Value: "column"},
		modifier.Gap{Px: gap},
	)
}
