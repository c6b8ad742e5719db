package css

import (
	"strconv"

	"github.com/verdantweb/verdant/internal/modifier"
)

func px(n int) string { return strconv.Itoa(n) + "px" }

// edgeDeclarations expands an edge-selective spacing modifier. All four
// edges collapse to the shorthand property; otherwise one longhand per
// selected edge, in top/right/bottom/left order.
func edgeDeclarations(property string, amount int, edges modifier.Edge) []Declaration {
	if edges == modifier.EdgeAll {
		return []Declaration{{Property: property, Value: px(amount)}}
	}
	var decls []Declaration
	if edges&modifier.EdgeTop != 0 {
		decls = append(decls, Declaration{Property: property + "-top", Value: px(amount)})
	}
	if edges&modifier.EdgeRight != 0 {
		decls = append(decls, Declaration{Property: property + "-right", Value: px(amount)})
	}
	if edges&modifier.EdgeBottom != 0 {
		decls = append(decls, Declaration{Property: property + "-bottom", Value: px(amount)})
	}
	if edges&modifier.EdgeLeft != 0 {
		decls = append(decls, Declaration{Property: property + "-left", Value: px(amount)})
	}
	return decls
}

func one(property, value string) []Declaration {
	return []Declaration{{Property: property, Value: value}}
}

func init() {
	register(modifier.Padding{}, func(s modifier.Style) []Declaration {
		m := s.(modifier.Padding)
		return edgeDeclarations("padding", m.Amount, m.Edges)
	})
	register(modifier.Margin{}, func(s modifier.Style) []Declaration {
		m := s.(modifier.Margin)
		return edgeDeclarations("margin", m.Amount, m.Edges)
	})
	register(modifier.Background{}, func(s modifier.Style) []Declaration {
		return one("background-color", s.(modifier.Background).Color)
	})
	register(modifier.Foreground{}, func(s modifier.Style) []Declaration {
		return one("color", s.(modifier.Foreground).Color)
	})
	register(modifier.Font{}, func(s modifier.Style) []Declaration {
		return one("font-family", s.(modifier.Font).Family)
	})
	register(modifier.FontSize{}, func(s modifier.Style) []Declaration {
		return one("font-size", px(s.(modifier.FontSize).Px))
	})
	register(modifier.FontWeight{}, func(s modifier.Style) []Declaration {
		return one("font-weight", s.(modifier.FontWeight).Weight)
	})
	register(modifier.Italic{}, func(modifier.Style) []Declaration {
		return one("font-style", "italic")
	})
	register(modifier.Width{}, func(s modifier.Style) []Declaration {
		return one("width", s.(modifier.Width).Length)
	})
	register(modifier.Height{}, func(s modifier.Style) []Declaration {
		return one("height", s.(modifier.Height).Length)
	})
	register(modifier.MaxWidth{}, func(s modifier.Style) []Declaration {
		return one("max-width", s.(modifier.MaxWidth).Length)
	})
	register(modifier.Radius{}, func(s modifier.Style) []Declaration {
		return one("border-radius", px(s.(modifier.Radius).Px))
	})
	register(modifier.Border{}, func(s modifier.Style) []Declaration {
		m := s.(modifier.Border)
		style := m.Style
		if style == "" {
			style = "solid"
		}
		return one("border", px(m.Px)+" "+style+" "+m.Color)
	})
	register(modifier.Shadow{}, func(s modifier.Style) []Declaration {
		return one("box-shadow", s.(modifier.Shadow).Value)
	})
	register(modifier.Opacity{}, func(s modifier.Style) []Declaration {
		return one("opacity", strconv.FormatFloat(s.(modifier.Opacity).Value, 'g', -1, 64))
	})
	register(modifier.Display{}, func(s modifier.Style) []Declaration {
		return one("display", s.(modifier.Display).Value)
	})
	register(modifier.Direction{}, func(s modifier.Style) []Declaration {
		return one("flex-direction", s.(modifier.Direction).Value)
	})
	register(modifier.Gap{}, func(s modifier.Style) []Declaration {
		return one("gap", px(s.(modifier.Gap).Px))
	})
	register(modifier.Align{}, func(s modifier.Style) []Declaration {
		return one("align-items", s.(modifier.Align).Value)
	})
	register(modifier.Justify{}, func(s modifier.Style) []Declaration {
		return one("justify-content", s.(modifier.Justify).Value)
	})
	register(modifier.TextAlign{}, func(s modifier.Style) []Declaration {
		return one("text-align", s.(modifier.TextAlign).Value)
	})
	register(modifier.LineHeight{}, func(s modifier.Style) []Declaration {
		return one("line-height", s.(modifier.LineHeight).Value)
	})
	register(modifier.Cursor{}, func(s modifier.Style) []Declaration {
		return one("cursor", s.(modifier.Cursor).Value)
	})
	register(modifier.ZIndex{}, func(s modifier.Style) []Declaration {
		return one("z-index", strconv.Itoa(s.(modifier.ZIndex).Value))
	})
}
