package modifier

// Edge selects which box edges a spacing modifier applies to.
type Edge uint8

const (
	EdgeTop Edge = 1 << iota
	EdgeRight
	EdgeBottom
	EdgeLeft

	EdgeHorizontal = EdgeLeft | EdgeRight
	EdgeVertical   = EdgeTop | EdgeBottom
	EdgeAll        = EdgeHorizontal | EdgeVertical
)

// Padding applies inner spacing in pixels to the selected edges.
type Padding struct {
	style
	Amount int
	Edges  Edge
}

// Pad pads all four edges by px.
func Pad(px int) Padding { return Padding{Amount: px, Edges: EdgeAll} }

// PadEdges pads only the selected edges by px.
func PadEdges(px int, edges Edge) Padding { return Padding{Amount: px, Edges: edges} }

// Margin applies outer spacing in pixels to the selected edges.
type Margin struct {
	style
	Amount int
	Edges  Edge
}

// Space margins all four edges by px.
func Space(px int) Margin { return Margin{Amount: px, Edges: EdgeAll} }

// SpaceEdges margins only the selected edges by px.
func SpaceEdges(px int, edges Edge) Margin { return Margin{Amount: px, Edges: edges} }

// Background sets the background color. The value is any CSS color,
// including var() references into the theme palette.
type Background struct {
	style
	Color string
}

// Foreground sets the text color.
type Foreground struct {
	style
	Color string
}

// Font sets the font family stack.
type Font struct {
	style
	Family string
}

// FontSize sets the font size in pixels.
type FontSize struct {
	style
	Px int
}

// FontWeight sets the font weight ("400", "600", "bold", ...).
type FontWeight struct {
	style
	Weight string
}

// Bold is shorthand for FontWeight{Weight: "700"}.
func Bold() FontWeight { return FontWeight{Weight: "700"} }

// Italic renders text in italic.
type Italic struct{ style }

// Width sets a fixed width. Length is a CSS length ("240px", "50%").
type Width struct {
	style
	Length string
}

// Height sets a fixed height. Length is a CSS length.
type Height struct {
	style
	Length string
}

// MaxWidth caps the element width.
type MaxWidth struct {
	style
	Length string
}

// Radius rounds corners by px.
type Radius struct {
	style
	Px int
}

// Border draws a solid border.
type Border struct {
	style
	Px    int
	Style string
	Color string
}

// Shadow sets a box shadow. Value is the raw CSS shadow list.
type Shadow struct {
	style
	Value string
}

// Opacity sets element opacity in [0, 1].
type Opacity struct {
	style
	Value float64
}

// Display sets the CSS display mode.
type Display struct {
	style
	Value string
}

// Direction sets the flex direction ("row", "column").
type Direction struct {
	style
	Value string
}

// Gap sets the flex/grid gap in pixels.
type Gap struct {
	style
	Px int
}

// Align sets align-items.
type Align struct {
	style
	Value string
}

// Justify sets justify-content.
type Justify struct {
	style
	Value string
}

// TextAlign sets text alignment.
type TextAlign struct {
	style
	Value string
}

// LineHeight sets the line height. Value is the raw CSS value ("1.5", "24px").
type LineHeight struct {
	style
	Value string
}

// Cursor sets the pointer cursor style.
type Cursor struct {
	style
	Value string
}

// ZIndex sets the stacking order.
type ZIndex struct {
	style
	Value int
}
