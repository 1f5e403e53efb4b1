package geom

// Area identifies one of the four nested rectangles of the box model.
// Reference: https://www.w3.org/TR/CSS2/box.html
type Area int

const (
	AreaMargin Area = iota
	AreaBorder
	AreaPadding
	AreaContent

	NumAreas
)

// String returns the name of the area.
func (a Area) String() string {
	switch a {
	case AreaMargin:
		return "margin"
	case AreaBorder:
		return "border"
	case AreaPadding:
		return "padding"
	case AreaContent:
		return "content"
	}
	return "unknown"
}

// Edges holds the widths of the four edges of one box area.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// Box describes the geometry of a single element fragment: a content size
// plus padding, border and margin edge widths. The box carries no absolute
// position of its own; offsets are tracked by the owning element.
type Box struct {
	content Vec2
	edges   [NumAreas]Edges
}

// NewBox creates a box with the given content dimensions and no edges.
func NewBox(content Vec2) Box {
	return Box{content: content}
}

// SetContent sets the content dimensions of the box.
func (b *Box) SetContent(content Vec2) {
	b.content = content
}

// SetEdges sets the edge widths of one area of the box. Setting edges on
// AreaContent has no effect.
func (b *Box) SetEdges(area Area, edges Edges) {
	if area == AreaContent {
		return
	}
	b.edges[area] = edges
}

// Edge returns the edge widths of the given area.
func (b *Box) Edge(area Area) Edges {
	return b.edges[area]
}

// Position returns the offset of the given area's top-left corner, relative
// to the border box (the element's layout position, margins excluded).
func (b *Box) Position(area Area) Vec2 {
	var pos Vec2
	switch area {
	case AreaMargin:
		pos = Vec2{-b.edges[AreaMargin].Left, -b.edges[AreaMargin].Top}
	case AreaBorder:
		// Border box is the origin.
	case AreaPadding:
		pos = Vec2{b.edges[AreaBorder].Left, b.edges[AreaBorder].Top}
	case AreaContent:
		pos = Vec2{
			b.edges[AreaBorder].Left + b.edges[AreaPadding].Left,
			b.edges[AreaBorder].Top + b.edges[AreaPadding].Top,
		}
	}
	return pos
}

// Size returns the dimensions of the given area of the box.
func (b *Box) Size(area Area) Vec2 {
	size := b.content
	switch area {
	case AreaMargin:
		size.X += b.edges[AreaPadding].Left + b.edges[AreaPadding].Right +
			b.edges[AreaBorder].Left + b.edges[AreaBorder].Right +
			b.edges[AreaMargin].Left + b.edges[AreaMargin].Right
		size.Y += b.edges[AreaPadding].Top + b.edges[AreaPadding].Bottom +
			b.edges[AreaBorder].Top + b.edges[AreaBorder].Bottom +
			b.edges[AreaMargin].Top + b.edges[AreaMargin].Bottom
	case AreaBorder:
		size.X += b.edges[AreaPadding].Left + b.edges[AreaPadding].Right +
			b.edges[AreaBorder].Left + b.edges[AreaBorder].Right
		size.Y += b.edges[AreaPadding].Top + b.edges[AreaPadding].Bottom +
			b.edges[AreaBorder].Top + b.edges[AreaBorder].Bottom
	case AreaPadding:
		size.X += b.edges[AreaPadding].Left + b.edges[AreaPadding].Right
		size.Y += b.edges[AreaPadding].Top + b.edges[AreaPadding].Bottom
	}
	return size
}

// Equal reports whether two boxes have identical geometry.
func (b *Box) Equal(other *Box) bool {
	return b.content == other.content && b.edges == other.edges
}
