package scene

import (
	"github.com/AYColumbia/quill/geom"
	"github.com/AYColumbia/quill/property"
	"github.com/AYColumbia/quill/style"
)

// Box ownership. An element owns one primary box and zero or more auxiliary
// boxes for wrapped inline fragments. Boxes are normally assigned by the
// layout engine through SetBox/AddBox; updateBox refreshes the primary box
// from the computed values for elements with definite dimensions.

// SetBox assigns the element's primary box, dropping any auxiliary boxes.
func (e *Element) SetBox(box geom.Box) {
	resized := !box.Equal(&e.mainBox)
	e.mainBox = box
	e.additionalBoxes = nil
	if resized {
		e.onResize()
	}
}

// AddBox appends an auxiliary box fragment.
func (e *Element) AddBox(box geom.Box) {
	e.additionalBoxes = append(e.additionalBoxes, box)
}

// Box returns the element's primary box.
func (e *Element) Box() *geom.Box {
	return &e.mainBox
}

// GetBox returns the box at the given index. An out-of-range index degrades
// to the primary box rather than failing.
func (e *Element) GetBox(index int) *geom.Box {
	if index <= 0 || index > len(e.additionalBoxes) {
		return &e.mainBox
	}
	return &e.additionalBoxes[index-1]
}

// NumBoxes returns the number of boxes the element owns, the primary box
// included.
func (e *Element) NumBoxes() int {
	return 1 + len(e.additionalBoxes)
}

// SetClientArea selects which box area is the element's client area. The
// default is the padding area.
func (e *Element) SetClientArea(area geom.Area) {
	e.clientArea = area
}

// onResize reacts to a change of the primary box: offsets of the subtree and
// the transform origin both depend on the border box.
func (e *Element) onResize() {
	e.DirtyOffset()
	e.DirtyTransformState(true, true, false)
	e.DirtyStackingContext()
	if e.behavior != nil {
		e.behavior.OnResize(e)
	}
}

// updateBox refreshes the primary box from the computed values. Properties
// with definite lengths override the externally laid-out dimensions; auto
// dimensions keep whatever the layout engine assigned.
func (e *Element) updateBox() {
	e.boxDirty = false

	containing := e.containingBlockSize()
	computed := e.ComputedValues()

	box := e.mainBox
	content := box.Size(geom.AreaContent)
	if v := computed.Get(property.Width); !v.IsKeyword("auto") {
		content.X = style.ResolveLengthPercentage(v, containing.X)
	}
	if v := computed.Get(property.Height); !v.IsKeyword("auto") {
		content.Y = style.ResolveLengthPercentage(v, containing.Y)
	}
	content.X = clampDimension(content.X, computed, property.MinWidth, property.MaxWidth, containing.X)
	content.Y = clampDimension(content.Y, computed, property.MinHeight, property.MaxHeight, containing.Y)
	box.SetContent(content)

	// Edge percentages all resolve against the containing block width, per
	// the box model convention.
	resolveEdges := func(top, right, bottom, left property.ID) geom.Edges {
		return geom.Edges{
			Top:    style.ResolveLengthPercentage(computed.Get(top), containing.X),
			Right:  style.ResolveLengthPercentage(computed.Get(right), containing.X),
			Bottom: style.ResolveLengthPercentage(computed.Get(bottom), containing.X),
			Left:   style.ResolveLengthPercentage(computed.Get(left), containing.X),
		}
	}
	box.SetEdges(geom.AreaMargin, resolveEdges(property.MarginTop, property.MarginRight, property.MarginBottom, property.MarginLeft))
	box.SetEdges(geom.AreaBorder, resolveEdges(property.BorderTopWidth, property.BorderRightWidth, property.BorderBottomWidth, property.BorderLeftWidth))
	box.SetEdges(geom.AreaPadding, resolveEdges(property.PaddingTop, property.PaddingRight, property.PaddingBottom, property.PaddingLeft))

	if !box.Equal(&e.mainBox) {
		e.mainBox = box
		e.onResize()
	}
	if e.behavior != nil {
		e.behavior.OnLayout(e)
	}
}

func clampDimension(v float64, computed *style.Computed, minID, maxID property.ID, base float64) float64 {
	if maxV := computed.Get(maxID); !maxV.IsKeyword("none") {
		if max := style.ResolveLengthPercentage(maxV, base); v > max {
			v = max
		}
	}
	if min := style.ResolveLengthPercentage(computed.Get(minID), base); v < min {
		v = min
	}
	return v
}

// containingBlockSize returns the content size of the parent, or the
// document viewport for a root element.
func (e *Element) containingBlockSize() geom.Vec2 {
	if e.parent != nil {
		return e.parent.mainBox.Size(geom.AreaContent)
	}
	if e.ownerDocument != nil {
		return e.ownerDocument.viewport
	}
	return geom.Vec2{}
}

// Client queries. The client area is the padding box by default.

// GetClientLeft returns the left edge of the client area relative to the
// border box.
func (e *Element) GetClientLeft() float64 {
	return e.mainBox.Position(e.clientArea).X
}

// GetClientTop returns the top edge of the client area relative to the
// border box.
func (e *Element) GetClientTop() float64 {
	return e.mainBox.Position(e.clientArea).Y
}

// GetClientWidth returns the width of the client area.
func (e *Element) GetClientWidth() float64 {
	return e.mainBox.Size(e.clientArea).X
}

// GetClientHeight returns the height of the client area.
func (e *Element) GetClientHeight() float64 {
	return e.mainBox.Size(e.clientArea).Y
}

// GetOffsetWidth returns the width of the border box.
func (e *Element) GetOffsetWidth() float64 {
	return e.mainBox.Size(geom.AreaBorder).X
}

// GetOffsetHeight returns the height of the border box.
func (e *Element) GetOffsetHeight() float64 {
	return e.mainBox.Size(geom.AreaBorder).Y
}

// Scroll state. Scroll offsets shift the children of the element and are
// clamped to the scrollable overflow.

// GetScrollLeft returns the horizontal scroll offset.
func (e *Element) GetScrollLeft() float64 {
	return e.scrollOffset.X
}

// SetScrollLeft sets the horizontal scroll offset, clamped to the scrollable
// range.
func (e *Element) SetScrollLeft(left float64) {
	e.setScrollOffset(geom.Vec2{X: clamp(left, 0, e.GetScrollWidth()-e.GetClientWidth()), Y: e.scrollOffset.Y})
}

// GetScrollTop returns the vertical scroll offset.
func (e *Element) GetScrollTop() float64 {
	return e.scrollOffset.Y
}

// SetScrollTop sets the vertical scroll offset, clamped to the scrollable
// range.
func (e *Element) SetScrollTop(top float64) {
	e.setScrollOffset(geom.Vec2{X: e.scrollOffset.X, Y: clamp(top, 0, e.GetScrollHeight()-e.GetClientHeight())})
}

func (e *Element) setScrollOffset(offset geom.Vec2) {
	if offset == e.scrollOffset {
		return
	}
	e.scrollOffset = offset
	for _, child := range e.children {
		child.DirtyOffset()
	}
}

// GetScrollWidth returns the width of the scrollable content: at least the
// client width, extended by overflowing children.
func (e *Element) GetScrollWidth() float64 {
	return e.scrollSize().X
}

// GetScrollHeight returns the height of the scrollable content.
func (e *Element) GetScrollHeight() float64 {
	return e.scrollSize().Y
}

func (e *Element) scrollSize() geom.Vec2 {
	size := e.mainBox.Size(e.clientArea)
	origin := e.GetAbsoluteOffset(e.clientArea)
	for _, child := range e.children {
		childOffset := child.GetAbsoluteOffset(geom.AreaBorder).Sub(origin).Add(e.scrollOffset)
		extent := childOffset.Add(child.mainBox.Size(geom.AreaBorder))
		if extent.X > size.X {
			size.X = extent.X
		}
		if extent.Y > size.Y {
			size.Y = extent.Y
		}
	}
	return size
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsPointWithinElement reports whether a point in viewport coordinates falls
// inside any of the element's boxes. The point is projected onto the
// element's plane first when a transform is active.
func (e *Element) IsPointWithinElement(point geom.Vec2) bool {
	point = e.Project(point)
	for i := 0; i < e.NumBoxes(); i++ {
		box := e.GetBox(i)
		pos := e.GetAbsoluteOffset(geom.AreaBorder).Add(box.Position(geom.AreaBorder))
		size := box.Size(geom.AreaBorder)
		if point.X >= pos.X && point.X <= pos.X+size.X &&
			point.Y >= pos.Y && point.Y <= pos.Y+size.Y {
			return true
		}
	}
	return false
}

// IntrinsicSizer is implemented by behaviors of replaced elements that carry
// a natural size, such as images.
type IntrinsicSizer interface {
	IntrinsicDimensions() (size geom.Vec2, ratio float64)
}

// GetIntrinsicDimensions returns the element's natural size and aspect ratio
// when its behavior provides one. Elements without intrinsic dimensions
// report false and size themselves from style alone.
func (e *Element) GetIntrinsicDimensions() (geom.Vec2, float64, bool) {
	if sizer, ok := e.behavior.(IntrinsicSizer); ok {
		size, ratio := sizer.IntrinsicDimensions()
		return size, ratio, true
	}
	return geom.Vec2{}, 0, false
}

// GetBaseline returns the distance from the top of the border box to the
// text baseline, following the resolved font face when present.
func (e *Element) GetBaseline() float64 {
	if e.fontFace == nil {
		return e.mainBox.Size(geom.AreaBorder).Y
	}
	return e.mainBox.Position(geom.AreaContent).Y + e.fontFace.Baseline()
}
