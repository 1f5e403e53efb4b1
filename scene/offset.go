package scene

import (
	"github.com/AYColumbia/quill/geom"
	"github.com/AYColumbia/quill/property"
	"github.com/AYColumbia/quill/style"
)

// Offset model. Each element's absolute offset is its offset parent's
// absolute offset plus a relative offset: the base position assigned by the
// layout engine plus the relative-position delta of the element itself.
// Offsets are cached and recomputed lazily, top-down, when dirty.

// SetOffset assigns the element's position: offset is the border box
// position relative to offsetParent's border box, offsetParent the element
// the offset is measured from (nil anchors to the viewport), and fixed marks
// a fixed-position element whose chain breaks at the viewport.
func (e *Element) SetOffset(offset geom.Vec2, offsetParent *Element, fixed bool) {
	if e.relativeOffsetBase == offset && e.offsetParent == offsetParent && e.offsetFixed == fixed && !e.offsetDirty {
		return
	}
	e.relativeOffsetBase = offset
	e.offsetParent = offsetParent
	e.offsetFixed = fixed
	e.DirtyOffset()
}

// GetOffsetParent returns the element offsets are measured from: the nearest
// positioned ancestor by default, nil for fixed or viewport-anchored
// elements.
func (e *Element) GetOffsetParent() *Element {
	if e.offsetFixed {
		return nil
	}
	if e.offsetParent != nil {
		return e.offsetParent
	}
	for ancestor := e.parent; ancestor != nil; ancestor = ancestor.parent {
		if ancestor.ComputedValues().Positioned() || ancestor.parent == nil {
			return ancestor
		}
	}
	return nil
}

// DirtyOffset marks the cached absolute offset of the element and its
// entire subtree stale.
func (e *Element) DirtyOffset() {
	if e.offsetDirty {
		return
	}
	e.offsetDirty = true
	// A moved element carries its plane with it.
	e.DirtyTransformState(false, true, false)
	for _, child := range e.children {
		child.DirtyOffset()
	}
}

// GetAbsoluteOffset returns the viewport position of the given box area,
// refreshing the cached offset when stale.
func (e *Element) GetAbsoluteOffset(area geom.Area) geom.Vec2 {
	if e.offsetDirty {
		e.updateOffset()
	}
	return e.absoluteOffset.Add(e.mainBox.Position(area))
}

// GetAbsoluteLeft returns the viewport X of the border box.
func (e *Element) GetAbsoluteLeft() float64 {
	return e.GetAbsoluteOffset(geom.AreaBorder).X
}

// GetAbsoluteTop returns the viewport Y of the border box.
func (e *Element) GetAbsoluteTop() float64 {
	return e.GetAbsoluteOffset(geom.AreaBorder).Y
}

// GetOffsetLeft returns the X offset from the offset parent.
func (e *Element) GetOffsetLeft() float64 {
	return e.relativeOffsetBase.X + e.relativeOffsetPosition.X
}

// GetOffsetTop returns the Y offset from the offset parent.
func (e *Element) GetOffsetTop() float64 {
	return e.relativeOffsetBase.Y + e.relativeOffsetPosition.Y
}

// updateOffset recomputes the cached absolute offset. Fixed elements anchor
// to the viewport; everyone else adds the offset parent's absolute offset,
// shifted back by its scroll state.
func (e *Element) updateOffset() {
	e.offsetDirty = false
	e.relativeOffsetPosition = e.relativePositionDelta()

	e.absoluteOffset = e.relativeOffsetBase.Add(e.relativeOffsetPosition)
	if e.offsetFixed {
		return
	}
	if parent := e.GetOffsetParent(); parent != nil {
		parentOrigin := parent.GetAbsoluteOffset(geom.AreaBorder).Sub(parent.scrollOffset)
		e.absoluteOffset = e.absoluteOffset.Add(parentOrigin)
	}
}

// relativePositionDelta resolves the top/left/right/bottom shift of a
// relatively positioned element. Left beats right and top beats bottom when
// both are definite.
func (e *Element) relativePositionDelta() geom.Vec2 {
	computed := e.ComputedValues()
	if computed.Position() != "relative" {
		return geom.Vec2{}
	}

	containing := e.containingBlockSize()
	var delta geom.Vec2
	if v := computed.Get(property.Left); !v.IsKeyword("auto") {
		delta.X = style.ResolveLengthPercentage(v, containing.X)
	} else if v := computed.Get(property.Right); !v.IsKeyword("auto") {
		delta.X = -style.ResolveLengthPercentage(v, containing.X)
	}
	if v := computed.Get(property.Top); !v.IsKeyword("auto") {
		delta.Y = style.ResolveLengthPercentage(v, containing.Y)
	} else if v := computed.Get(property.Bottom); !v.IsKeyword("auto") {
		delta.Y = -style.ResolveLengthPercentage(v, containing.Y)
	}
	return delta
}
