package scene

import (
	"image/color"

	"github.com/AYColumbia/quill/geom"
	"github.com/AYColumbia/quill/property"
	"github.com/AYColumbia/quill/render"
)

// Update runs one update pass over the element and its subtree. Derived
// state is refreshed in dependency order so that each stage reads only
// already-clean inputs: style first, then fonts, boxes, offsets, transforms,
// and finally the stacking order. Clean elements pass through at dirty-flag
// cost.
func (e *Element) Update(dpRatio float64) {
	if e.behavior != nil {
		e.behavior.OnUpdate(e)
	}
	if e.structureDirty {
		e.updateStructure()
	}

	e.advanceAnimations(e.frameDelta())
	e.resolveStyleIfNeeded()
	if e.transitionDirty {
		e.updateTransition()
	}
	if e.animationDirty {
		e.updateAnimation()
	}
	// Freshly started animations and transitions write their first overlay
	// value through the style path.
	e.resolveStyleIfNeeded()

	if e.fontDirty {
		e.updateFont()
	}
	if e.boxDirty {
		e.updateBox()
	}
	if e.offsetDirty {
		e.updateOffset()
	}
	if e.transformDirty || e.perspectiveDirty || e.parentTransformDirty {
		e.UpdateTransformState()
	}
	if e.clippingDirty {
		e.updateClipping()
	}

	for _, child := range e.children {
		child.Update(dpRatio)
	}

	e.BuildStackingContext()
}

// updateStructure re-marks selector-relevant style state after a child list
// change. Structural selectors can match any element of the subtree, so the
// whole subtree's cascade is stale.
func (e *Element) updateStructure() {
	e.structureDirty = false
	e.DirtyStyle()
	e.eachDescendant((*Element).DirtyStyle)
}

func (e *Element) frameDelta() float64 {
	if e.ownerDocument == nil {
		return 0
	}
	return e.ownerDocument.frameDelta
}

// SetClippingIgnoreDepth sets how many clipping ancestors the element's
// geometry escapes when rendered. Zero clips normally; each increment skips
// the next nearest ancestor whose overflow hides content.
func (e *Element) SetClippingIgnoreDepth(depth int) {
	if depth < 0 {
		depth = 0
	}
	e.clippingIgnoreDepth = depth
}

// GetClippingIgnoreDepth returns the clipping escape depth.
func (e *Element) GetClippingIgnoreDepth() int {
	return e.clippingIgnoreDepth
}

// IsClippingEnabled reports whether the element hides overflowing
// descendant geometry.
func (e *Element) IsClippingEnabled() bool {
	if e.clippingDirty {
		e.updateClipping()
	}
	return e.clippingEnabled
}

func (e *Element) updateClipping() {
	e.clippingDirty = false
	computed := e.ComputedValues()
	e.clippingEnabled = !computed.Get(property.OverflowX).IsKeyword("visible") ||
		!computed.Get(property.OverflowY).IsKeyword("visible")
}

// Render paints the element and its subtree in stacking order. The caller
// must have run Update first; Render reads derived state without refreshing
// it.
func (e *Element) Render() {
	if !e.visible {
		return
	}
	if !e.localStackingContext {
		// Rendered as part of an ancestor's context; paint in tree order.
		e.paint()
		for _, child := range e.children {
			child.Render()
		}
		return
	}
	for _, el := range e.stackingContext {
		if el == e {
			e.paint()
			continue
		}
		el.Render()
	}
}

// paint emits the element's own geometry: background fill and border edges
// for each of its boxes, under the element's transform and the clip region
// of its ancestors.
func (e *Element) paint() {
	doc := e.ownerDocument
	if doc == nil || doc.renderer == nil {
		return
	}
	renderer := doc.renderer

	if state := e.GetTransformState(); state != nil {
		renderer.SetTransform(state.Transform)
	} else {
		renderer.SetTransform(nil)
	}
	e.applyClipRegion(renderer)

	computed := e.ComputedValues()
	opacity := computed.Opacity()
	background := applyOpacity(computed.Get(property.BackgroundColor).Color, opacity)

	for i := 0; i < e.NumBoxes(); i++ {
		box := e.GetBox(i)
		origin := e.GetAbsoluteOffset(geom.AreaBorder)
		if background.A > 0 {
			pos := origin.Add(box.Position(geom.AreaPadding))
			vertices, indices := render.QuadVertices(pos, box.Size(geom.AreaPadding), background)
			renderer.RenderGeometry(vertices, indices, 0, geom.Vec2{})
		}
		e.paintBorders(renderer, box, origin, opacity)
	}

	if e.behavior != nil {
		e.behavior.OnRender(e)
	}
}

func (e *Element) paintBorders(renderer render.Interface, box *geom.Box, origin geom.Vec2, opacity float64) {
	edges := box.Edge(geom.AreaBorder)
	if edges == (geom.Edges{}) {
		return
	}
	computed := e.ComputedValues()
	size := box.Size(geom.AreaBorder)

	quads := []struct {
		color property.ID
		pos   geom.Vec2
		dim   geom.Vec2
	}{
		{property.BorderTopColor, geom.Vec2{}, geom.Vec2{X: size.X, Y: edges.Top}},
		{property.BorderBottomColor, geom.Vec2{Y: size.Y - edges.Bottom}, geom.Vec2{X: size.X, Y: edges.Bottom}},
		{property.BorderLeftColor, geom.Vec2{Y: edges.Top}, geom.Vec2{X: edges.Left, Y: size.Y - edges.Top - edges.Bottom}},
		{property.BorderRightColor, geom.Vec2{X: size.X - edges.Right, Y: edges.Top}, geom.Vec2{X: edges.Right, Y: size.Y - edges.Top - edges.Bottom}},
	}
	for _, q := range quads {
		if q.dim.X <= 0 || q.dim.Y <= 0 {
			continue
		}
		col := applyOpacity(computed.Get(q.color).Color, opacity)
		if col.A == 0 {
			continue
		}
		vertices, indices := render.QuadVertices(origin.Add(q.pos), q.dim, col)
		renderer.RenderGeometry(vertices, indices, 0, geom.Vec2{})
	}
}

// applyClipRegion configures the scissor for the element: the intersection
// of the client areas of its clipping ancestors, less the nearest
// clippingIgnoreDepth of them.
func (e *Element) applyClipRegion(renderer render.Interface) {
	region, clipped := e.clipRegion()
	renderer.EnableScissorRegion(clipped)
	if clipped {
		renderer.SetScissorRegion(
			int(region.Min.X), int(region.Min.Y),
			int(region.Max.X-region.Min.X), int(region.Max.Y-region.Min.Y),
		)
	}
}

type clipRect struct {
	Min, Max geom.Vec2
}

func (e *Element) clipRegion() (clipRect, bool) {
	skip := e.clippingIgnoreDepth
	var region clipRect
	clipped := false
	for ancestor := e.parent; ancestor != nil; ancestor = ancestor.parent {
		if !ancestor.IsClippingEnabled() {
			continue
		}
		if skip > 0 {
			skip--
			continue
		}
		min := ancestor.GetAbsoluteOffset(ancestor.clientArea)
		max := min.Add(ancestor.Box().Size(ancestor.clientArea))
		if !clipped {
			region = clipRect{Min: min, Max: max}
			clipped = true
			continue
		}
		if min.X > region.Min.X {
			region.Min.X = min.X
		}
		if min.Y > region.Min.Y {
			region.Min.Y = min.Y
		}
		if max.X < region.Max.X {
			region.Max.X = max.X
		}
		if max.Y < region.Max.Y {
			region.Max.Y = max.Y
		}
	}
	if clipped {
		if region.Max.X < region.Min.X {
			region.Max.X = region.Min.X
		}
		if region.Max.Y < region.Min.Y {
			region.Max.Y = region.Min.Y
		}
	}
	return region, clipped
}

func applyOpacity(c property.Color, opacity float64) color.RGBA {
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * opacity)}
}
