package scene

import (
	"github.com/AYColumbia/quill/geom"
	"github.com/AYColumbia/quill/property"
	"github.com/AYColumbia/quill/style"
)

// TransformState is the derived transform of an element: the composed
// transform mapping the element's plane into viewport space, the perspective
// inherited from the nearest perspective-bearing ancestor, and the local
// perspective this element projects onto its own children. Each part is nil
// when absent. Absence is distinct from identity, so subtrees under
// untransformed ancestors skip composition entirely.
type TransformState struct {
	Transform        *geom.Mat4
	Perspective      *geom.Mat4
	LocalPerspective *geom.Mat4
}

// DirtyTransformState invalidates parts of the element's transform state.
// A transform change propagates to every descendant as a parent-transform
// change; a perspective change reaches only the children it projects onto.
func (e *Element) DirtyTransformState(perspectiveChanged, transformChanged, parentTransformChanged bool) {
	propagate := false
	if perspectiveChanged && !e.perspectiveDirty {
		e.perspectiveDirty = true
		propagate = true
	}
	if transformChanged && !e.transformDirty {
		e.transformDirty = true
		propagate = true
	}
	if parentTransformChanged && !e.parentTransformDirty {
		e.parentTransformDirty = true
		propagate = true
	}
	if propagate {
		for _, child := range e.children {
			child.DirtyTransformState(false, false, true)
		}
	}
}

// GetTransformState returns the element's transform state, or nil when no
// element on the ancestor chain carries a transform or perspective.
func (e *Element) GetTransformState() *TransformState {
	return e.transformState
}

// GetEffectiveTransformState returns the nearest non-nil transform,
// perspective and local perspective, searching the ancestor chain.
func (e *Element) GetEffectiveTransformState() (transform, perspective, localPerspective *geom.Mat4) {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.transformState == nil {
			continue
		}
		if transform == nil {
			transform = cur.transformState.Transform
		}
		if perspective == nil {
			perspective = cur.transformState.Perspective
		}
		if localPerspective == nil {
			localPerspective = cur.transformState.LocalPerspective
		}
		if transform != nil && perspective != nil && localPerspective != nil {
			break
		}
	}
	return transform, perspective, localPerspective
}

// UpdateTransformState recomposes the element's transform state from its
// computed values and the parent's state. Parents compose before children;
// the Update pass guarantees the ordering.
func (e *Element) UpdateTransformState() {
	e.transformDirty = false
	e.perspectiveDirty = false
	e.parentTransformDirty = false

	var parentTransform, parentLocalPerspective *geom.Mat4
	if e.parent != nil && e.parent.transformState != nil {
		parentTransform = e.parent.transformState.Transform
		parentLocalPerspective = e.parent.transformState.LocalPerspective
	}

	local := e.localTransformMatrix()
	localPerspective := e.localPerspectiveMatrix()

	if parentTransform == nil && parentLocalPerspective == nil && local == nil && localPerspective == nil {
		e.transformState = nil
		return
	}

	state := &TransformState{
		Perspective:      parentLocalPerspective,
		LocalPerspective: localPerspective,
	}

	// Composed transform: ancestor transform, then the perspective the
	// parent projects onto us, then our own local transform.
	composed := geom.Identity()
	have := false
	if parentTransform != nil {
		composed = *parentTransform
		have = true
	}
	if parentLocalPerspective != nil {
		composed = composed.Mul(*parentLocalPerspective)
		have = true
	}
	if local != nil {
		composed = composed.Mul(*local)
		have = true
	}
	if have {
		state.Transform = &composed
	}
	e.transformState = state
}

// localTransformMatrix builds the matrix of the element's own 'transform'
// property about its transform origin, in viewport coordinates. It returns
// nil when the property is none.
func (e *Element) localTransformMatrix() *geom.Mat4 {
	computed := e.ComputedValues()
	if !computed.HasLocalTransform() {
		return nil
	}

	size := e.mainBox.Size(geom.AreaBorder)
	origin := e.GetAbsoluteOffset(geom.AreaBorder).Add(geom.Vec2{
		X: style.ResolveLengthPercentage(computed.Get(property.TransformOriginX), size.X),
		Y: style.ResolveLengthPercentage(computed.Get(property.TransformOriginY), size.Y),
	})

	m := geom.Translate(origin.X, origin.Y, 0)
	for _, prim := range computed.Get(property.Transform).Transforms {
		switch prim.Kind {
		case property.TransformTranslate:
			m = m.Mul(geom.Translate(prim.X, prim.Y, 0))
		case property.TransformRotate:
			m = m.Mul(geom.RotateZ(prim.X))
		case property.TransformScale:
			m = m.Mul(geom.Scale(prim.X, prim.Y, 1))
		}
	}
	m = m.Mul(geom.Translate(-origin.X, -origin.Y, 0))
	return &m
}

// localPerspectiveMatrix builds the perspective this element applies to its
// children, about the perspective origin. It returns nil for 'perspective:
// none'.
func (e *Element) localPerspectiveMatrix() *geom.Mat4 {
	computed := e.ComputedValues()
	if !computed.HasLocalPerspective() {
		return nil
	}

	size := e.mainBox.Size(geom.AreaBorder)
	distance := style.ResolveLengthPercentage(computed.Get(property.Perspective), size.X)
	if distance <= 0 {
		return nil
	}
	origin := e.GetAbsoluteOffset(geom.AreaBorder).Add(geom.Vec2{
		X: style.ResolveLengthPercentage(computed.Get(property.PerspectiveOriginX), size.X),
		Y: style.ResolveLengthPercentage(computed.Get(property.PerspectiveOriginY), size.Y),
	})

	m := geom.Translate(origin.X, origin.Y, 0).
		Mul(geom.Perspective(distance)).
		Mul(geom.Translate(-origin.X, -origin.Y, 0))
	return &m
}

// Project maps a point from viewport space onto the element's plane through
// the inverse of the composed transform. Without an active transform the
// point passes through unchanged, and a degenerate (non-invertible)
// transform also returns the input point rather than failing: flattening
// transforms are legitimate inputs.
func (e *Element) Project(point geom.Vec2) geom.Vec2 {
	transform, _, _ := e.GetEffectiveTransformState()
	if transform == nil {
		return point
	}
	inverse, ok := transform.Invert()
	if !ok {
		return point
	}
	return inverse.TransformPoint(point)
}
