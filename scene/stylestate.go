package scene

import (
	"fmt"

	"github.com/AYColumbia/quill/property"
	"github.com/AYColumbia/quill/render"
	"github.com/AYColumbia/quill/style"
)

// PropertyChange records one property whose computed value changed during a
// style resolution.
type PropertyChange struct {
	ID  property.ID
	Old property.Value
	New property.Value
}

// DirtyStyle marks the element's computed values stale. The snapshot is
// rebuilt once at the next Update regardless of how many mutations occurred
// in between.
func (e *Element) DirtyStyle() {
	e.styleDirty = true
}

// SetProperty parses and sets a local property override from its string
// form. It returns false when the value does not parse, leaving any prior
// value untouched and logging through the system interface.
func (e *Element) SetProperty(name, value string) bool {
	id, ok := property.Lookup(name)
	if !ok {
		e.logError(render.LogWarning, ErrInvalidProperty(fmt.Sprintf("'%s: %s' on %s: unknown property", name, value, e.Address(false))))
		return false
	}
	parsed, ok := property.ParseValue(id, value)
	if !ok {
		e.logError(render.LogWarning, ErrInvalidProperty(fmt.Sprintf("'%s: %s' on %s", name, value, e.Address(false))))
		return false
	}
	e.SetPropertyValue(id, parsed)
	return true
}

// SetPropertyValue sets a local property override from an already parsed
// value.
func (e *Element) SetPropertyValue(id property.ID, value property.Value) {
	if old, ok := e.localProperties[id]; ok && old.Equal(value) {
		return
	}
	e.localProperties[id] = value
	e.DirtyStyle()
}

// RemoveProperty removes a local property override, letting the cascade's
// value show through again.
func (e *Element) RemoveProperty(name string) {
	id, ok := property.Lookup(name)
	if !ok {
		return
	}
	if _, had := e.localProperties[id]; !had {
		return
	}
	delete(e.localProperties, id)
	e.DirtyStyle()
}

// GetLocalProperty returns the element's own property override, bypassing
// the cascade. The second return value is false when no override is set.
func (e *Element) GetLocalProperty(id property.ID) (property.Value, bool) {
	v, ok := e.localProperties[id]
	return v, ok
}

// GetProperty returns the current computed value of a property, including
// any animation overlay. Reading forces a style resolution when dirty.
func (e *Element) GetProperty(id property.ID) property.Value {
	e.resolveStyleIfNeeded()
	return e.computed.Get(id)
}

// ComputedValues returns the element's computed snapshot, resolving it first
// when dirty. The returned snapshot is immutable.
func (e *Element) ComputedValues() *style.Computed {
	e.resolveStyleIfNeeded()
	return e.computed
}

// ResolveLengthPercentage resolves the computed value of a property against
// a caller-supplied base value, typically a containing block dimension.
func (e *Element) ResolveLengthPercentage(id property.ID, base float64) float64 {
	return style.ResolveLengthPercentage(e.GetProperty(id), base)
}

func (e *Element) environment() style.Environment {
	if e.ownerDocument != nil {
		return e.ownerDocument.environment()
	}
	return style.Environment{}
}

func (e *Element) matchedDeclarations() []style.Declaration {
	if e.ownerDocument != nil && e.ownerDocument.cascade != nil {
		return e.ownerDocument.cascade.MatchedDeclarations(e)
	}
	return nil
}

func (e *Element) localDeclarations() []style.Declaration {
	if len(e.localProperties) == 0 {
		return nil
	}
	decls := make([]style.Declaration, 0, len(e.localProperties))
	for id := property.ID(0); id < property.NumProperties; id++ {
		if v, ok := e.localProperties[id]; ok {
			decls = append(decls, style.Declaration{ID: id, Value: v})
		}
	}
	return decls
}

func (e *Element) overlayDeclarations() []style.Declaration {
	if len(e.overlay) == 0 {
		return nil
	}
	decls := make([]style.Declaration, 0, len(e.overlay))
	for id := property.ID(0); id < property.NumProperties; id++ {
		if v, ok := e.overlay[id]; ok {
			decls = append(decls, style.Declaration{ID: id, Value: v})
		}
	}
	return decls
}

func (e *Element) resolveStyleIfNeeded() {
	if !e.styleDirty {
		return
	}
	e.resolveStyle()
}

// resolveStyle rebuilds the cascaded and computed snapshots and classifies
// the changed properties into the dirty flags of the dependent subsystems.
// Resolution is idempotent: identical inputs yield identical snapshots.
func (e *Element) resolveStyle() {
	e.styleDirty = false

	var parentComputed *style.Computed
	if e.parent != nil {
		parentComputed = e.parent.ComputedValues()
	}

	matched := e.matchedDeclarations()
	local := e.localDeclarations()
	env := e.environment()

	oldCascaded := e.cascaded
	oldComputed := e.computed
	e.cascaded = style.Compute(parentComputed, matched, local, nil, env)
	if len(e.overlay) == 0 {
		e.computed = e.cascaded
	} else {
		e.computed = style.Compute(parentComputed, matched, local, e.overlayDeclarations(), env)
	}

	// Transitions watch the cascade, not the overlay: an animated value on
	// top of a changing cascade must not retrigger its own transition.
	e.startTransitions(oldCascaded, e.cascaded)

	changedIDs := style.Diff(oldComputed, e.computed)
	if len(changedIDs) == 0 {
		return
	}

	changes := make([]PropertyChange, len(changedIDs))
	for i, id := range changedIDs {
		old := style.DefaultValue(id)
		if oldComputed != nil {
			old = oldComputed.Get(id)
		}
		changes[i] = PropertyChange{ID: id, Old: old, New: e.computed.Get(id)}
	}
	e.classifyChanges(changes)

	if e.behavior != nil {
		e.behavior.OnPropertyChange(e, changes)
	}

	// Inherited values flow down: children resolve against this snapshot.
	for _, id := range changedIDs {
		if id.Inherited() {
			for _, child := range e.children {
				child.DirtyStyle()
			}
			break
		}
	}
}

// classifyChanges maps changed properties to the subsystems they invalidate.
// The property package keeps the classification table total, so no change
// can fall through unclassified.
func (e *Element) classifyChanges(changes []PropertyChange) {
	var effects property.Effect
	for _, ch := range changes {
		effects |= ch.ID.Effects()
		if ch.ID == property.OverflowX || ch.ID == property.OverflowY {
			e.clippingDirty = true
		}
	}

	if effects&property.EffectLayout != 0 {
		e.boxDirty = true
	}
	if effects&(property.EffectLayout|property.EffectOffset) != 0 {
		e.DirtyOffset()
	}
	if effects&property.EffectFont != 0 {
		e.DirtyFont()
	}
	if effects&(property.EffectTransform|property.EffectPerspective) != 0 {
		e.DirtyTransformState(
			effects&property.EffectPerspective != 0,
			effects&property.EffectTransform != 0,
			false,
		)
	}
	if effects&property.EffectStacking != 0 {
		e.refreshStackingState()
	}
	if effects&property.EffectTransitionList != 0 {
		e.transitionDirty = true
	}
	if effects&property.EffectAnimationList != 0 {
		e.animationDirty = true
	}

	e.refreshVisibility()
}

// refreshVisibility recomputes the cached visible flag from the computed
// display and visibility values.
func (e *Element) refreshVisibility() {
	visible := e.computed.Visible() && !e.computed.Get(property.Display).IsKeyword("none")
	if visible == e.visible {
		return
	}
	e.visible = visible
	e.dirtyAncestorStackingContext()
}

// DirtyFont forces a re-resolution of the element's font face. The boxes of
// the subtree follow, since em lengths and text metrics depend on the face.
func (e *Element) DirtyFont() {
	e.fontDirty = true
	for _, child := range e.children {
		child.DirtyFont()
	}
}

func (e *Element) updateFont() {
	e.fontDirty = false

	doc := e.ownerDocument
	if doc == nil || doc.fontEngine == nil {
		return
	}

	computed := e.ComputedValues()
	family := computed.Get(property.FontFamily).Str
	weight := computed.Get(property.FontWeight).String()
	fontStyle := computed.Get(property.FontStyle).Keyword

	face, ok := doc.fontEngine.FaceHandle(family, weight, fontStyle, computed.FontSize())
	if !ok {
		e.logMessage(render.LogWarning, fmt.Sprintf("no font face for family '%s' on %s", family, e.Address(false)))
		return
	}
	if face == e.fontFace {
		return
	}
	if e.fontFace != nil {
		doc.fontEngine.ReleaseFaceHandle(e.fontFace)
	}
	e.fontFace = face
	// A different face changes metrics, so the box must rebuild.
	e.boxDirty = true
}

// FontFace returns the element's resolved font face handle, or nil.
func (e *Element) FontFace() render.FontFaceHandle {
	return e.fontFace
}
