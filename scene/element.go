// Package scene implements the retained-mode element tree: structural
// mutation with DOM-like semantics, cascaded style state, the box and offset
// model, stacking contexts, 3-D transform state, and property animation, all
// kept consistent under incremental mutation through per-element dirty flags
// rather than full recomputation.
package scene

import (
	"strings"

	"github.com/AYColumbia/quill/anim"
	"github.com/AYColumbia/quill/geom"
	"github.com/AYColumbia/quill/property"
	"github.com/AYColumbia/quill/render"
	"github.com/AYColumbia/quill/style"
)

// Element is a node of the scene graph. Elements are created detached and
// owned by whoever holds them; attaching transfers ownership to the parent,
// removal transfers it back to the caller.
type Element struct {
	tag string
	id  string

	classes       []string
	pseudoClasses map[string]bool
	attributes    map[string]string

	ownerDocument *Document
	parent        *Element
	children      []*Element
	behavior      Behavior

	// Style state. cascaded is the snapshot without the animation overlay;
	// computed layers the overlay on top and is what everything consumes.
	localProperties map[property.ID]property.Value
	overlay         map[property.ID]property.Value
	cascaded        *style.Computed
	computed        *style.Computed
	styleDirty      bool
	structureDirty  bool

	// Box state.
	mainBox         geom.Box
	additionalBoxes []geom.Box
	clientArea      geom.Area
	boxDirty        bool

	// Offset state.
	offsetParent           *Element
	relativeOffsetBase     geom.Vec2
	relativeOffsetPosition geom.Vec2
	offsetFixed            bool
	absoluteOffset         geom.Vec2
	offsetDirty            bool
	scrollOffset           geom.Vec2

	// Stacking state.
	zIndex                     float64
	localStackingContext       bool
	localStackingContextForced bool
	stackingContext            []*Element
	stackingContextDirty       bool

	// Transform state.
	transformState       *TransformState
	transformDirty       bool
	perspectiveDirty     bool
	parentTransformDirty bool

	// Font state.
	fontFace  render.FontFaceHandle
	fontDirty bool

	// Clipping state.
	clippingIgnoreDepth int
	clippingEnabled     bool
	clippingDirty       bool

	// Animation state.
	animations      []*animationEntry
	animationDirty  bool
	transitionDirty bool

	listeners map[string][]listenerEntry

	visible bool
}

type animationEntry struct {
	animation *anim.Animation
	// fromAnimationProperty marks entries started by the 'animation'
	// property rather than the Animate API; they are removed when the
	// property no longer names them.
	fromAnimationProperty bool
}

// NewElement creates a detached element with the given tag name. Tag names
// are case-insensitive and stored lowercased.
func NewElement(tag string) *Element {
	return &Element{
		tag:             strings.ToLower(tag),
		pseudoClasses:   make(map[string]bool),
		attributes:      make(map[string]string),
		localProperties: make(map[property.ID]property.Value),
		overlay:         make(map[property.ID]property.Value),
		clientArea:      geom.AreaPadding,
		styleDirty:      true,
		boxDirty:        true,
		offsetDirty:     true,
		fontDirty:       true,
		visible:         true,
	}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string {
	return e.tag
}

// Id returns the element's unique id, or the empty string.
func (e *Element) Id() string {
	return e.id
}

// SetId sets the element's id and invalidates its style.
func (e *Element) SetId(id string) {
	if e.id == id {
		return
	}
	e.id = id
	e.DirtyStyle()
}

// SetBehavior attaches a behavior variant to the element. A nil behavior
// restores the dispatch-free default.
func (e *Element) SetBehavior(b Behavior) {
	e.behavior = b
}

// Behavior returns the attached behavior, or nil.
func (e *Element) Behavior() Behavior {
	return e.behavior
}

// OwnerDocument returns the document the element is attached under, or nil
// for a detached subtree.
func (e *Element) OwnerDocument() *Document {
	return e.ownerDocument
}

// IsVisible reports whether the element is painted. Visibility follows the
// computed 'display' and 'visibility' properties.
func (e *Element) IsVisible() bool {
	return e.visible
}

// Address returns a CSS-like address of the element for diagnostics, e.g.
// "div#header.fixed > p". Pseudo-classes are included when requested.
func (e *Element) Address(includePseudoClasses bool) string {
	var sb strings.Builder
	e.writeAddress(&sb, includePseudoClasses)
	return sb.String()
}

func (e *Element) writeAddress(sb *strings.Builder, includePseudoClasses bool) {
	if e.parent != nil {
		e.parent.writeAddress(sb, includePseudoClasses)
		sb.WriteString(" > ")
	}
	sb.WriteString(e.tag)
	if e.id != "" {
		sb.WriteByte('#')
		sb.WriteString(e.id)
	}
	for _, class := range e.classes {
		sb.WriteByte('.')
		sb.WriteString(class)
	}
	if includePseudoClasses {
		for pseudo, set := range e.pseudoClasses {
			if set {
				sb.WriteByte(':')
				sb.WriteString(pseudo)
			}
		}
	}
}

func (e *Element) logMessage(level render.LogLevel, message string) {
	if e.ownerDocument != nil && e.ownerDocument.system != nil {
		e.ownerDocument.system.LogMessage(level, message)
	}
}

// logError reports a recoverable condition through the system interface.
func (e *Element) logError(level render.LogLevel, err error) {
	e.logMessage(level, err.Error())
}
