// Package property defines the styleable property set of the scene graph:
// property identifiers, their values, parsing, interpolation, and the
// classification table that maps each property to the derived state it
// invalidates when changed.
package property

// ID identifies a single styleable property.
type ID int

const (
	Width ID = iota
	Height
	MinWidth
	MaxWidth
	MinHeight
	MaxHeight
	MarginTop
	MarginRight
	MarginBottom
	MarginLeft
	PaddingTop
	PaddingRight
	PaddingBottom
	PaddingLeft
	BorderTopWidth
	BorderRightWidth
	BorderBottomWidth
	BorderLeftWidth
	Display
	Position
	Top
	Right
	Bottom
	Left
	OverflowX
	OverflowY
	TextColor
	BackgroundColor
	BorderTopColor
	BorderRightColor
	BorderBottomColor
	BorderLeftColor
	FontFamily
	FontSize
	FontWeight
	FontStyle
	LineHeight
	Visibility
	Opacity
	ZIndex
	Transform
	TransformOriginX
	TransformOriginY
	Perspective
	PerspectiveOriginX
	PerspectiveOriginY
	Transition
	Animation

	NumProperties
)

// Effect is a bitmask of the derived state a property change invalidates.
type Effect uint16

const (
	// EffectPaint requires a repaint only; no derived state is stale.
	EffectPaint Effect = 1 << iota
	// EffectLayout invalidates the element's box and, transitively, the
	// offsets of its subtree.
	EffectLayout
	// EffectOffset invalidates cached absolute offsets without relayout.
	EffectOffset
	// EffectFont invalidates the font face handle, which in turn forces a
	// relayout when the new face resolves differently.
	EffectFont
	// EffectTransform invalidates the composed transform of the element and
	// its descendants.
	EffectTransform
	// EffectPerspective invalidates the perspective applied to descendants.
	EffectPerspective
	// EffectStacking invalidates the stacking context the element
	// participates in.
	EffectStacking
	// EffectAnimationList re-reads the 'animation' property next update.
	EffectAnimationList
	// EffectTransitionList re-reads the 'transition' property next update.
	EffectTransitionList
)

// effects classifies every property. The table is total: an entry exists for
// each ID below NumProperties, and the tests enforce it stays that way when
// properties are added.
var effects = [NumProperties]Effect{
	Width:              EffectLayout,
	Height:             EffectLayout,
	MinWidth:           EffectLayout,
	MaxWidth:           EffectLayout,
	MinHeight:          EffectLayout,
	MaxHeight:          EffectLayout,
	MarginTop:          EffectLayout,
	MarginRight:        EffectLayout,
	MarginBottom:       EffectLayout,
	MarginLeft:         EffectLayout,
	PaddingTop:         EffectLayout,
	PaddingRight:       EffectLayout,
	PaddingBottom:      EffectLayout,
	PaddingLeft:        EffectLayout,
	BorderTopWidth:     EffectLayout,
	BorderRightWidth:   EffectLayout,
	BorderBottomWidth:  EffectLayout,
	BorderLeftWidth:    EffectLayout,
	Display:            EffectLayout | EffectStacking,
	Position:           EffectLayout | EffectOffset | EffectStacking,
	Top:                EffectOffset,
	Right:              EffectOffset,
	Bottom:             EffectOffset,
	Left:               EffectOffset,
	OverflowX:          EffectLayout | EffectPaint,
	OverflowY:          EffectLayout | EffectPaint,
	TextColor:          EffectPaint,
	BackgroundColor:    EffectPaint,
	BorderTopColor:     EffectPaint,
	BorderRightColor:   EffectPaint,
	BorderBottomColor:  EffectPaint,
	BorderLeftColor:    EffectPaint,
	FontFamily:         EffectFont,
	FontSize:           EffectFont | EffectLayout,
	FontWeight:         EffectFont,
	FontStyle:          EffectFont,
	LineHeight:         EffectLayout,
	Visibility:         EffectPaint | EffectStacking,
	Opacity:            EffectPaint | EffectStacking,
	ZIndex:             EffectStacking,
	Transform:          EffectTransform | EffectStacking,
	TransformOriginX:   EffectTransform,
	TransformOriginY:   EffectTransform,
	Perspective:        EffectPerspective | EffectStacking,
	PerspectiveOriginX: EffectPerspective,
	PerspectiveOriginY: EffectPerspective,
	Transition:         EffectTransitionList,
	Animation:          EffectAnimationList,
}

// Effects returns the invalidation class of the property.
func (id ID) Effects() Effect {
	if id < 0 || id >= NumProperties {
		return 0
	}
	return effects[id]
}

// inherited properties pass their computed value to children that do not
// override them.
var inherited = map[ID]bool{
	TextColor:  true,
	FontFamily: true,
	FontSize:   true,
	FontWeight: true,
	FontStyle:  true,
	LineHeight: true,
	Visibility: true,
}

// Inherited reports whether the property inherits from the parent element.
func (id ID) Inherited() bool {
	return inherited[id]
}

var names = [NumProperties]string{
	Width:              "width",
	Height:             "height",
	MinWidth:           "min-width",
	MaxWidth:           "max-width",
	MinHeight:          "min-height",
	MaxHeight:          "max-height",
	MarginTop:          "margin-top",
	MarginRight:        "margin-right",
	MarginBottom:       "margin-bottom",
	MarginLeft:         "margin-left",
	PaddingTop:         "padding-top",
	PaddingRight:       "padding-right",
	PaddingBottom:      "padding-bottom",
	PaddingLeft:        "padding-left",
	BorderTopWidth:     "border-top-width",
	BorderRightWidth:   "border-right-width",
	BorderBottomWidth:  "border-bottom-width",
	BorderLeftWidth:    "border-left-width",
	Display:            "display",
	Position:           "position",
	Top:                "top",
	Right:              "right",
	Bottom:             "bottom",
	Left:               "left",
	OverflowX:          "overflow-x",
	OverflowY:          "overflow-y",
	TextColor:          "color",
	BackgroundColor:    "background-color",
	BorderTopColor:     "border-top-color",
	BorderRightColor:   "border-right-color",
	BorderBottomColor:  "border-bottom-color",
	BorderLeftColor:    "border-left-color",
	FontFamily:         "font-family",
	FontSize:           "font-size",
	FontWeight:         "font-weight",
	FontStyle:          "font-style",
	LineHeight:         "line-height",
	Visibility:         "visibility",
	Opacity:            "opacity",
	ZIndex:             "z-index",
	Transform:          "transform",
	TransformOriginX:   "transform-origin-x",
	TransformOriginY:   "transform-origin-y",
	Perspective:        "perspective",
	PerspectiveOriginX: "perspective-origin-x",
	PerspectiveOriginY: "perspective-origin-y",
	Transition:         "transition",
	Animation:          "animation",
}

var idsByName = func() map[string]ID {
	m := make(map[string]ID, NumProperties)
	for id := ID(0); id < NumProperties; id++ {
		m[names[id]] = id
	}
	return m
}()

// String returns the CSS-style name of the property.
func (id ID) String() string {
	if id < 0 || id >= NumProperties {
		return "invalid"
	}
	return names[id]
}

// Lookup returns the ID for a property name. The second return value is
// false when the name is unknown.
func Lookup(name string) (ID, bool) {
	id, ok := idsByName[name]
	return id, ok
}
