package style

import "github.com/AYColumbia/quill/property"

// Computed is the per-frame snapshot of every styleable property after
// cascade, inheritance and animation overlay. It is immutable once built:
// recomputing from the same inputs yields an identical snapshot.
type Computed struct {
	values [property.NumProperties]property.Value

	// fontSize is the resolved font size in px, cached because em lengths
	// and several accessors resolve against it.
	fontSize float64
}

// defaults holds the initial value of every property.
var defaults = func() [property.NumProperties]property.Value {
	var d [property.NumProperties]property.Value
	auto := property.KeywordValue("auto")
	zero := property.Px(0)
	none := property.KeywordValue("none")
	black := property.ColorValue(property.Color{A: 255})
	transparent := property.ColorValue(property.Color{})

	d[property.Width] = auto
	d[property.Height] = auto
	d[property.MinWidth] = zero
	d[property.MinHeight] = zero
	d[property.MaxWidth] = none
	d[property.MaxHeight] = none
	for _, id := range []property.ID{
		property.MarginTop, property.MarginRight, property.MarginBottom, property.MarginLeft,
		property.PaddingTop, property.PaddingRight, property.PaddingBottom, property.PaddingLeft,
		property.BorderTopWidth, property.BorderRightWidth, property.BorderBottomWidth, property.BorderLeftWidth,
	} {
		d[id] = zero
	}
	d[property.Display] = property.KeywordValue("inline")
	d[property.Position] = property.KeywordValue("static")
	d[property.Top] = auto
	d[property.Right] = auto
	d[property.Bottom] = auto
	d[property.Left] = auto
	d[property.OverflowX] = property.KeywordValue("visible")
	d[property.OverflowY] = property.KeywordValue("visible")
	d[property.TextColor] = black
	d[property.BackgroundColor] = transparent
	d[property.BorderTopColor] = black
	d[property.BorderRightColor] = black
	d[property.BorderBottomColor] = black
	d[property.BorderLeftColor] = black
	d[property.FontFamily] = property.Value{Unit: property.UnitString, Str: ""}
	d[property.FontSize] = property.Px(16)
	d[property.FontWeight] = property.KeywordValue("normal")
	d[property.FontStyle] = property.KeywordValue("normal")
	d[property.LineHeight] = property.Num(1.2)
	d[property.Visibility] = property.KeywordValue("visible")
	d[property.Opacity] = property.Num(1)
	d[property.ZIndex] = auto
	d[property.Transform] = none
	d[property.TransformOriginX] = property.Percent(50)
	d[property.TransformOriginY] = property.Percent(50)
	d[property.Perspective] = none
	d[property.PerspectiveOriginX] = property.Percent(50)
	d[property.PerspectiveOriginY] = property.Percent(50)
	d[property.Transition] = property.Value{Unit: property.UnitTransitionList}
	d[property.Animation] = property.Value{Unit: property.UnitString}
	return d
}()

// DefaultValue returns the initial value of a property.
func DefaultValue(id property.ID) property.Value {
	if id < 0 || id >= property.NumProperties {
		return property.Value{}
	}
	return defaults[id]
}

// Get returns the computed value of a property.
func (c *Computed) Get(id property.ID) property.Value {
	if id < 0 || id >= property.NumProperties {
		return property.Value{}
	}
	return c.values[id]
}

// FontSize returns the resolved font size in px.
func (c *Computed) FontSize() float64 {
	return c.fontSize
}

// Opacity returns the computed opacity in [0, 1].
func (c *Computed) Opacity() float64 {
	return c.values[property.Opacity].Number
}

// Visible reports whether visibility is "visible".
func (c *Computed) Visible() bool {
	return !c.values[property.Visibility].IsKeyword("hidden")
}

// ZIndex returns the computed z-index. The second return value is false for
// z-index: auto.
func (c *Computed) ZIndex() (float64, bool) {
	v := c.values[property.ZIndex]
	if v.Unit == property.UnitNumber {
		return v.Number, true
	}
	return 0, false
}

// Position returns the positioning scheme keyword.
func (c *Computed) Position() string {
	return c.values[property.Position].Keyword
}

// Positioned reports whether the element is positioned (anything but static).
func (c *Computed) Positioned() bool {
	p := c.Position()
	return p != "" && p != "static"
}

// HasLocalTransform reports whether the transform property is non-none.
func (c *Computed) HasLocalTransform() bool {
	return c.values[property.Transform].Unit == property.UnitTransformList
}

// HasLocalPerspective reports whether the perspective property is non-none.
func (c *Computed) HasLocalPerspective() bool {
	v := c.values[property.Perspective]
	return v.Unit != property.UnitKeyword
}

// Transitions returns the parsed 'transition' property entries.
func (c *Computed) Transitions() []property.TransitionDef {
	return c.values[property.Transition].Transitions
}

// Diff returns the ids whose values differ between the two snapshots. Either
// snapshot may be nil, in which case every property differing from the
// defaults is reported.
func Diff(old, new *Computed) []property.ID {
	var changed []property.ID
	for id := property.ID(0); id < property.NumProperties; id++ {
		a, b := defaults[id], defaults[id]
		if old != nil {
			a = old.values[id]
		}
		if new != nil {
			b = new.values[id]
		}
		if !a.Equal(b) {
			changed = append(changed, id)
		}
	}
	return changed
}
