package style

import "github.com/AYColumbia/quill/property"

// Environment carries the document-level inputs of a style computation.
type Environment struct {
	// DPRatio scales dp lengths to px.
	DPRatio float64
	// RootFontSize resolves rem lengths, in px.
	RootFontSize float64
}

// Compute builds the computed snapshot of an element from, in ascending
// precedence: defaults, inherited parent values, matched sheet declarations,
// local overrides, and the animation overlay. Inputs are not mutated; the
// same inputs always produce the same snapshot.
func Compute(parent *Computed, matched, local, overlay []Declaration, env Environment) *Computed {
	c := &Computed{values: defaults}

	if parent != nil {
		for id := property.ID(0); id < property.NumProperties; id++ {
			if id.Inherited() {
				c.values[id] = parent.values[id]
			}
		}
	}
	for _, d := range matched {
		c.values[d.ID] = d.Value
	}
	// Local overrides win over any matched declaration.
	for _, d := range local {
		c.values[d.ID] = d.Value
	}
	for _, d := range overlay {
		c.values[d.ID] = d.Value
	}

	// Font size resolves first: em lengths on this element scale against it.
	// An em font size scales against the parent's font size instead.
	parentFontSize := defaults[property.FontSize].Number
	if parent != nil {
		parentFontSize = parent.fontSize
	}
	c.fontSize = resolveFontSize(c.values[property.FontSize], parentFontSize, env)
	c.values[property.FontSize] = property.Px(c.fontSize)

	// Definite lengths (em, rem, dp) collapse to px now; px, percentages and
	// keywords pass through untouched.
	for id := property.ID(0); id < property.NumProperties; id++ {
		if id == property.FontSize {
			continue
		}
		c.values[id] = collapseLength(c.values[id], c.fontSize, env)
	}

	return c
}

func resolveFontSize(v property.Value, parentFontSize float64, env Environment) float64 {
	switch v.Unit {
	case property.UnitPx:
		return v.Number
	case property.UnitEm:
		return v.Number * parentFontSize
	case property.UnitRem:
		return v.Number * orDefault(env.RootFontSize, defaults[property.FontSize].Number)
	case property.UnitDp:
		return v.Number * orDefault(env.DPRatio, 1)
	case property.UnitPercent:
		return v.Number / 100 * parentFontSize
	}
	return parentFontSize
}

func collapseLength(v property.Value, fontSize float64, env Environment) property.Value {
	switch v.Unit {
	case property.UnitEm:
		return property.Px(v.Number * fontSize)
	case property.UnitRem:
		return property.Px(v.Number * orDefault(env.RootFontSize, defaults[property.FontSize].Number))
	case property.UnitDp:
		return property.Px(v.Number * orDefault(env.DPRatio, 1))
	}
	return v
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

// ResolveLengthPercentage resolves a computed length or percentage value
// against a caller-supplied base (typically a containing block dimension).
// It is pure: no element state is read or written. Keywords resolve to 0.
func ResolveLengthPercentage(v property.Value, base float64) float64 {
	switch v.Unit {
	case property.UnitPx, property.UnitNumber:
		return v.Number
	case property.UnitPercent:
		return v.Number / 100 * base
	}
	return 0
}
