package property

import "math"

// Interpolate blends two property values at fraction t in [0, 1]. Numeric
// values of the same unit interpolate linearly, colors interpolate per
// channel, and transform lists with matching primitive kinds interpolate
// pairwise. Any other pairing falls back to a discrete switch at t = 0.5.
func Interpolate(a, b Value, t float64) Value {
	if a.Unit == b.Unit {
		switch a.Unit {
		case UnitNumber, UnitPx, UnitPercent, UnitEm, UnitRem, UnitDp:
			return Value{Unit: a.Unit, Number: lerp(a.Number, b.Number, t)}
		case UnitColor:
			return ColorValue(lerpColor(a.Color, b.Color, t))
		case UnitTransformList:
			if out, ok := lerpTransforms(a.Transforms, b.Transforms, t); ok {
				return Value{Unit: UnitTransformList, Transforms: out}
			}
		}
	}
	if t < 0.5 {
		return a
	}
	return b
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpColor(a, b Color, t float64) Color {
	ch := func(x, y uint8) uint8 {
		v := math.Round(lerp(float64(x), float64(y), t))
		return uint8(math.Min(255, math.Max(0, v)))
	}
	return Color{ch(a.R, b.R), ch(a.G, b.G), ch(a.B, b.B), ch(a.A, b.A)}
}

func lerpTransforms(a, b []TransformPrimitive, t float64) ([]TransformPrimitive, bool) {
	if len(a) != len(b) {
		return nil, false
	}
	out := make([]TransformPrimitive, len(a))
	for i := range a {
		if a[i].Kind != b[i].Kind {
			return nil, false
		}
		out[i] = TransformPrimitive{
			Kind: a[i].Kind,
			X:    lerp(a[i].X, b[i].X, t),
			Y:    lerp(a[i].Y, b[i].Y, t),
		}
	}
	return out, true
}
