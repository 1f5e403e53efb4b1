package property

import (
	"math"
	"strings"
)

// TweenFamily selects the easing curve family.
type TweenFamily int

const (
	TweenLinear TweenFamily = iota
	TweenQuadratic
	TweenCubic
	TweenSine
	TweenExponential
)

// TweenDirection selects which end of the curve eases.
type TweenDirection int

const (
	TweenIn TweenDirection = iota
	TweenOut
	TweenInOut
)

// Tween is an easing function: a family plus a direction. The zero value is
// linear.
type Tween struct {
	Family    TweenFamily
	Direction TweenDirection
}

// Solve maps normalized animation time t in [0, 1] to an eased fraction.
// Solve(0) == 0 and Solve(1) == 1 for every tween, and the output is
// monotonic over t.
func (tw Tween) Solve(t float64) float64 {
	switch tw.Direction {
	case TweenOut:
		return 1 - tw.in(1-t)
	case TweenInOut:
		if t < 0.5 {
			return tw.in(2*t) / 2
		}
		return 1 - tw.in(2-2*t)/2
	default:
		return tw.in(t)
	}
}

func (tw Tween) in(t float64) float64 {
	switch tw.Family {
	case TweenQuadratic:
		return t * t
	case TweenCubic:
		return t * t * t
	case TweenSine:
		return 1 - math.Cos(t*math.Pi/2)
	case TweenExponential:
		if t == 0 {
			return 0
		}
		return math.Pow(2, 10*(t-1))
	default:
		return t
	}
}

// String returns the tween in "family-direction" notation.
func (tw Tween) String() string {
	family := "linear"
	switch tw.Family {
	case TweenQuadratic:
		family = "quadratic"
	case TweenCubic:
		family = "cubic"
	case TweenSine:
		family = "sine"
	case TweenExponential:
		family = "exponential"
	}
	switch tw.Direction {
	case TweenOut:
		return family + "-out"
	case TweenInOut:
		return family + "-in-out"
	default:
		return family + "-in"
	}
}

// ParseTween parses "family", "family-in", "family-out" or "family-in-out".
func ParseTween(s string) (Tween, bool) {
	s = strings.TrimSpace(strings.ToLower(s))

	tw := Tween{}
	switch {
	case strings.HasSuffix(s, "-in-out"):
		tw.Direction = TweenInOut
		s = strings.TrimSuffix(s, "-in-out")
	case strings.HasSuffix(s, "-out"):
		tw.Direction = TweenOut
		s = strings.TrimSuffix(s, "-out")
	case strings.HasSuffix(s, "-in"):
		tw.Direction = TweenIn
		s = strings.TrimSuffix(s, "-in")
	}

	switch s {
	case "linear":
		tw.Family = TweenLinear
	case "quadratic":
		tw.Family = TweenQuadratic
	case "cubic":
		tw.Family = TweenCubic
	case "sine":
		tw.Family = TweenSine
	case "exponential":
		tw.Family = TweenExponential
	default:
		return Tween{}, false
	}
	return tw, true
}
