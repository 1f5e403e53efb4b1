package property

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit describes how the numeric part of a Value is interpreted.
type Unit int

const (
	// UnitKeyword marks a keyword value such as "auto" or "hidden".
	UnitKeyword Unit = iota
	// UnitString marks an uninterpreted string value (font families).
	UnitString
	// UnitNumber marks a dimensionless number (opacity, z-index, weights).
	UnitNumber
	// UnitPx marks a length in device-independent pixels.
	UnitPx
	// UnitPercent marks a percentage, resolved against a caller-supplied base.
	UnitPercent
	// UnitEm marks a length relative to the element's font size.
	UnitEm
	// UnitRem marks a length relative to the root element's font size.
	UnitRem
	// UnitDp marks a length in density-independent pixels, scaled by the
	// dp-ratio at computation time.
	UnitDp
	// UnitColor marks a color value.
	UnitColor
	// UnitTransformList marks a list of transform primitives.
	UnitTransformList
	// UnitTransitionList marks a parsed 'transition' property value.
	UnitTransitionList
)

// TransformKind identifies a transform primitive.
type TransformKind int

const (
	TransformTranslate TransformKind = iota
	TransformRotate
	TransformScale
)

// TransformPrimitive is one entry of a transform list. Translate arguments
// are in px, rotate in radians, scale dimensionless.
type TransformPrimitive struct {
	Kind TransformKind
	X, Y float64
}

// Value is the parsed value of a single property. Exactly the fields implied
// by Unit are meaningful; the rest are zero.
type Value struct {
	Unit        Unit
	Number      float64
	Keyword     string
	Str         string
	Color       Color
	Transforms  []TransformPrimitive
	Transitions []TransitionDef
}

// Px returns a pixel length value.
func Px(v float64) Value { return Value{Unit: UnitPx, Number: v} }

// Percent returns a percentage value.
func Percent(v float64) Value { return Value{Unit: UnitPercent, Number: v} }

// Num returns a dimensionless number value.
func Num(v float64) Value { return Value{Unit: UnitNumber, Number: v} }

// KeywordValue returns a keyword value.
func KeywordValue(kw string) Value { return Value{Unit: UnitKeyword, Keyword: kw} }

// ColorValue returns a color value.
func ColorValue(c Color) Value { return Value{Unit: UnitColor, Color: c} }

// Equal reports whether two values are identical.
func (v Value) Equal(other Value) bool {
	if v.Unit != other.Unit {
		return false
	}
	switch v.Unit {
	case UnitKeyword:
		return v.Keyword == other.Keyword
	case UnitString:
		return v.Str == other.Str
	case UnitColor:
		return v.Color == other.Color
	case UnitTransformList:
		if len(v.Transforms) != len(other.Transforms) {
			return false
		}
		for i := range v.Transforms {
			if v.Transforms[i] != other.Transforms[i] {
				return false
			}
		}
		return true
	case UnitTransitionList:
		if len(v.Transitions) != len(other.Transitions) {
			return false
		}
		for i := range v.Transitions {
			if v.Transitions[i] != other.Transitions[i] {
				return false
			}
		}
		return true
	default:
		return v.Number == other.Number
	}
}

// IsKeyword reports whether the value is the given keyword.
func (v Value) IsKeyword(kw string) bool {
	return v.Unit == UnitKeyword && v.Keyword == kw
}

// String formats the value in CSS notation.
func (v Value) String() string {
	switch v.Unit {
	case UnitKeyword:
		return v.Keyword
	case UnitString:
		return v.Str
	case UnitNumber:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case UnitPx:
		return strconv.FormatFloat(v.Number, 'g', -1, 64) + "px"
	case UnitPercent:
		return strconv.FormatFloat(v.Number, 'g', -1, 64) + "%"
	case UnitEm:
		return strconv.FormatFloat(v.Number, 'g', -1, 64) + "em"
	case UnitRem:
		return strconv.FormatFloat(v.Number, 'g', -1, 64) + "rem"
	case UnitDp:
		return strconv.FormatFloat(v.Number, 'g', -1, 64) + "dp"
	case UnitColor:
		return v.Color.String()
	case UnitTransformList:
		parts := make([]string, len(v.Transforms))
		for i, t := range v.Transforms {
			switch t.Kind {
			case TransformTranslate:
				parts[i] = fmt.Sprintf("translate(%gpx, %gpx)", t.X, t.Y)
			case TransformRotate:
				parts[i] = fmt.Sprintf("rotate(%grad)", t.X)
			case TransformScale:
				parts[i] = fmt.Sprintf("scale(%g, %g)", t.X, t.Y)
			}
		}
		return strings.Join(parts, " ")
	case UnitTransitionList:
		parts := make([]string, len(v.Transitions))
		for i, t := range v.Transitions {
			parts[i] = t.String()
		}
		return strings.Join(parts, ", ")
	}
	return ""
}
