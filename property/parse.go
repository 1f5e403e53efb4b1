package property

import (
	"math"
	"strconv"
	"strings"
)

// ParseValue parses the string form of a property value into a Value. The
// second return value is false when the string is not a valid value for the
// property; the caller is expected to leave any prior value untouched.
func ParseValue(id ID, s string) (Value, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, false
	}

	switch id {
	case TextColor, BackgroundColor, BorderTopColor, BorderRightColor,
		BorderBottomColor, BorderLeftColor:
		if c, ok := ParseColor(s); ok {
			return ColorValue(c), true
		}
		return Value{}, false

	case Display:
		return parseKeyword(s, "block", "inline", "inline-block", "flex", "none")
	case Position:
		return parseKeyword(s, "static", "relative", "absolute", "fixed")
	case OverflowX, OverflowY:
		return parseKeyword(s, "visible", "hidden", "auto", "scroll")
	case Visibility:
		return parseKeyword(s, "visible", "hidden")
	case FontStyle:
		return parseKeyword(s, "normal", "italic")

	case FontWeight:
		if v, ok := parseKeyword(s, "normal", "bold"); ok {
			return v, true
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil && n >= 1 && n <= 1000 {
			return Num(n), true
		}
		return Value{}, false

	case FontFamily:
		return Value{Unit: UnitString, Str: s}, true

	case Opacity:
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, false
		}
		return Num(math.Min(1, math.Max(0, n))), true

	case ZIndex:
		if strings.EqualFold(s, "auto") {
			return KeywordValue("auto"), true
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, false
		}
		return Num(n), true

	case Transform:
		return parseTransformList(s)

	case Transition:
		defs, ok := ParseTransitionList(s)
		if !ok {
			return Value{}, false
		}
		return Value{Unit: UnitTransitionList, Transitions: defs}, true

	case Animation:
		// Animation timelines are defined through the Animate API; the
		// property itself carries an opaque name.
		return Value{Unit: UnitString, Str: s}, true

	case Width, Height, MinWidth, MaxWidth, MinHeight, MaxHeight,
		Top, Right, Bottom, Left:
		if strings.EqualFold(s, "auto") {
			return KeywordValue("auto"), true
		}
		if strings.EqualFold(s, "none") && (id == MaxWidth || id == MaxHeight) {
			return KeywordValue("none"), true
		}
		return parseLength(s)

	case Perspective:
		if strings.EqualFold(s, "none") {
			return KeywordValue("none"), true
		}
		return parseLength(s)

	default:
		return parseLength(s)
	}
}

func parseKeyword(s string, allowed ...string) (Value, bool) {
	s = strings.ToLower(s)
	for _, kw := range allowed {
		if s == kw {
			return KeywordValue(kw), true
		}
	}
	return Value{}, false
}

// parseLength parses a number with an optional length unit. A bare number is
// treated as px, matching the behavior for attribute-sourced dimensions.
func parseLength(s string) (Value, bool) {
	unit := UnitPx
	num := s
	switch {
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "%"):
		unit = UnitPercent
		num = strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "em"):
		if strings.HasSuffix(s, "rem") {
			unit = UnitRem
			num = strings.TrimSuffix(s, "rem")
		} else {
			unit = UnitEm
			num = strings.TrimSuffix(s, "em")
		}
	case strings.HasSuffix(s, "dp"):
		unit = UnitDp
		num = strings.TrimSuffix(s, "dp")
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return Value{}, false
	}
	return Value{Unit: unit, Number: n}, true
}

// parseTransformList parses "none" or a whitespace-separated list of
// translate/rotate/scale functions.
func parseTransformList(s string) (Value, bool) {
	if strings.EqualFold(s, "none") {
		return KeywordValue("none"), true
	}

	var prims []TransformPrimitive
	rest := s
	for {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			break
		}
		open := strings.IndexByte(rest, '(')
		closing := strings.IndexByte(rest, ')')
		if open < 0 || closing < open {
			return Value{}, false
		}
		name := strings.ToLower(strings.TrimSpace(rest[:open]))
		args := strings.Split(rest[open+1:closing], ",")
		rest = rest[closing+1:]

		switch name {
		case "translate":
			if len(args) != 2 {
				return Value{}, false
			}
			x, ok1 := parseLength(strings.TrimSpace(args[0]))
			y, ok2 := parseLength(strings.TrimSpace(args[1]))
			if !ok1 || !ok2 || x.Unit != UnitPx || y.Unit != UnitPx {
				return Value{}, false
			}
			prims = append(prims, TransformPrimitive{Kind: TransformTranslate, X: x.Number, Y: y.Number})
		case "rotate":
			if len(args) != 1 {
				return Value{}, false
			}
			angle, ok := parseAngle(strings.TrimSpace(args[0]))
			if !ok {
				return Value{}, false
			}
			prims = append(prims, TransformPrimitive{Kind: TransformRotate, X: angle})
		case "scale":
			if len(args) < 1 || len(args) > 2 {
				return Value{}, false
			}
			x, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
			if err != nil {
				return Value{}, false
			}
			y := x
			if len(args) == 2 {
				y, err = strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
				if err != nil {
					return Value{}, false
				}
			}
			prims = append(prims, TransformPrimitive{Kind: TransformScale, X: x, Y: y})
		default:
			return Value{}, false
		}
	}

	if len(prims) == 0 {
		return Value{}, false
	}
	return Value{Unit: UnitTransformList, Transforms: prims}, true
}

// parseAngle parses an angle in "deg" or "rad" units, returning radians.
func parseAngle(s string) (float64, bool) {
	switch {
	case strings.HasSuffix(s, "deg"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "deg"), 64)
		return n * math.Pi / 180, err == nil
	case strings.HasSuffix(s, "rad"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(s, "rad"), 64)
		return n, err == nil
	}
	n, err := strconv.ParseFloat(s, 64)
	return n, err == nil
}
