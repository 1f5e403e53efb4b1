package property

import (
	"fmt"
	"strconv"
	"strings"
)

// TransitionAll is the target of a "transition: all ..." entry.
const TransitionAll = ID(-1)

// TransitionDef describes one entry of the 'transition' property: which
// property to transition, over how long, with what easing, after what delay.
type TransitionDef struct {
	Target   ID
	Duration float64
	Delay    float64
	Tween    Tween
}

// String formats the definition in CSS-like notation.
func (t TransitionDef) String() string {
	target := "all"
	if t.Target != TransitionAll {
		target = t.Target.String()
	}
	s := fmt.Sprintf("%s %gs %s", target, t.Duration, t.Tween)
	if t.Delay > 0 {
		s += fmt.Sprintf(" %gs", t.Delay)
	}
	return s
}

// ParseTransitionList parses a comma-separated 'transition' value. Each entry
// is "none", or a target property followed by a duration, an optional tween
// name, and an optional delay: "opacity 0.3s sine-out 0.1s".
func ParseTransitionList(s string) ([]TransitionDef, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return nil, true
	}

	var defs []TransitionDef
	for _, entry := range strings.Split(s, ",") {
		fields := strings.Fields(entry)
		if len(fields) < 2 {
			return nil, false
		}

		def := TransitionDef{Target: TransitionAll}
		if fields[0] != "all" {
			id, ok := Lookup(fields[0])
			if !ok {
				return nil, false
			}
			def.Target = id
		}

		duration, ok := parseSeconds(fields[1])
		if !ok {
			return nil, false
		}
		def.Duration = duration

		rest := fields[2:]
		if len(rest) > 0 {
			if tw, ok := ParseTween(rest[0]); ok {
				def.Tween = tw
				rest = rest[1:]
			}
		}
		if len(rest) > 0 {
			delay, ok := parseSeconds(rest[0])
			if !ok {
				return nil, false
			}
			def.Delay = delay
			rest = rest[1:]
		}
		if len(rest) > 0 {
			return nil, false
		}
		defs = append(defs, def)
	}
	return defs, true
}

func parseSeconds(s string) (float64, bool) {
	switch {
	case strings.HasSuffix(s, "ms"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "ms"), 64)
		return v / 1000, err == nil
	case strings.HasSuffix(s, "s"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "s"), 64)
		return v, err == nil
	}
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}
