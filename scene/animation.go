package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AYColumbia/quill/anim"
	"github.com/AYColumbia/quill/property"
	"github.com/AYColumbia/quill/render"
	"github.com/AYColumbia/quill/style"
)

// Animation layering. Animated values live in the element's style overlay,
// never in the property store: while an animation runs, the overlay shadows
// the cascade, and removing the animation restores the cascade's natural
// value with no residue.

// Animate starts an animation of the named property towards targetValue
// over duration seconds, replacing any existing animation of the same
// property. When startValue is nil the animation seeds from the current
// resolved value, so starting at time zero is visually seamless.
// numIterations may be anim.Infinite; alternate reverses direction on odd
// iterations. It returns false for an unknown property.
func (e *Element) Animate(name string, targetValue property.Value, duration float64, tween property.Tween, numIterations int, alternate bool, delay float64, startValue *property.Value) bool {
	id, ok := property.Lookup(name)
	if !ok {
		e.logError(render.LogWarning, ErrInvalidProperty(fmt.Sprintf("animation on unknown property '%s' on %s", name, e.Address(false))))
		return false
	}

	start := e.GetProperty(id)
	if startValue != nil {
		start = *startValue
	}

	e.removeAnimation(id)
	animation := anim.New(id, start, numIterations, alternate, delay)
	animation.AddKey(duration, targetValue, tween)
	e.animations = append(e.animations, &animationEntry{animation: animation})
	return true
}

// AddAnimationKey extends the timeline of the property's active animation
// with a new key duration seconds after the previous last key. Without an
// active animation this is a no-op reported through the return value.
func (e *Element) AddAnimationKey(name string, targetValue property.Value, duration float64, tween property.Tween) bool {
	id, ok := property.Lookup(name)
	if !ok {
		return false
	}
	entry := e.findAnimation(id)
	if entry == nil || entry.animation.IsTransition() {
		e.logError(render.LogInfo, ErrNoActiveAnimation(fmt.Sprintf("property '%s' on %s", name, e.Address(false))))
		return false
	}
	entry.animation.AddKey(duration, targetValue, tween)
	return true
}

func (e *Element) findAnimation(id property.ID) *animationEntry {
	for _, entry := range e.animations {
		if entry.animation.PropertyID() == id {
			return entry
		}
	}
	return nil
}

// removeAnimation drops the animation owning id and clears its overlay
// value, letting the cascade show through again.
func (e *Element) removeAnimation(id property.ID) {
	for i, entry := range e.animations {
		if entry.animation.PropertyID() == id {
			e.animations = append(e.animations[:i], e.animations[i+1:]...)
			break
		}
	}
	if _, had := e.overlay[id]; had {
		delete(e.overlay, id)
		e.DirtyStyle()
	}
}

// startTransitions diffs the previous and newly cascaded values of every
// property the 'transition' property lists, creating or replacing implicit
// transitions. A replacement continues from the in-flight transition's
// current interpolated value, never restarting from the stale cascade
// value, so rapid A-B-C changes cannot snap.
func (e *Element) startTransitions(old, new *style.Computed) {
	if old == nil || new == nil {
		return
	}
	defs := new.Transitions()
	if len(defs) == 0 {
		return
	}

	tryStart := func(def property.TransitionDef, id property.ID) {
		if id == property.Transition || id == property.Animation {
			return
		}
		oldValue := old.Get(id)
		newValue := new.Get(id)
		if oldValue.Equal(newValue) {
			return
		}

		startValue := oldValue
		if existing := e.findAnimation(id); existing != nil {
			if !existing.animation.IsTransition() {
				// A real animation owns the property; transitions yield.
				return
			}
			startValue = existing.animation.CurrentValue()
		}

		e.removeAnimation(id)
		transition := anim.NewTransition(def, id, startValue, newValue)
		e.animations = append(e.animations, &animationEntry{animation: transition})
		// Hold the start value from this frame on; the cascade already
		// carries the new value underneath.
		e.overlay[id] = startValue
		e.DirtyStyle()
	}

	for _, def := range defs {
		if def.Target != property.TransitionAll {
			tryStart(def, def.Target)
			continue
		}
		for id := property.ID(0); id < property.NumProperties; id++ {
			tryStart(def, id)
		}
	}
}

// advanceAnimations steps every animation and transition by dt seconds,
// writing interpolated values into the overlay. Finished entries are
// removed, restoring the natural cascade value.
func (e *Element) advanceAnimations(dt float64) {
	if len(e.animations) == 0 {
		return
	}

	var finished []property.ID
	for _, entry := range e.animations {
		id := entry.animation.PropertyID()
		value := entry.animation.Advance(dt)
		if entry.animation.IsComplete() {
			finished = append(finished, id)
			continue
		}
		if current, ok := e.overlay[id]; !ok || !current.Equal(value) {
			e.overlay[id] = value
			e.DirtyStyle()
		}
	}
	for _, id := range finished {
		e.removeAnimation(id)
	}
}

// updateTransition prunes transitions on properties the 'transition'
// property no longer lists.
func (e *Element) updateTransition() {
	e.transitionDirty = false

	defs := e.ComputedValues().Transitions()
	listed := func(id property.ID) bool {
		for _, def := range defs {
			if def.Target == property.TransitionAll || def.Target == id {
				return true
			}
		}
		return false
	}

	for i := 0; i < len(e.animations); {
		entry := e.animations[i]
		if entry.animation.IsTransition() && !listed(entry.animation.PropertyID()) {
			e.removeAnimation(entry.animation.PropertyID())
			continue
		}
		i++
	}
}

// updateAnimation reconciles animations started by the 'animation' property
// with its current value. Entries owned by a stale property value are
// cancelled; the named keyframes set, when registered with the document, is
// instantiated fresh.
func (e *Element) updateAnimation() {
	e.animationDirty = false

	// Cancel property-driven animations first; API-driven ones persist.
	for i := 0; i < len(e.animations); {
		if e.animations[i].fromAnimationProperty {
			e.removeAnimation(e.animations[i].animation.PropertyID())
			continue
		}
		i++
	}

	spec := strings.TrimSpace(e.ComputedValues().Get(property.Animation).Str)
	if spec == "" || strings.EqualFold(spec, "none") || e.ownerDocument == nil {
		return
	}

	name, duration, tween, iterations, alternate, ok := parseAnimationShorthand(spec)
	if !ok {
		e.logMessage(render.LogWarning, fmt.Sprintf("malformed animation '%s' on %s", spec, e.Address(false)))
		return
	}
	keyframes, ok := e.ownerDocument.Keyframes(name)
	if !ok {
		e.logMessage(render.LogWarning, fmt.Sprintf("undefined keyframes '%s' on %s", name, e.Address(false)))
		return
	}

	for id, keys := range keyframes.byProperty() {
		start := e.GetProperty(id)
		if len(keys) > 0 && keys[0].Fraction == 0 {
			start = keys[0].Value
		}
		animation := anim.New(id, start, iterations, alternate, 0)
		last := 0.0
		for _, key := range keys {
			if key.Fraction == 0 {
				continue
			}
			animation.AddKey((key.Fraction-last)*duration, key.Value, tween)
			last = key.Fraction
		}
		e.removeAnimation(id)
		e.animations = append(e.animations, &animationEntry{animation: animation, fromAnimationProperty: true})
	}
}

// parseAnimationShorthand parses "<duration> <keyframes-name>" with optional
// trailing "<tween>", "<iterations>|infinite" and "alternate" terms, in any
// order after the first two.
func parseAnimationShorthand(s string) (name string, duration float64, tween property.Tween, iterations int, alternate bool, ok bool) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return "", 0, property.Tween{}, 0, false, false
	}

	duration, durOK := parseDurationField(fields[0])
	if !durOK {
		return "", 0, property.Tween{}, 0, false, false
	}
	name = fields[1]
	iterations = 1

	for _, field := range fields[2:] {
		switch {
		case field == "alternate":
			alternate = true
		case field == "infinite":
			iterations = anim.Infinite
		default:
			if tw, twOK := property.ParseTween(field); twOK {
				tween = tw
			} else if n, err := strconv.Atoi(field); err == nil && n > 0 {
				iterations = n
			} else {
				return "", 0, property.Tween{}, 0, false, false
			}
		}
	}
	return name, duration, tween, iterations, alternate, true
}

func parseDurationField(s string) (float64, bool) {
	switch {
	case strings.HasSuffix(s, "ms"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "ms"), 64)
		return v / 1000, err == nil
	case strings.HasSuffix(s, "s"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "s"), 64)
		return v, err == nil
	}
	return 0, false
}
