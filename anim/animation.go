// Package anim implements time-keyed property animation. An Animation owns
// an ordered key list for a single property and advances through it frame by
// frame, producing interpolated values. Transitions are restricted two-key
// animations that never loop.
package anim

import "github.com/AYColumbia/quill/property"

// Key is one point of an animation timeline. Tween eases the segment that
// ends at this key.
type Key struct {
	Time  float64
	Value property.Value
	Tween property.Tween
}

// Infinite loops an animation forever.
const Infinite = -1

// Animation interpolates one property over time.
type Animation struct {
	propertyID property.ID
	keys       []Key

	numIterations int
	alternate     bool
	delay         float64
	transition    bool

	time             float64
	currentIteration int
	reverse          bool
	complete         bool
}

// New creates an animation for the given property, starting at startValue.
// numIterations may be Infinite. Transitions are created through
// NewTransition instead.
func New(id property.ID, startValue property.Value, numIterations int, alternate bool, delay float64) *Animation {
	if numIterations == 0 {
		numIterations = 1
	}
	return &Animation{
		propertyID:    id,
		keys:          []Key{{Time: 0, Value: startValue}},
		numIterations: numIterations,
		alternate:     alternate,
		delay:         delay,
	}
}

// NewTransition creates the implicit two-key animation for a property whose
// cascaded value changed from startValue to targetValue.
func NewTransition(def property.TransitionDef, id property.ID, startValue, targetValue property.Value) *Animation {
	a := &Animation{
		propertyID:    id,
		keys:          []Key{{Time: 0, Value: startValue}},
		numIterations: 1,
		delay:         def.Delay,
		transition:    true,
	}
	a.AddKey(def.Duration, targetValue, def.Tween)
	return a
}

// PropertyID returns the animated property.
func (a *Animation) PropertyID() property.ID { return a.propertyID }

// IsTransition reports whether the animation was created by a transition.
func (a *Animation) IsTransition() bool { return a.transition }

// IsComplete reports whether the animation has exhausted its iterations.
func (a *Animation) IsComplete() bool { return a.complete }

// Duration returns the length of one iteration.
func (a *Animation) Duration() float64 {
	return a.keys[len(a.keys)-1].Time
}

// AddKey appends a key duration seconds after the current last key,
// extending the timeline.
func (a *Animation) AddKey(duration float64, value property.Value, tween property.Tween) {
	if duration < 0 {
		duration = 0
	}
	a.keys = append(a.keys, Key{
		Time:  a.Duration() + duration,
		Value: value,
		Tween: tween,
	})
}

// Advance moves the animation dt seconds forward and returns the value for
// the new time. Once the final iteration ends the animation is complete and
// keeps returning its end value.
func (a *Animation) Advance(dt float64) property.Value {
	if dt > 0 && a.delay > 0 {
		consumed := a.delay
		if dt < consumed {
			consumed = dt
		}
		a.delay -= consumed
		dt -= consumed
	}
	if a.complete {
		return a.endValue()
	}

	duration := a.Duration()
	if duration <= 0 {
		a.complete = a.numIterations != Infinite
		return a.endValue()
	}

	a.time += dt
	for a.time >= duration {
		a.time -= duration
		a.currentIteration++
		// Completion is checked before the direction flips so endValue sees
		// the direction the final iteration actually played in.
		if a.numIterations != Infinite && a.currentIteration >= a.numIterations {
			a.complete = true
			return a.endValue()
		}
		if a.alternate {
			a.reverse = !a.reverse
		}
	}

	return a.valueAt(a.time)
}

// CurrentValue returns the interpolated value at the animation's current
// time without advancing it. A replacement transition uses this as its start
// value so playback continues without a visual snap.
func (a *Animation) CurrentValue() property.Value {
	if a.complete {
		return a.endValue()
	}
	return a.valueAt(a.time)
}

func (a *Animation) endValue() property.Value {
	// With alternate direction, an even iteration count ends back at the
	// first key.
	if a.reverse {
		return a.keys[0].Value
	}
	return a.keys[len(a.keys)-1].Value
}

func (a *Animation) valueAt(t float64) property.Value {
	if a.reverse {
		t = a.Duration() - t
	}

	upper := len(a.keys) - 1
	for i, k := range a.keys {
		if k.Time >= t {
			upper = i
			break
		}
	}
	if upper == 0 {
		return a.keys[0].Value
	}

	k0, k1 := a.keys[upper-1], a.keys[upper]
	span := k1.Time - k0.Time
	if span <= 0 {
		return k1.Value
	}
	alpha := (t - k0.Time) / span
	return property.Interpolate(k0.Value, k1.Value, k1.Tween.Solve(alpha))
}
