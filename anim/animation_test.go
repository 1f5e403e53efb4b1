package anim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AYColumbia/quill/property"
)

func TestAdvanceInterpolatesBetweenKeys(t *testing.T) {
	a := New(property.Opacity, property.Num(0), 1, false, 0)
	a.AddKey(1, property.Num(1), property.Tween{})

	v := a.Advance(0.25)
	require.InDelta(t, 0.25, v.Number, 1e-9)

	v = a.Advance(0.5)
	require.InDelta(t, 0.75, v.Number, 1e-9)
	require.False(t, a.IsComplete())
}

func TestAdvanceCompletesAtEndValue(t *testing.T) {
	a := New(property.Width, property.Px(10), 1, false, 0)
	a.AddKey(2, property.Px(30), property.Tween{})

	v := a.Advance(5)
	require.True(t, a.IsComplete())
	require.InDelta(t, 30, v.Number, 1e-9)

	// Complete animations keep returning the end value.
	v = a.Advance(1)
	require.InDelta(t, 30, v.Number, 1e-9)
}

func TestDelayConsumesTimeBeforePlayback(t *testing.T) {
	a := New(property.Opacity, property.Num(0), 1, false, 1)
	a.AddKey(1, property.Num(1), property.Tween{})

	v := a.Advance(0.5)
	require.InDelta(t, 0, v.Number, 1e-9)

	// 0.5s of this step finish the delay, the rest plays.
	v = a.Advance(1)
	require.InDelta(t, 0.5, v.Number, 1e-9)
}

func TestLoopWrapsIterations(t *testing.T) {
	a := New(property.Opacity, property.Num(0), 3, false, 0)
	a.AddKey(1, property.Num(1), property.Tween{})

	v := a.Advance(1.25)
	require.False(t, a.IsComplete())
	require.InDelta(t, 0.25, v.Number, 1e-9)

	a.Advance(1)
	v = a.Advance(1)
	require.True(t, a.IsComplete())
	require.InDelta(t, 1, v.Number, 1e-9)
}

func TestInfiniteNeverCompletes(t *testing.T) {
	a := New(property.Opacity, property.Num(0), Infinite, false, 0)
	a.AddKey(1, property.Num(1), property.Tween{})

	v := a.Advance(100.5)
	require.False(t, a.IsComplete())
	require.InDelta(t, 0.5, v.Number, 1e-9)
}

func TestAlternateReversesOddIterations(t *testing.T) {
	a := New(property.Opacity, property.Num(0), 2, true, 0)
	a.AddKey(1, property.Num(1), property.Tween{})

	// Second iteration plays backwards.
	v := a.Advance(1.25)
	require.InDelta(t, 0.75, v.Number, 1e-9)

	// An even iteration count ends back at the start value.
	v = a.Advance(1)
	require.True(t, a.IsComplete())
	require.InDelta(t, 0, v.Number, 1e-9)
}

func TestAlternateOddCountEndsAtTarget(t *testing.T) {
	a := New(property.Opacity, property.Num(0), 3, true, 0)
	a.AddKey(1, property.Num(1), property.Tween{})

	v := a.Advance(3)
	require.True(t, a.IsComplete())
	require.InDelta(t, 1, v.Number, 1e-9)
}

func TestAddKeyExtendsTimeline(t *testing.T) {
	a := New(property.Width, property.Px(0), 1, false, 0)
	a.AddKey(1, property.Px(10), property.Tween{})
	a.AddKey(1, property.Px(30), property.Tween{})

	require.InDelta(t, 2, a.Duration(), 1e-9)

	v := a.Advance(1.5)
	require.InDelta(t, 20, v.Number, 1e-9)
}

func TestTransitionCurrentValueContinuity(t *testing.T) {
	def := property.TransitionDef{Target: property.Opacity, Duration: 1}
	a := NewTransition(def, property.Opacity, property.Num(0), property.Num(1))
	require.True(t, a.IsTransition())

	a.Advance(0.4)
	mid := a.CurrentValue()
	require.InDelta(t, 0.4, mid.Number, 1e-9)

	// A replacement transition starting from CurrentValue shows no snap.
	replacement := NewTransition(def, property.Opacity, mid, property.Num(0))
	v := replacement.Advance(0)
	require.InDelta(t, 0.4, v.Number, 1e-9)
}

func TestTweenShapesSegment(t *testing.T) {
	tw, ok := property.ParseTween("quadratic-in")
	require.True(t, ok)

	a := New(property.Opacity, property.Num(0), 1, false, 0)
	a.AddKey(1, property.Num(1), tw)

	v := a.Advance(0.5)
	require.InDelta(t, 0.25, v.Number, 1e-9)
}
