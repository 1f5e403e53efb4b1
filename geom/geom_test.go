package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMat4TranslateTransformsPoint(t *testing.T) {
	m := Translate(10, 20, 0)
	p := m.TransformPoint(Vec2{X: 1, Y: 2})
	require.InDelta(t, 11, p.X, 1e-9)
	require.InDelta(t, 22, p.Y, 1e-9)
}

func TestMat4MulComposesRightToLeft(t *testing.T) {
	translate := Translate(10, 0, 0)
	scale := Scale(2, 2, 1)

	// Scale first, then translate.
	m := translate.Mul(scale)
	p := m.TransformPoint(Vec2{X: 1, Y: 1})
	require.InDelta(t, 12, p.X, 1e-9)
	require.InDelta(t, 2, p.Y, 1e-9)
}

func TestMat4InvertRoundTrips(t *testing.T) {
	m := Translate(5, -3, 0).Mul(RotateZ(0.5)).Mul(Scale(2, 0.5, 1))
	inv, ok := m.Invert()
	require.True(t, ok)

	p := Vec2{X: 7, Y: 11}
	back := inv.TransformPoint(m.TransformPoint(p))
	require.InDelta(t, p.X, back.X, 1e-9)
	require.InDelta(t, p.Y, back.Y, 1e-9)
}

func TestMat4InvertSingular(t *testing.T) {
	_, ok := Scale(0, 1, 1).Invert()
	require.False(t, ok)
}

func TestPerspectiveDivide(t *testing.T) {
	v := Vec4{X: 10, Y: 20, Z: 4, W: 2}
	p := v.PerspectiveDivide()
	require.InDelta(t, 5, p.X, 1e-9)
	require.InDelta(t, 10, p.Y, 1e-9)
	require.InDelta(t, 2, p.Z, 1e-9)
}

func TestBoxAreaGeometry(t *testing.T) {
	var b Box
	b.SetContent(Vec2{X: 100, Y: 50})
	b.SetEdges(AreaPadding, Edges{Top: 5, Right: 5, Bottom: 5, Left: 5})
	b.SetEdges(AreaBorder, Edges{Top: 1, Right: 1, Bottom: 1, Left: 1})
	b.SetEdges(AreaMargin, Edges{Top: 10, Right: 10, Bottom: 10, Left: 10})

	if got := b.Size(AreaContent); got != (Vec2{X: 100, Y: 50}) {
		t.Fatalf("content size: expected {100 50}, got %v", got)
	}
	require.Equal(t, Vec2{X: 110, Y: 60}, b.Size(AreaPadding))
	require.Equal(t, Vec2{X: 112, Y: 62}, b.Size(AreaBorder))
	require.Equal(t, Vec2{X: 132, Y: 82}, b.Size(AreaMargin))

	// Positions are relative to the border box.
	require.Equal(t, Vec2{}, b.Position(AreaBorder))
	require.Equal(t, Vec2{X: 1, Y: 1}, b.Position(AreaPadding))
	require.Equal(t, Vec2{X: 6, Y: 6}, b.Position(AreaContent))
	require.Equal(t, Vec2{X: -10, Y: -10}, b.Position(AreaMargin))
}

func TestBoxContentEdgesIgnored(t *testing.T) {
	var b Box
	b.SetEdges(AreaContent, Edges{Top: 9})
	require.Equal(t, Edges{}, b.Edge(AreaContent))
}
