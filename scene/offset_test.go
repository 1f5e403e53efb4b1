package scene

import (
	"testing"

	"github.com/AYColumbia/quill/geom"
)

func TestAbsoluteOffsetChainsThroughOffsetParent(t *testing.T) {
	doc, _ := newTestDocument()
	outer := NewElement("div")
	inner := NewElement("div")
	doc.Root().AppendChild(outer)
	outer.AppendChild(inner)

	outer.SetProperty("position", "relative")
	doc.Update()

	outer.SetOffset(geom.Vec2{X: 100, Y: 50}, nil, false)
	inner.SetOffset(geom.Vec2{X: 10, Y: 20}, outer, false)
	doc.Update()

	if got := outer.GetAbsoluteOffset(geom.AreaBorder); got != (geom.Vec2{X: 100, Y: 50}) {
		t.Errorf("expected outer at {100 50}, got %v", got)
	}
	if got := inner.GetAbsoluteOffset(geom.AreaBorder); got != (geom.Vec2{X: 110, Y: 70}) {
		t.Errorf("expected inner at {110 70}, got %v", got)
	}
}

func TestOffsetParentDefaultsToNearestPositionedAncestor(t *testing.T) {
	doc, _ := newTestDocument()
	positioned := NewElement("div")
	plain := NewElement("div")
	leaf := NewElement("div")
	doc.Root().AppendChild(positioned)
	positioned.AppendChild(plain)
	plain.AppendChild(leaf)

	positioned.SetProperty("position", "relative")
	doc.Update()

	if got := leaf.GetOffsetParent(); got != positioned {
		t.Errorf("expected nearest positioned ancestor, got %v", got)
	}
	if got := plain.GetOffsetParent(); got != positioned {
		t.Errorf("expected positioned parent, got %v", got)
	}
}

func TestOffsetParentFallsBackToRoot(t *testing.T) {
	doc, _ := newTestDocument()
	leaf := NewElement("div")
	doc.Root().AppendChild(leaf)
	doc.Update()

	if got := leaf.GetOffsetParent(); got != doc.Root() {
		t.Errorf("expected root as offset parent, got %v", got)
	}
}

func TestFixedBreaksOffsetChain(t *testing.T) {
	doc, _ := newTestDocument()
	outer := NewElement("div")
	pinned := NewElement("div")
	doc.Root().AppendChild(outer)
	outer.AppendChild(pinned)

	outer.SetProperty("position", "relative")
	doc.Update()

	outer.SetOffset(geom.Vec2{X: 100, Y: 100}, nil, false)
	pinned.SetOffset(geom.Vec2{X: 5, Y: 5}, nil, true)
	doc.Update()

	if got := pinned.GetOffsetParent(); got != nil {
		t.Errorf("expected fixed element to have no offset parent")
	}
	// Fixed positions are viewport-anchored, the ancestor offset is ignored.
	if got := pinned.GetAbsoluteOffset(geom.AreaBorder); got != (geom.Vec2{X: 5, Y: 5}) {
		t.Errorf("expected pinned at {5 5}, got %v", got)
	}
}

func TestRelativePositionShiftsOffset(t *testing.T) {
	doc, _ := newTestDocument()
	e := NewElement("div")
	doc.Root().AppendChild(e)

	e.SetProperty("position", "relative")
	e.SetProperty("left", "30px")
	e.SetProperty("top", "15px")
	doc.Update()

	if got := e.GetAbsoluteOffset(geom.AreaBorder); got != (geom.Vec2{X: 30, Y: 15}) {
		t.Errorf("expected relative shift {30 15}, got %v", got)
	}
	if got := e.GetOffsetLeft(); got != 30 {
		t.Errorf("expected offset left 30, got %v", got)
	}
}

func TestLeftBeatsRightTopBeatsBottom(t *testing.T) {
	doc, _ := newTestDocument()
	e := NewElement("div")
	doc.Root().AppendChild(e)

	e.SetProperty("position", "relative")
	e.SetProperty("left", "10px")
	e.SetProperty("right", "99px")
	e.SetProperty("bottom", "40px")
	doc.Update()

	if got := e.GetAbsoluteOffset(geom.AreaBorder); got != (geom.Vec2{X: 10, Y: -40}) {
		t.Errorf("expected {10 -40}, got %v", got)
	}
}

func TestScrollShiftsChildOffsets(t *testing.T) {
	doc, _ := newTestDocument()
	container := NewElement("div")
	child := NewElement("div")
	doc.Root().AppendChild(container)
	container.AppendChild(child)

	container.SetProperty("position", "relative")
	container.SetProperty("width", "100px")
	container.SetProperty("height", "100px")
	child.SetProperty("width", "50px")
	child.SetProperty("height", "300px")
	doc.Update()

	child.SetOffset(geom.Vec2{X: 0, Y: 40}, container, false)
	doc.Update()
	if got := child.GetAbsoluteOffset(geom.AreaBorder); got != (geom.Vec2{X: 0, Y: 40}) {
		t.Fatalf("expected child at {0 40}, got %v", got)
	}

	container.SetScrollTop(30)
	doc.Update()
	if got := child.GetAbsoluteOffset(geom.AreaBorder); got != (geom.Vec2{X: 0, Y: 10}) {
		t.Errorf("expected scrolled child at {0 10}, got %v", got)
	}
}

func TestOffsetCacheInvalidatesOnAncestorMove(t *testing.T) {
	doc, _ := newTestDocument()
	outer := NewElement("div")
	inner := NewElement("div")
	doc.Root().AppendChild(outer)
	outer.AppendChild(inner)

	outer.SetProperty("position", "relative")
	doc.Update()

	outer.SetOffset(geom.Vec2{X: 10, Y: 10}, nil, false)
	inner.SetOffset(geom.Vec2{X: 1, Y: 1}, outer, false)
	doc.Update()
	if got := inner.GetAbsoluteOffset(geom.AreaBorder); got != (geom.Vec2{X: 11, Y: 11}) {
		t.Fatalf("expected inner at {11 11}, got %v", got)
	}

	outer.SetOffset(geom.Vec2{X: 20, Y: 10}, nil, false)
	doc.Update()
	if got := inner.GetAbsoluteOffset(geom.AreaBorder); got != (geom.Vec2{X: 21, Y: 11}) {
		t.Errorf("expected inner to follow the ancestor, got %v", got)
	}
}
