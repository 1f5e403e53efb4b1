package scene

import (
	"testing"

	"github.com/AYColumbia/quill/geom"
)

func TestUpdateBoxResolvesProperties(t *testing.T) {
	doc, _ := newTestDocument()
	e := NewElement("div")
	doc.Root().AppendChild(e)

	e.SetProperty("width", "200px")
	e.SetProperty("height", "100px")
	e.SetProperty("padding-top", "10px")
	e.SetProperty("padding-left", "10px")
	e.SetProperty("border-top-width", "2px")
	doc.Update()

	box := e.Box()
	if got := box.Size(geom.AreaContent); got != (geom.Vec2{X: 200, Y: 100}) {
		t.Errorf("expected content 200x100, got %v", got)
	}
	if got := box.Edge(geom.AreaPadding).Top; got != 10 {
		t.Errorf("expected padding top 10, got %v", got)
	}
	if got := box.Edge(geom.AreaBorder).Top; got != 2 {
		t.Errorf("expected border top 2, got %v", got)
	}
}

func TestUpdateBoxPercentagesAgainstParentContent(t *testing.T) {
	doc, _ := newTestDocument()
	parent := NewElement("div")
	child := NewElement("div")
	doc.Root().AppendChild(parent)
	parent.AppendChild(child)

	parent.SetProperty("width", "400px")
	parent.SetProperty("height", "200px")
	child.SetProperty("width", "50%")
	child.SetProperty("height", "25%")
	doc.Update()

	if got := child.Box().Size(geom.AreaContent); got != (geom.Vec2{X: 200, Y: 50}) {
		t.Errorf("expected child content 200x50, got %v", got)
	}
}

func TestRootResolvesAgainstViewport(t *testing.T) {
	doc, _ := newTestDocument()
	doc.Root().SetProperty("width", "100%")
	doc.Root().SetProperty("height", "100%")
	doc.Update()

	if got := doc.Root().Box().Size(geom.AreaContent); got != (geom.Vec2{X: 800, Y: 600}) {
		t.Errorf("expected root content 800x600, got %v", got)
	}
}

func TestMinMaxClamping(t *testing.T) {
	doc, _ := newTestDocument()
	e := NewElement("div")
	doc.Root().AppendChild(e)

	e.SetProperty("width", "500px")
	e.SetProperty("max-width", "300px")
	e.SetProperty("height", "10px")
	e.SetProperty("min-height", "50px")
	doc.Update()

	if got := e.Box().Size(geom.AreaContent); got != (geom.Vec2{X: 300, Y: 50}) {
		t.Errorf("expected clamped content 300x50, got %v", got)
	}
}

func TestGetBoxOutOfRangeDegradesToPrimary(t *testing.T) {
	e := NewElement("div")
	e.SetBox(geom.NewBox(geom.Vec2{X: 10, Y: 10}))
	e.AddBox(geom.NewBox(geom.Vec2{X: 5, Y: 5}))

	if e.NumBoxes() != 2 {
		t.Fatalf("expected 2 boxes, got %d", e.NumBoxes())
	}
	if got := e.GetBox(1).Size(geom.AreaContent); got != (geom.Vec2{X: 5, Y: 5}) {
		t.Errorf("expected additional box, got %v", got)
	}
	if got := e.GetBox(99).Size(geom.AreaContent); got != (geom.Vec2{X: 10, Y: 10}) {
		t.Errorf("expected out-of-range index to return the primary box, got %v", got)
	}
	if got := e.GetBox(-1).Size(geom.AreaContent); got != (geom.Vec2{X: 10, Y: 10}) {
		t.Errorf("expected negative index to return the primary box, got %v", got)
	}
}

func TestSetBoxResetsAdditionalBoxes(t *testing.T) {
	e := NewElement("div")
	e.SetBox(geom.NewBox(geom.Vec2{X: 10, Y: 10}))
	e.AddBox(geom.NewBox(geom.Vec2{X: 5, Y: 5}))
	e.SetBox(geom.NewBox(geom.Vec2{X: 20, Y: 20}))

	if e.NumBoxes() != 1 {
		t.Errorf("expected additional boxes to be dropped, got %d", e.NumBoxes())
	}
}

func TestClientAndOffsetQueries(t *testing.T) {
	doc, _ := newTestDocument()
	e := NewElement("div")
	doc.Root().AppendChild(e)

	e.SetProperty("width", "100px")
	e.SetProperty("height", "60px")
	e.SetProperty("padding-top", "5px")
	e.SetProperty("padding-left", "5px")
	e.SetProperty("padding-right", "5px")
	e.SetProperty("padding-bottom", "5px")
	e.SetProperty("border-top-width", "1px")
	e.SetProperty("border-left-width", "1px")
	e.SetProperty("border-right-width", "1px")
	e.SetProperty("border-bottom-width", "1px")
	doc.Update()

	// Client area defaults to the padding box.
	if got := e.GetClientWidth(); got != 110 {
		t.Errorf("expected client width 110, got %v", got)
	}
	if got := e.GetClientLeft(); got != 1 {
		t.Errorf("expected client left 1, got %v", got)
	}
	// Offset dimensions cover the border box.
	if got := e.GetOffsetWidth(); got != 112 {
		t.Errorf("expected offset width 112, got %v", got)
	}
	if got := e.GetOffsetHeight(); got != 72 {
		t.Errorf("expected offset height 72, got %v", got)
	}
}

func TestScrollClamping(t *testing.T) {
	doc, _ := newTestDocument()
	container := NewElement("div")
	content := NewElement("div")
	doc.Root().AppendChild(container)
	container.AppendChild(content)

	container.SetProperty("position", "relative")
	container.SetProperty("width", "100px")
	container.SetProperty("height", "100px")
	container.SetProperty("overflow-x", "scroll")
	container.SetProperty("overflow-y", "scroll")
	content.SetProperty("width", "300px")
	content.SetProperty("height", "100px")
	doc.Update()

	container.SetScrollLeft(50)
	if got := container.GetScrollLeft(); got != 50 {
		t.Errorf("expected scroll left 50, got %v", got)
	}

	// Past the scrollable range clamps.
	container.SetScrollLeft(10000)
	expected := container.GetScrollWidth() - container.GetClientWidth()
	if got := container.GetScrollLeft(); got != expected {
		t.Errorf("expected scroll left clamped to %v, got %v", expected, got)
	}

	container.SetScrollLeft(-10)
	if got := container.GetScrollLeft(); got != 0 {
		t.Errorf("expected scroll left clamped to 0, got %v", got)
	}
}
