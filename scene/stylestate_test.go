package scene

import (
	"testing"

	"github.com/AYColumbia/quill/property"
	"github.com/AYColumbia/quill/style"
)

// countingBehavior records style notifications.
type countingBehavior struct {
	NopBehavior
	propertyChanges int
	lastChanged     []PropertyChange
}

func (b *countingBehavior) OnPropertyChange(e *Element, changed []PropertyChange) {
	b.propertyChanges++
	b.lastChanged = changed
}

// classSource maps class names to declarations, standing in for a selector
// matcher.
func classSource(rules map[string][]style.Declaration) style.Source {
	return style.SourceFunc(func(e style.ElementState) []style.Declaration {
		var matched []style.Declaration
		for class, decls := range rules {
			if e.IsClassSet(class) {
				matched = append(matched, decls...)
			}
		}
		return matched
	})
}

func TestSetPropertyParsesAndApplies(t *testing.T) {
	doc, _ := newTestDocument()
	e := NewElement("div")
	doc.Root().AppendChild(e)

	if !e.SetProperty("width", "120px") {
		t.Fatalf("expected width to parse")
	}
	doc.Update()

	if got := e.GetProperty(property.Width); !got.Equal(property.Px(120)) {
		t.Errorf("expected width 120px, got %v", got)
	}
}

func TestSetPropertyRejectsInvalid(t *testing.T) {
	doc, _ := newTestDocument()
	e := doc.Root()

	if e.SetProperty("no-such-property", "10px") {
		t.Errorf("expected unknown property to be rejected")
	}
	if e.SetProperty("width", "chartreuse") {
		t.Errorf("expected unparsable value to be rejected")
	}
	// The prior value is untouched by a failed set.
	e.SetProperty("width", "50px")
	e.SetProperty("width", "garbage")
	if _, ok := e.GetLocalProperty(property.Width); !ok {
		t.Errorf("expected prior local property to survive a failed set")
	}
	if got := e.GetProperty(property.Width); !got.Equal(property.Px(50)) {
		t.Errorf("expected width to keep its prior value, got %v", got)
	}
}

func TestRemovePropertyRestoresCascade(t *testing.T) {
	doc, _ := newTestDocument()
	doc.SetCascadeSource(classSource(map[string][]style.Declaration{
		"wide": {{ID: property.Width, Value: property.Px(300)}},
	}))

	e := NewElement("div")
	e.SetClass("wide", true)
	doc.Root().AppendChild(e)
	e.SetProperty("width", "100px")
	doc.Update()

	if got := e.GetProperty(property.Width); !got.Equal(property.Px(100)) {
		t.Fatalf("expected local override to win, got %v", got)
	}

	e.RemoveProperty("width")
	doc.Update()
	if got := e.GetProperty(property.Width); !got.Equal(property.Px(300)) {
		t.Errorf("expected matched declaration after removal, got %v", got)
	}
}

func TestBatchedClassTogglesResolveOnce(t *testing.T) {
	doc, _ := newTestDocument()
	doc.SetCascadeSource(classSource(map[string][]style.Declaration{
		"wide": {{ID: property.Width, Value: property.Px(300)}},
		"red":  {{ID: property.BackgroundColor, Value: property.ColorValue(property.Color{R: 255, A: 255})}},
	}))

	e := NewElement("div")
	doc.Root().AppendChild(e)
	doc.Update()

	behavior := &countingBehavior{}
	e.SetBehavior(behavior)

	// Several toggles between frames cost one recomputation.
	e.SetClass("wide", true)
	e.SetClass("red", true)
	e.SetClass("red", false)
	e.SetClass("red", true)
	doc.Update()

	if behavior.propertyChanges != 1 {
		t.Errorf("expected one style resolution, got %d", behavior.propertyChanges)
	}

	// A clean frame resolves nothing.
	doc.Update()
	if behavior.propertyChanges != 1 {
		t.Errorf("expected no further resolutions on a clean frame, got %d", behavior.propertyChanges)
	}
}

func TestPropertyChangeNotification(t *testing.T) {
	doc, _ := newTestDocument()
	e := NewElement("div")
	doc.Root().AppendChild(e)
	doc.Update()

	behavior := &countingBehavior{}
	e.SetBehavior(behavior)

	e.SetProperty("opacity", "0.5")
	doc.Update()

	found := false
	for _, ch := range behavior.lastChanged {
		if ch.ID == property.Opacity {
			found = true
			if ch.New.Number != 0.5 {
				t.Errorf("expected new opacity 0.5, got %v", ch.New)
			}
		}
	}
	if !found {
		t.Errorf("expected opacity in the change set")
	}
}

func TestInheritedChangePropagatesToChildren(t *testing.T) {
	doc, _ := newTestDocument()
	parent := NewElement("div")
	child := NewElement("p")
	doc.Root().AppendChild(parent)
	parent.AppendChild(child)
	doc.Update()

	red := property.Color{R: 255, A: 255}
	parent.SetProperty("color", "#ff0000")
	doc.Update()

	if got := child.GetProperty(property.TextColor); got.Color != red {
		t.Errorf("expected child to inherit color, got %v", got)
	}
}

func TestDisplayNoneHidesSubtree(t *testing.T) {
	doc, _ := newTestDocument()
	e := NewElement("div")
	doc.Root().AppendChild(e)
	doc.Update()

	if !e.IsVisible() {
		t.Fatalf("expected element to start visible")
	}

	e.SetProperty("display", "none")
	doc.Update()
	if e.IsVisible() {
		t.Errorf("expected display:none to hide the element")
	}

	e.SetProperty("display", "block")
	doc.Update()
	if !e.IsVisible() {
		t.Errorf("expected display:block to show the element again")
	}
}

func TestPseudoClassAffectsCascade(t *testing.T) {
	doc, _ := newTestDocument()
	doc.SetCascadeSource(style.SourceFunc(func(e style.ElementState) []style.Declaration {
		if e.IsPseudoClassSet("hover") {
			return []style.Declaration{{ID: property.Opacity, Value: property.Num(0.5)}}
		}
		return nil
	}))

	e := NewElement("div")
	doc.Root().AppendChild(e)
	doc.Update()

	e.SetPseudoClass("hover", true)
	doc.Update()
	if got := e.ComputedValues().Opacity(); got != 0.5 {
		t.Errorf("expected hover opacity 0.5, got %v", got)
	}

	e.SetPseudoClass("hover", false)
	doc.Update()
	if got := e.ComputedValues().Opacity(); got != 1 {
		t.Errorf("expected opacity to return to 1, got %v", got)
	}
}
