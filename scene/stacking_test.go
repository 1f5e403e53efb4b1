package scene

import (
	"testing"
)

func contextTags(e *Element) []string {
	var tags []string
	for _, el := range e.StackingContext() {
		tags = append(tags, el.Tag())
	}
	return tags
}

func expectOrder(t *testing.T, e *Element, expected []string) {
	t.Helper()
	got := contextTags(e)
	if len(got) != len(expected) {
		t.Fatalf("expected order %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected order %v, got %v", expected, got)
		}
	}
}

func TestRootOwnsStackingContext(t *testing.T) {
	doc, _ := newTestDocument()
	doc.Update()

	if doc.Root().StackingContext() == nil {
		t.Fatalf("expected root to own a stacking context")
	}
	expectOrder(t, doc.Root(), []string{"body"})
}

func TestNegativeZIndexPaintsBeforeOwner(t *testing.T) {
	doc, _ := newTestDocument()
	root := doc.Root()

	behind := NewElement("behind")
	behind.SetProperty("z-index", "-1")
	front := NewElement("front")
	front.SetProperty("z-index", "1")
	plain := NewElement("plain")

	root.AppendChild(behind)
	root.AppendChild(plain)
	root.AppendChild(front)
	doc.Update()

	// Negative z paints under the owner's own geometry, auto z above it,
	// positive z last.
	expectOrder(t, root, []string{"behind", "body", "plain", "front"})
}

func TestAutoPrecedesExplicitZeroAtSameZ(t *testing.T) {
	doc, _ := newTestDocument()
	root := doc.Root()

	explicit := NewElement("explicit")
	explicit.SetProperty("z-index", "0")
	auto := NewElement("auto")

	root.AppendChild(explicit)
	root.AppendChild(auto)
	doc.Update()

	expectOrder(t, root, []string{"body", "auto", "explicit"})
}

func TestStackingBuildIsDeterministic(t *testing.T) {
	doc, _ := newTestDocument()
	root := doc.Root()

	for _, tag := range []string{"a", "b", "c", "d"} {
		root.AppendChild(NewElement(tag))
	}
	doc.Update()
	first := contextTags(root)

	// Rebuilding from the same tree yields the same order.
	root.DirtyStackingContext()
	doc.Update()
	second := contextTags(root)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected identical orders, got %v then %v", first, second)
		}
	}
}

func TestChildContextContributesAsUnit(t *testing.T) {
	doc, _ := newTestDocument()
	root := doc.Root()

	group := NewElement("group")
	group.SetProperty("opacity", "0.5")
	inner := NewElement("inner")
	group.AppendChild(inner)
	root.AppendChild(group)
	doc.Update()

	// The partially transparent group owns its own context; its descendants
	// do not appear in the root's list.
	expectOrder(t, root, []string{"body", "group"})
	expectOrder(t, group, []string{"group", "inner"})
}

func TestTransformImpliesLocalContext(t *testing.T) {
	doc, _ := newTestDocument()
	root := doc.Root()

	moved := NewElement("moved")
	moved.SetProperty("transform", "translate(10px, 0px)")
	child := NewElement("child")
	moved.AppendChild(child)
	root.AppendChild(moved)
	doc.Update()

	expectOrder(t, root, []string{"body", "moved"})
	if moved.StackingContext() == nil {
		t.Errorf("expected transformed element to own a context")
	}
}

func TestHiddenElementsLeaveStackingOrder(t *testing.T) {
	doc, _ := newTestDocument()
	root := doc.Root()

	a := NewElement("a")
	b := NewElement("b")
	root.AppendChild(a)
	root.AppendChild(b)
	doc.Update()
	expectOrder(t, root, []string{"body", "a", "b"})

	a.SetProperty("display", "none")
	doc.Update()
	expectOrder(t, root, []string{"body", "b"})
}

func TestRemovalDirtiesAncestorContext(t *testing.T) {
	doc, _ := newTestDocument()
	root := doc.Root()

	a := NewElement("a")
	b := NewElement("b")
	root.AppendChild(a)
	root.AppendChild(b)
	doc.Update()

	root.RemoveChild(a)
	doc.Update()
	expectOrder(t, root, []string{"body", "b"})
}

func TestMutationUnderContextOwnerDirtiesOwnList(t *testing.T) {
	doc, _ := newTestDocument()
	root := doc.Root()

	owner := NewElement("owner")
	owner.ForceLocalStackingContext()
	root.AppendChild(owner)
	doc.Update()
	expectOrder(t, owner, []string{"owner"})

	// Appending below an owner must land in the owner's list, not in the
	// root's.
	owner.AppendChild(NewElement("late"))
	doc.Update()
	expectOrder(t, owner, []string{"owner", "late"})
	expectOrder(t, root, []string{"body", "owner"})
}

func TestRemovalUnderContextOwner(t *testing.T) {
	doc, _ := newTestDocument()
	root := doc.Root()

	owner := NewElement("owner")
	owner.ForceLocalStackingContext()
	a := NewElement("a")
	b := NewElement("b")
	owner.AppendChild(a)
	owner.AppendChild(b)
	root.AppendChild(owner)
	doc.Update()
	expectOrder(t, owner, []string{"owner", "a", "b"})

	owner.RemoveChild(a)
	doc.Update()
	expectOrder(t, owner, []string{"owner", "b"})
}

func TestZIndexChangeReordersAncestorContext(t *testing.T) {
	doc, _ := newTestDocument()
	root := doc.Root()

	group := NewElement("group")
	group.SetProperty("opacity", "0.5")
	other := NewElement("other")
	root.AppendChild(group)
	root.AppendChild(other)
	doc.Update()
	expectOrder(t, root, []string{"body", "group", "other"})

	// The group owns its own context; its z-index still positions it as a
	// unit within the root's list.
	group.SetProperty("z-index", "-1")
	doc.Update()
	expectOrder(t, root, []string{"group", "body", "other"})
}

func TestForceLocalStackingContext(t *testing.T) {
	doc, _ := newTestDocument()
	root := doc.Root()

	forced := NewElement("forced")
	forced.ForceLocalStackingContext()
	forced.AppendChild(NewElement("inner"))
	root.AppendChild(forced)
	doc.Update()

	expectOrder(t, root, []string{"body", "forced"})
	expectOrder(t, forced, []string{"forced", "inner"})
}
