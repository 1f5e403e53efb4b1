package scene

import (
	"fmt"

	"github.com/AYColumbia/quill/render"
)

// Structural mutation. Every operation updates parent/child/document links
// atomically: observers never see a half-updated tree. Insertion always
// detaches the incoming element from any prior parent first, so an element
// has exactly one parent at all times.

// Parent returns the element's parent, or nil for a root or detached element.
func (e *Element) Parent() *Element {
	return e.parent
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// HasChildNodes reports whether the element has any children.
func (e *Element) HasChildNodes() bool {
	return len(e.children) > 0
}

// Child returns the child at the given index, or nil when out of range.
func (e *Element) Child(index int) *Element {
	if index < 0 || index >= len(e.children) {
		return nil
	}
	return e.children[index]
}

// FirstChild returns the first child, or nil.
func (e *Element) FirstChild() *Element {
	return e.Child(0)
}

// LastChild returns the last child, or nil.
func (e *Element) LastChild() *Element {
	return e.Child(len(e.children) - 1)
}

// childIndex returns the index of child in e's child list, or -1.
func (e *Element) childIndex(child *Element) int {
	for i, c := range e.children {
		if c == child {
			return i
		}
	}
	return -1
}

// NextSibling returns the element following e in its parent's child list.
// Sibling relations are derived from the child list, never stored, so they
// cannot drift out of sync with it.
func (e *Element) NextSibling() *Element {
	if e.parent == nil {
		return nil
	}
	return e.parent.Child(e.parent.childIndex(e) + 1)
}

// PreviousSibling returns the element preceding e in its parent's child list.
func (e *Element) PreviousSibling() *Element {
	if e.parent == nil {
		return nil
	}
	i := e.parent.childIndex(e)
	if i <= 0 {
		return nil
	}
	return e.parent.Child(i - 1)
}

// Contains reports whether other is e or a descendant of e.
func (e *Element) Contains(other *Element) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == e {
			return true
		}
	}
	return false
}

// AppendChild appends child to the end of the child list, transferring
// ownership to e. The child is detached from any prior parent first. It
// returns the appended child.
func (e *Element) AppendChild(child *Element) *Element {
	return e.InsertBefore(child, nil)
}

// InsertBefore inserts child immediately before adjacent in the child list.
// A nil adjacent, or one that is not a child of e, appends instead. It
// returns the inserted child.
func (e *Element) InsertBefore(child, adjacent *Element) *Element {
	if child == nil || child == e || child.Contains(e) {
		// Cyclic insertion is prevented, not asserted.
		return nil
	}

	if child.parent != nil {
		child.parent.detachChild(child)
	}

	index := len(e.children)
	if adjacent != nil {
		if i := e.childIndex(adjacent); i >= 0 {
			index = i
		}
	}

	e.children = append(e.children, nil)
	copy(e.children[index+1:], e.children[index:])
	e.children[index] = child

	child.parent = e
	child.setOwnerDocument(e.ownerDocument)

	e.onChildChange(child, true)
	e.DirtyStackingContext()
	e.dirtyStructure()
	child.dirtyHierarchyState()
	return child
}

// RemoveChild detaches child from e and returns it, transferring ownership
// of the subtree to the caller. Removing an element that is not a child of e
// is a NotFound condition: nil is returned and the tree is untouched.
func (e *Element) RemoveChild(child *Element) *Element {
	if child == nil {
		return nil
	}
	if e.childIndex(child) < 0 {
		e.logError(render.LogInfo, ErrNotFound(fmt.Sprintf("removing %s from %s: not a child", child.Address(false), e.Address(false))))
		return nil
	}

	e.detachChild(child)
	e.onChildChange(child, false)
	e.DirtyStackingContext()
	e.dirtyStructure()
	return child
}

// ReplaceChild inserts inserted in place of replaced, returning ownership of
// replaced to the caller. When replaced is not a child of e, inserted is
// appended and nil is returned.
func (e *Element) ReplaceChild(inserted, replaced *Element) *Element {
	i := e.childIndex(replaced)
	if i < 0 {
		if replaced != nil {
			e.logError(render.LogInfo, ErrNotFound(fmt.Sprintf("replacing %s in %s: not a child", replaced.Address(false), e.Address(false))))
		}
		e.AppendChild(inserted)
		return nil
	}

	e.InsertBefore(inserted, replaced)
	return e.RemoveChild(replaced)
}

// detachChild unlinks child from e without notifications.
func (e *Element) detachChild(child *Element) {
	i := e.childIndex(child)
	if i < 0 {
		return
	}
	e.children = append(e.children[:i], e.children[i+1:]...)
	child.parent = nil
	child.setOwnerDocument(nil)
	child.dirtyHierarchyState()
}

// onChildChange fires the child add/remove hooks on the element and its
// parent. Notification depth is bounded to two levels so containers can
// react without a full tree walk.
func (e *Element) onChildChange(child *Element, added bool) {
	notify := func(target *Element) {
		if target == nil || target.behavior == nil {
			return
		}
		if added {
			target.behavior.OnChildAdd(target, child)
		} else {
			target.behavior.OnChildRemove(target, child)
		}
	}
	notify(e)
	notify(e.parent)
}

// setOwnerDocument updates the owner document of the subtree rooted at e.
func (e *Element) setOwnerDocument(doc *Document) {
	if e.ownerDocument == doc {
		return
	}
	e.ownerDocument = doc
	for _, child := range e.children {
		child.setOwnerDocument(doc)
	}
}

// dirtyHierarchyState invalidates every derived state that depends on the
// element's position in the tree: style (inheritance and selector matching),
// offsets, and ancestor transforms.
func (e *Element) dirtyHierarchyState() {
	e.DirtyStyle()
	e.DirtyOffset()
	e.DirtyTransformState(true, true, true)
	for _, child := range e.children {
		child.dirtyHierarchyState()
	}
}

// dirtyStructure marks structural selector state (child counts, sibling
// positions) stale on this element's subtree.
func (e *Element) dirtyStructure() {
	e.structureDirty = true
}

// GetElementById searches the subtree rooted at e for an element with the
// given id, in depth-first tree order. It returns nil when absent.
func (e *Element) GetElementById(id string) *Element {
	if e.id == id {
		return e
	}
	for _, child := range e.children {
		if found := child.GetElementById(id); found != nil {
			return found
		}
	}
	return nil
}

// GetElementsByTagName collects, in tree order, every descendant with the
// given tag name.
func (e *Element) GetElementsByTagName(tag string) []*Element {
	var out []*Element
	e.eachDescendant(func(el *Element) {
		if el.tag == tag {
			out = append(out, el)
		}
	})
	return out
}

// GetElementsByClassName collects, in tree order, every descendant with the
// given class set.
func (e *Element) GetElementsByClassName(class string) []*Element {
	var out []*Element
	e.eachDescendant(func(el *Element) {
		if el.IsClassSet(class) {
			out = append(out, el)
		}
	})
	return out
}

func (e *Element) eachDescendant(fn func(*Element)) {
	for _, child := range e.children {
		fn(child)
		child.eachDescendant(fn)
	}
}

// Clone returns a deep copy of the subtree rooted at e: tag, id, classes,
// pseudo-classes, attributes and local properties are copied; derived state
// (boxes, transforms, animations, listeners) is not.
func (e *Element) Clone() *Element {
	clone := NewElement(e.tag)
	clone.id = e.id
	clone.classes = append([]string(nil), e.classes...)
	for k, v := range e.pseudoClasses {
		clone.pseudoClasses[k] = v
	}
	for k, v := range e.attributes {
		clone.attributes[k] = v
	}
	for k, v := range e.localProperties {
		clone.localProperties[k] = v
	}
	clone.behavior = e.behavior
	for _, child := range e.children {
		clone.AppendChild(child.Clone())
	}
	return clone
}
