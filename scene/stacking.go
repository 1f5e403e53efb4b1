package scene

import "sort"

// Stacking contexts. An element either delegates its paint order to the
// nearest context-owning ancestor or owns a local context: forced, or
// implied by a non-auto z-index, a transform or perspective, or partial
// opacity. A context's paint list is rebuilt only when dirty, and building
// never descends into a child context's internals; the child contributes
// as one unit.

// GetZIndex returns the element's z-index. Auto computes to zero.
func (e *Element) GetZIndex() float64 {
	return e.zIndex
}

// ForceLocalStackingContext makes the element own a local stacking context
// regardless of its properties.
func (e *Element) ForceLocalStackingContext() {
	e.localStackingContextForced = true
	e.setLocalStackingContext(true)
}

// refreshStackingState re-derives the z-index and context-ownership flags
// from the computed values.
func (e *Element) refreshStackingState() {
	z, explicit := e.computed.ZIndex()
	if z != e.zIndex {
		e.zIndex = z
		e.dirtyAncestorStackingContext()
	}

	owns := e.localStackingContextForced ||
		e.parent == nil ||
		explicit ||
		e.computed.Opacity() < 1 ||
		e.computed.HasLocalTransform() ||
		e.computed.HasLocalPerspective() ||
		e.computed.Position() == "fixed"
	e.setLocalStackingContext(owns)
}

func (e *Element) setLocalStackingContext(owns bool) {
	if e.localStackingContext == owns {
		return
	}
	e.localStackingContext = owns
	if !owns {
		e.stackingContext = nil
	}
	// Ownership changes reshuffle both this context and the one above it.
	e.stackingContextDirty = owns
	e.dirtyAncestorStackingContext()
}

// DirtyStackingContext marks the nearest context-owning element's paint
// list stale, starting at the element itself: a mutation under a context
// owner lands in that owner's list, not an ancestor's. The cost of a
// mutation stays bounded to the affected context.
func (e *Element) DirtyStackingContext() {
	for el := e; el != nil; el = el.parent {
		if el.localStackingContext {
			el.stackingContextDirty = true
			return
		}
	}
}

// dirtyAncestorStackingContext marks the context the element itself paints
// in, which is always above it. Used when the element's own stacking inputs
// change, since those reposition it within the ancestor's list even when the
// element owns a context of its own.
func (e *Element) dirtyAncestorStackingContext() {
	for ancestor := e.parent; ancestor != nil; ancestor = ancestor.parent {
		if ancestor.localStackingContext {
			ancestor.stackingContextDirty = true
			return
		}
	}
}

type stackingEntry struct {
	element *Element
	z       float64
	// rank orders entries sharing a z value: the context owner itself (-1),
	// then auto z-index elements (0), then explicit z-index elements (1).
	// Tree order breaks remaining ties through the stable sort.
	rank int
}

// BuildStackingContext rebuilds the element's paint list when dirty. The
// list holds the element itself and, in paint order, every descendant that
// does not own a context, plus owning descendants as single units. Building
// is idempotent: with no input change, rebuilding yields the same order.
func (e *Element) BuildStackingContext() {
	if !e.stackingContextDirty {
		return
	}
	e.stackingContextDirty = false
	if !e.localStackingContext {
		e.stackingContext = nil
		return
	}

	entries := []stackingEntry{{element: e, rank: -1}}
	e.collectStackingEntries(&entries)

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].z != entries[j].z {
			return entries[i].z < entries[j].z
		}
		return entries[i].rank < entries[j].rank
	})

	e.stackingContext = e.stackingContext[:0]
	for _, entry := range entries {
		e.stackingContext = append(e.stackingContext, entry.element)
	}
}

// collectStackingEntries gathers paintable descendants in tree order.
// Children owning their own context are added as units and not descended
// into; everyone else contributes in place.
func (e *Element) collectStackingEntries(entries *[]stackingEntry) {
	for _, child := range e.children {
		if !child.visible {
			continue
		}
		entry := stackingEntry{element: child}
		if _, explicit := child.ComputedValues().ZIndex(); explicit {
			entry.z = child.zIndex
			entry.rank = 1
		}
		*entries = append(*entries, entry)
		if !child.localStackingContext {
			child.collectStackingEntries(entries)
		}
	}
}

// StackingContext returns the element's current paint list, or nil when the
// element delegates to an ancestor's context. The slice must not be
// mutated.
func (e *Element) StackingContext() []*Element {
	return e.stackingContext
}
