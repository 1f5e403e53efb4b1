package scene

// Event dispatch. Dispatch is synchronous and may itself mutate the tree:
// the ancestor chain is snapshotted before delivery begins, and a target
// removed mid-bubble simply stops receiving while the remaining captured
// ancestors still do.

// Event carries a dispatched event through its phases.
type Event struct {
	Type          string
	TargetElement *Element
	// CurrentElement is the element whose listeners are being invoked.
	CurrentElement *Element
	Parameters     map[string]interface{}

	interrupted bool
}

// StopPropagation prevents the event from reaching further elements. It has
// no effect on non-interruptible events.
func (ev *Event) StopPropagation() {
	ev.interrupted = true
}

// EventListener receives dispatched events.
type EventListener interface {
	ProcessEvent(ev *Event)
}

// EventListenerFunc adapts a function to the EventListener interface. The
// method is on the pointer so two adapters stay distinguishable, which
// RemoveEventListener relies on.
type EventListenerFunc func(ev *Event)

// ProcessEvent implements EventListener.
func (f *EventListenerFunc) ProcessEvent(ev *Event) {
	(*f)(ev)
}

type listenerEntry struct {
	listener EventListener
	capture  bool
}

// AddEventListener registers a listener for an event type, in the capture
// phase when inCapturePhase is set.
func (e *Element) AddEventListener(eventType string, listener EventListener, inCapturePhase bool) {
	if e.listeners == nil {
		e.listeners = make(map[string][]listenerEntry)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listenerEntry{listener: listener, capture: inCapturePhase})
}

// RemoveEventListener removes a previously registered listener.
func (e *Element) RemoveEventListener(eventType string, listener EventListener, inCapturePhase bool) {
	entries := e.listeners[eventType]
	for i, entry := range entries {
		if entry.listener == listener && entry.capture == inCapturePhase {
			e.listeners[eventType] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// DispatchEvent delivers an event: capture phase from the root down to the
// target, then the target, then, when bubbles is set, the bubble phase
// back up. It returns false when propagation was stopped. The ancestor
// chain is captured before delivery; listeners mutating the tree cannot
// corrupt the walk.
func (e *Element) DispatchEvent(eventType string, parameters map[string]interface{}, interruptible, bubbles bool) bool {
	ev := &Event{
		Type:          eventType,
		TargetElement: e,
		Parameters:    parameters,
	}

	// Snapshot: target first, then ancestors rootward.
	chain := []*Element{e}
	for cur := e.parent; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}

	deliver := func(target *Element, capture bool) bool {
		ev.CurrentElement = target
		for _, entry := range snapshotListeners(target, eventType) {
			if entry.capture != capture {
				continue
			}
			entry.listener.ProcessEvent(ev)
			if interruptible && ev.interrupted {
				return false
			}
		}
		return true
	}

	// Capture phase, root towards target.
	for i := len(chain) - 1; i >= 1; i-- {
		if !deliver(chain[i], true) {
			return false
		}
	}
	// Target phase.
	if !deliver(e, true) || !deliver(e, false) {
		return false
	}
	e.processDefaultAction(ev)
	if !bubbles {
		return true
	}
	// Bubble phase, target towards root. Elements detached by an earlier
	// listener were captured and still receive the event.
	for i := 1; i < len(chain); i++ {
		if !deliver(chain[i], false) {
			return false
		}
	}
	return true
}

// snapshotListeners copies the listener list so removal during dispatch
// cannot skip or repeat deliveries.
func snapshotListeners(e *Element, eventType string) []listenerEntry {
	entries := e.listeners[eventType]
	if len(entries) == 0 {
		return nil
	}
	return append([]listenerEntry(nil), entries...)
}

// processDefaultAction applies the built-in reaction to an event after the
// target phase.
func (e *Element) processDefaultAction(ev *Event) {
	switch ev.Type {
	case "click":
		e.Focus()
	}
}

// Focus gives the element the "focus" pseudo-class, removing it from the
// previously focused element of the document.
func (e *Element) Focus() bool {
	doc := e.ownerDocument
	if doc == nil {
		return false
	}
	if doc.focus == e {
		return true
	}
	if doc.focus != nil {
		doc.focus.SetPseudoClass("focus", false)
	}
	doc.focus = e
	e.SetPseudoClass("focus", true)
	return true
}

// Blur removes focus from the element.
func (e *Element) Blur() {
	doc := e.ownerDocument
	if doc == nil || doc.focus != e {
		return
	}
	doc.focus = nil
	e.SetPseudoClass("focus", false)
}

// Click synthesizes a click event on the element.
func (e *Element) Click() {
	e.DispatchEvent("click", nil, true, true)
}
