package scene

// Behavior is the capability set a custom element variant may implement.
// Plain elements carry no behavior and pay no dispatch cost; every hook is
// optional and a nil behavior means all hooks are no-ops.
type Behavior interface {
	// OnUpdate is called once per frame during Update, before derived state
	// is refreshed.
	OnUpdate(e *Element)
	// OnRender is called during Render after the element painted itself.
	OnRender(e *Element)
	// OnResize is called when the element's primary box changed size.
	OnResize(e *Element)
	// OnLayout is called when the element's boxes were rebuilt.
	OnLayout(e *Element)
	// OnAttributeChange is called with the batched set of changed attribute
	// names mapped to their previous values (empty string when absent).
	OnAttributeChange(e *Element, changed map[string]string)
	// OnPropertyChange is called with the properties whose computed values
	// changed in the latest style resolution.
	OnPropertyChange(e *Element, changed []PropertyChange)
	// OnChildAdd is called when child is inserted under this element or one
	// of its children (bounded to two ancestor levels).
	OnChildAdd(e, child *Element)
	// OnChildRemove is the removal counterpart of OnChildAdd.
	OnChildRemove(e, child *Element)
}

// NopBehavior implements Behavior with empty hooks. Variants embed it and
// override what they need.
type NopBehavior struct{}

func (NopBehavior) OnUpdate(*Element)                             {}
func (NopBehavior) OnRender(*Element)                             {}
func (NopBehavior) OnResize(*Element)                             {}
func (NopBehavior) OnLayout(*Element)                             {}
func (NopBehavior) OnAttributeChange(*Element, map[string]string) {}
func (NopBehavior) OnPropertyChange(*Element, []PropertyChange)   {}
func (NopBehavior) OnChildAdd(*Element, *Element)                 {}
func (NopBehavior) OnChildRemove(*Element, *Element)              {}
