package script

import (
	"github.com/dop251/goja"

	"github.com/AYColumbia/quill/property"
	"github.com/AYColumbia/quill/scene"
)

// binder builds the JavaScript objects wrapping documents and elements. The
// same element always maps to the same JS object, so identity comparisons in
// scripts behave as expected.
type binder struct {
	vm       *goja.Runtime
	document *scene.Document
	elements map[*scene.Element]*goja.Object
	// Per element and event type, the installed listeners paired with the
	// script function that registered them, so removeEventListener can match
	// by function identity.
	listeners map[*scene.Element]map[string][]scriptListener
}

type scriptListener struct {
	fn      goja.Value
	capture bool
	wrapper scene.EventListener
}

func newBinder(vm *goja.Runtime, document *scene.Document) *binder {
	return &binder{
		vm:        vm,
		document:  document,
		elements:  make(map[*scene.Element]*goja.Object),
		listeners: make(map[*scene.Element]map[string][]scriptListener),
	}
}

func (b *binder) documentObject() *goja.Object {
	obj := b.vm.NewObject()

	obj.Set("getElementById", func(call goja.FunctionCall) goja.Value {
		e := b.document.GetElementById(call.Argument(0).String())
		return b.wrapElement(e)
	})
	obj.Set("createElement", func(call goja.FunctionCall) goja.Value {
		return b.wrapElement(scene.NewElement(call.Argument(0).String()))
	})
	obj.DefineAccessorProperty("rootElement", b.vm.ToValue(func(goja.FunctionCall) goja.Value {
		return b.wrapElement(b.document.Root())
	}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	return obj
}

// wrapElement returns the cached JS object for an element, creating it on
// first use. A nil element wraps to null.
func (b *binder) wrapElement(e *scene.Element) goja.Value {
	if e == nil {
		return goja.Null()
	}
	if obj, ok := b.elements[e]; ok {
		return obj
	}

	obj := b.vm.NewObject()
	b.elements[e] = obj

	obj.DefineAccessorProperty("tagName",
		b.vm.ToValue(func(goja.FunctionCall) goja.Value { return b.vm.ToValue(e.Tag()) }),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	obj.DefineAccessorProperty("id",
		b.vm.ToValue(func(goja.FunctionCall) goja.Value { return b.vm.ToValue(e.Id()) }),
		b.vm.ToValue(func(call goja.FunctionCall) goja.Value {
			e.SetId(call.Argument(0).String())
			return goja.Undefined()
		}), goja.FLAG_FALSE, goja.FLAG_TRUE)
	obj.DefineAccessorProperty("className",
		b.vm.ToValue(func(goja.FunctionCall) goja.Value { return b.vm.ToValue(e.ClassNames()) }),
		b.vm.ToValue(func(call goja.FunctionCall) goja.Value {
			e.SetClassNames(call.Argument(0).String())
			return goja.Undefined()
		}), goja.FLAG_FALSE, goja.FLAG_TRUE)
	obj.DefineAccessorProperty("parentElement",
		b.vm.ToValue(func(goja.FunctionCall) goja.Value { return b.wrapElement(e.Parent()) }),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	obj.DefineAccessorProperty("childElementCount",
		b.vm.ToValue(func(goja.FunctionCall) goja.Value { return b.vm.ToValue(e.NumChildren()) }),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.Set("child", func(call goja.FunctionCall) goja.Value {
		return b.wrapElement(e.Child(int(call.Argument(0).ToInteger())))
	})
	obj.Set("appendChild", func(call goja.FunctionCall) goja.Value {
		return b.wrapElement(e.AppendChild(b.unwrapElement(call.Argument(0))))
	})
	obj.Set("insertBefore", func(call goja.FunctionCall) goja.Value {
		return b.wrapElement(e.InsertBefore(b.unwrapElement(call.Argument(0)), b.unwrapElement(call.Argument(1))))
	})
	obj.Set("removeChild", func(call goja.FunctionCall) goja.Value {
		return b.wrapElement(e.RemoveChild(b.unwrapElement(call.Argument(0))))
	})
	obj.Set("replaceChild", func(call goja.FunctionCall) goja.Value {
		return b.wrapElement(e.ReplaceChild(b.unwrapElement(call.Argument(0)), b.unwrapElement(call.Argument(1))))
	})

	obj.Set("getAttribute", func(call goja.FunctionCall) goja.Value {
		if v, ok := e.Attribute(call.Argument(0).String()); ok {
			return b.vm.ToValue(v)
		}
		return goja.Null()
	})
	obj.Set("setAttribute", func(call goja.FunctionCall) goja.Value {
		e.SetAttribute(call.Argument(0).String(), call.Argument(1).String())
		return goja.Undefined()
	})
	obj.Set("hasAttribute", func(call goja.FunctionCall) goja.Value {
		return b.vm.ToValue(e.HasAttribute(call.Argument(0).String()))
	})
	obj.Set("removeAttribute", func(call goja.FunctionCall) goja.Value {
		e.RemoveAttribute(call.Argument(0).String())
		return goja.Undefined()
	})

	obj.Set("setClass", func(call goja.FunctionCall) goja.Value {
		e.SetClass(call.Argument(0).String(), call.Argument(1).ToBoolean())
		return goja.Undefined()
	})
	obj.Set("isClassSet", func(call goja.FunctionCall) goja.Value {
		return b.vm.ToValue(e.IsClassSet(call.Argument(0).String()))
	})
	obj.Set("setPseudoClass", func(call goja.FunctionCall) goja.Value {
		e.SetPseudoClass(call.Argument(0).String(), call.Argument(1).ToBoolean())
		return goja.Undefined()
	})

	obj.Set("setProperty", func(call goja.FunctionCall) goja.Value {
		return b.vm.ToValue(e.SetProperty(call.Argument(0).String(), call.Argument(1).String()))
	})
	obj.Set("removeProperty", func(call goja.FunctionCall) goja.Value {
		e.RemoveProperty(call.Argument(0).String())
		return goja.Undefined()
	})
	obj.Set("getProperty", func(call goja.FunctionCall) goja.Value {
		id, ok := property.Lookup(call.Argument(0).String())
		if !ok {
			return goja.Null()
		}
		return b.vm.ToValue(e.GetProperty(id).String())
	})

	obj.Set("animate", func(call goja.FunctionCall) goja.Value {
		name := call.Argument(0).String()
		id, ok := property.Lookup(name)
		if !ok {
			return b.vm.ToValue(false)
		}
		target, ok := property.ParseValue(id, call.Argument(1).String())
		if !ok {
			return b.vm.ToValue(false)
		}
		duration := call.Argument(2).ToFloat()
		tween := property.Tween{}
		if arg := call.Argument(3); !goja.IsUndefined(arg) {
			if parsed, ok := property.ParseTween(arg.String()); ok {
				tween = parsed
			}
		}
		return b.vm.ToValue(e.Animate(name, target, duration, tween, 1, false, 0, nil))
	})

	obj.Set("addEventListener", func(call goja.FunctionCall) goja.Value {
		b.addListener(e, call)
		return goja.Undefined()
	})
	obj.Set("removeEventListener", func(call goja.FunctionCall) goja.Value {
		b.removeListener(e, call)
		return goja.Undefined()
	})
	obj.Set("dispatchEvent", func(call goja.FunctionCall) goja.Value {
		return b.vm.ToValue(e.DispatchEvent(call.Argument(0).String(), nil, true, true))
	})
	obj.Set("click", func(goja.FunctionCall) goja.Value {
		e.Click()
		return goja.Undefined()
	})
	obj.Set("focus", func(goja.FunctionCall) goja.Value {
		return b.vm.ToValue(e.Focus())
	})
	obj.Set("blur", func(goja.FunctionCall) goja.Value {
		e.Blur()
		return goja.Undefined()
	})

	obj.DefineAccessorProperty("offsetWidth",
		b.vm.ToValue(func(goja.FunctionCall) goja.Value { return b.vm.ToValue(e.GetOffsetWidth()) }),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	obj.DefineAccessorProperty("offsetHeight",
		b.vm.ToValue(func(goja.FunctionCall) goja.Value { return b.vm.ToValue(e.GetOffsetHeight()) }),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	obj.DefineAccessorProperty("offsetLeft",
		b.vm.ToValue(func(goja.FunctionCall) goja.Value { return b.vm.ToValue(e.GetOffsetLeft()) }),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	obj.DefineAccessorProperty("offsetTop",
		b.vm.ToValue(func(goja.FunctionCall) goja.Value { return b.vm.ToValue(e.GetOffsetTop()) }),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	obj.DefineAccessorProperty("scrollLeft",
		b.vm.ToValue(func(goja.FunctionCall) goja.Value { return b.vm.ToValue(e.GetScrollLeft()) }),
		b.vm.ToValue(func(call goja.FunctionCall) goja.Value {
			e.SetScrollLeft(call.Argument(0).ToFloat())
			return goja.Undefined()
		}), goja.FLAG_FALSE, goja.FLAG_TRUE)
	obj.DefineAccessorProperty("scrollTop",
		b.vm.ToValue(func(goja.FunctionCall) goja.Value { return b.vm.ToValue(e.GetScrollTop()) }),
		b.vm.ToValue(func(call goja.FunctionCall) goja.Value {
			e.SetScrollTop(call.Argument(0).ToFloat())
			return goja.Undefined()
		}), goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.Set("__native", b.vm.ToValue(elementRef{e}))

	return obj
}

// elementRef carries the native element through the JS object so unwrap can
// recover it.
type elementRef struct {
	element *scene.Element
}

func (b *binder) unwrapElement(v goja.Value) *scene.Element {
	if v == nil || goja.IsNull(v) || goja.IsUndefined(v) {
		return nil
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil
	}
	ref, ok := obj.Get("__native").Export().(elementRef)
	if !ok {
		return nil
	}
	return ref.element
}

func (b *binder) addListener(e *scene.Element, call goja.FunctionCall) {
	eventType := call.Argument(0).String()
	fn, ok := goja.AssertFunction(call.Argument(1))
	if !ok {
		return
	}
	capture := call.Argument(2).ToBoolean()

	fn2 := scene.EventListenerFunc(func(ev *scene.Event) {
		eventObj := b.vm.NewObject()
		eventObj.Set("type", ev.Type)
		eventObj.Set("target", b.wrapElement(ev.TargetElement))
		eventObj.Set("currentTarget", b.wrapElement(ev.CurrentElement))
		eventObj.Set("stopPropagation", func(goja.FunctionCall) goja.Value {
			ev.StopPropagation()
			return goja.Undefined()
		})
		fn(goja.Undefined(), eventObj)
	})
	wrapper := &fn2
	e.AddEventListener(eventType, wrapper, capture)

	if b.listeners[e] == nil {
		b.listeners[e] = make(map[string][]scriptListener)
	}
	b.listeners[e][eventType] = append(b.listeners[e][eventType], scriptListener{
		fn:      call.Argument(1),
		capture: capture,
		wrapper: wrapper,
	})
}

func (b *binder) removeListener(e *scene.Element, call goja.FunctionCall) {
	eventType := call.Argument(0).String()
	fn := call.Argument(1)
	capture := call.Argument(2).ToBoolean()

	registered := b.listeners[e][eventType]
	for i, entry := range registered {
		if entry.capture == capture && entry.fn.StrictEquals(fn) {
			e.RemoveEventListener(eventType, entry.wrapper, capture)
			b.listeners[e][eventType] = append(registered[:i], registered[i+1:]...)
			return
		}
	}
}
