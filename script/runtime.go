// Package script exposes the document and element API to scripts through
// the goja JavaScript engine (pure Go ES5.1+ implementation).
package script

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/AYColumbia/quill/scene"
)

// Runtime wraps a goja runtime bound to one document. Scripts see a
// `document` global with query and factory methods; elements returned from
// it carry the mutation, style and animation API.
type Runtime struct {
	vm       *goja.Runtime
	document *scene.Document
	binder   *binder
	onError  func(error)
}

// NewRuntime creates a runtime bound to the given document.
func NewRuntime(document *scene.Document) *Runtime {
	r := &Runtime{
		vm:       goja.New(),
		document: document,
	}
	r.binder = newBinder(r.vm, document)
	r.vm.Set("document", r.binder.documentObject())
	return r
}

// VM returns the underlying goja runtime.
func (r *Runtime) VM() *goja.Runtime {
	return r.vm
}

// SetOnError sets a callback invoked for script errors.
func (r *Runtime) SetOnError(handler func(error)) {
	r.onError = handler
}

// Execute runs a script and returns its result.
func (r *Runtime) Execute(code string) (result goja.Value, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("script execution panic: %v", p)
			if r.onError != nil {
				r.onError(err)
			}
		}
	}()

	result, err = r.vm.RunString(code)
	if err != nil && r.onError != nil {
		r.onError(err)
	}
	return result, err
}
