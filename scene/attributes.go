package scene

import (
	"sort"
	"strings"
)

// Class, pseudo-class and attribute state. Mutation marks the element's
// style dirty; the cascade itself is recomputed once, lazily, at the next
// Update, so batched toggles cost a single recomputation.

// SetClass adds or removes a class name.
func (e *Element) SetClass(name string, activate bool) {
	i := -1
	for j, c := range e.classes {
		if c == name {
			i = j
			break
		}
	}
	if activate == (i >= 0) {
		return
	}
	if activate {
		e.classes = append(e.classes, name)
	} else {
		e.classes = append(e.classes[:i], e.classes[i+1:]...)
	}
	e.DirtyStyle()
}

// IsClassSet reports whether the class is set on the element.
func (e *Element) IsClassSet(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

// SetClassNames replaces the class list with the space-separated names.
func (e *Element) SetClassNames(names string) {
	e.classes = strings.Fields(names)
	e.DirtyStyle()
}

// ClassNames returns the class list as a space-separated string.
func (e *Element) ClassNames() string {
	return strings.Join(e.classes, " ")
}

// SetPseudoClass activates or deactivates a pseudo-class such as "hover".
func (e *Element) SetPseudoClass(name string, activate bool) {
	if e.pseudoClasses[name] == activate {
		return
	}
	if activate {
		e.pseudoClasses[name] = true
	} else {
		delete(e.pseudoClasses, name)
	}
	e.DirtyStyle()
}

// IsPseudoClassSet reports whether the pseudo-class is active.
func (e *Element) IsPseudoClassSet(name string) bool {
	return e.pseudoClasses[name]
}

// ArePseudoClassesSet reports whether every listed pseudo-class is active.
func (e *Element) ArePseudoClassesSet(names []string) bool {
	for _, name := range names {
		if !e.pseudoClasses[name] {
			return false
		}
	}
	return true
}

// SetAttribute sets a single attribute. Equivalent to a one-entry
// SetAttributes batch.
func (e *Element) SetAttribute(name, value string) {
	e.SetAttributes(map[string]string{name: value})
}

// SetAttributes applies a batch of attribute assignments and fires a single
// OnAttributeChange notification carrying the previous values (empty string
// for attributes that were absent).
func (e *Element) SetAttributes(attributes map[string]string) {
	changed := make(map[string]string, len(attributes))
	for name, value := range attributes {
		old, had := e.attributes[name]
		if had && old == value {
			continue
		}
		changed[name] = old
		e.attributes[name] = value
	}
	if len(changed) == 0 {
		return
	}

	if _, ok := changed["id"]; ok {
		e.id = e.attributes["id"]
	}
	if _, ok := changed["class"]; ok {
		e.classes = strings.Fields(e.attributes["class"])
	}

	e.DirtyStyle()
	if e.behavior != nil {
		e.behavior.OnAttributeChange(e, changed)
	}
}

// Attribute returns the attribute's value. The second return value is false
// when the attribute is absent.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attributes[name]
	return v, ok
}

// HasAttribute reports whether the attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.attributes[name]
	return ok
}

// AttributeNames returns the attribute names in sorted order.
func (e *Element) AttributeNames() []string {
	names := make([]string, 0, len(e.attributes))
	for name := range e.attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RemoveAttribute removes the attribute, notifying as a batch of one.
func (e *Element) RemoveAttribute(name string) {
	old, ok := e.attributes[name]
	if !ok {
		return
	}
	delete(e.attributes, name)
	switch name {
	case "id":
		e.id = ""
	case "class":
		e.classes = nil
	}

	e.DirtyStyle()
	if e.behavior != nil {
		e.behavior.OnAttributeChange(e, map[string]string{name: old})
	}
}
