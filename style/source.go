// Package style computes the resolved property snapshot of an element: the
// cascade of externally matched declarations, local overrides, and the
// animation overlay, folded with inherited values from the parent snapshot.
// Selector matching itself happens outside this package; the cascade input
// contract is a pre-matched, precedence-ordered declaration list.
package style

import "github.com/AYColumbia/quill/property"

// Declaration binds one property to a parsed value.
type Declaration struct {
	ID    property.ID
	Value property.Value
}

// ElementState is the read-only view of an element the cascade input needs
// for matching. The scene element implements it.
type ElementState interface {
	Tag() string
	Id() string
	IsClassSet(name string) bool
	IsPseudoClassSet(name string) bool
	Attribute(name string) (string, bool)
}

// Source supplies the matched declarations for an element, ordered by
// ascending precedence: when two declarations target the same property, the
// later one wins. Implementations typically wrap a style sheet plus a
// selector matcher.
type Source interface {
	MatchedDeclarations(e ElementState) []Declaration
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(e ElementState) []Declaration

// MatchedDeclarations implements Source.
func (f SourceFunc) MatchedDeclarations(e ElementState) []Declaration {
	return f(e)
}
