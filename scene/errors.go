package scene

import "fmt"

// TreeError represents a recoverable scene graph condition with a name and
// message. No condition in this package is fatal; errors communicate at the
// API boundary and never cross the Update/Render frame boundary.
type TreeError struct {
	Name    string
	Message string
}

func (e *TreeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// ErrNotFound creates a NotFoundError for remove/replace of a non-child.
func ErrNotFound(message string) *TreeError {
	return &TreeError{Name: "NotFoundError", Message: message}
}

// ErrInvalidProperty creates an InvalidPropertyError for an unparsable
// property assignment.
func ErrInvalidProperty(message string) *TreeError {
	return &TreeError{Name: "InvalidPropertyError", Message: message}
}

// ErrNoActiveAnimation creates a NoActiveAnimationError for a key added to a
// property with no running animation.
func ErrNoActiveAnimation(message string) *TreeError {
	return &TreeError{Name: "NoActiveAnimationError", Message: message}
}
