package scene

import (
	"strings"
	"testing"

	"github.com/AYColumbia/quill/property"
	"github.com/AYColumbia/quill/render"
)

type capturingSystem struct {
	messages []string
}

func (s *capturingSystem) ElapsedTime() float64 { return 0 }

func (s *capturingSystem) LogMessage(level render.LogLevel, message string) bool {
	s.messages = append(s.messages, message)
	return true
}

func (s *capturingSystem) TranslateString(input string) (string, int) { return input, 0 }

func (s *capturingSystem) contains(t *testing.T, fragment string) {
	t.Helper()
	for _, m := range s.messages {
		if strings.Contains(m, fragment) {
			return
		}
	}
	t.Errorf("expected a logged message containing %q, got %v", fragment, s.messages)
}

func TestTreeErrorFormat(t *testing.T) {
	err := ErrNotFound("no such child")
	if got := err.Error(); got != "NotFoundError: no such child" {
		t.Errorf("expected formatted name and message, got %q", got)
	}
}

func TestInvalidPropertyIsReported(t *testing.T) {
	doc := NewDocument("body")
	sys := &capturingSystem{}
	doc.SetSystemInterface(sys)

	if doc.Root().SetProperty("width", "bogus") {
		t.Fatalf("expected SetProperty to reject an unparsable value")
	}
	sys.contains(t, "InvalidPropertyError")
}

func TestUnknownPropertyIsReported(t *testing.T) {
	doc := NewDocument("body")
	sys := &capturingSystem{}
	doc.SetSystemInterface(sys)

	if doc.Root().SetProperty("no-such-property", "1px") {
		t.Fatalf("expected SetProperty to reject an unknown property")
	}
	sys.contains(t, "InvalidPropertyError")
}

func TestNoActiveAnimationIsReported(t *testing.T) {
	doc := NewDocument("body")
	sys := &capturingSystem{}
	doc.SetSystemInterface(sys)

	if doc.Root().AddAnimationKey("width", property.Px(10), 1, property.Tween{}) {
		t.Fatalf("expected AddAnimationKey without an animation to fail")
	}
	sys.contains(t, "NoActiveAnimationError")
}

func TestRemoveNonChildIsReported(t *testing.T) {
	doc := NewDocument("body")
	sys := &capturingSystem{}
	doc.SetSystemInterface(sys)

	stray := NewElement("div")
	if doc.Root().RemoveChild(stray) != nil {
		t.Fatalf("expected removing a non-child to return nil")
	}
	sys.contains(t, "NotFoundError")
}
