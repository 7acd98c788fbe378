package cartoerr

import (
	"strings"
	"testing"
)

func TestInvalidErrorMessage(t *testing.T) {
	err := Invalid("mark", "triangle(bad)", "unrecognized function")
	msg := err.Error()
	if !strings.Contains(msg, "mark") || !strings.Contains(msg, "triangle(bad)") || !strings.Contains(msg, "unrecognized function") {
		t.Fatalf("expected message to name property, value, and message, got %q", msg)
	}
}

func TestTranslationErrorWithoutPropertyUsesBareMessage(t *testing.T) {
	err := &TranslationError{Kind: InvalidValueShape, Message: "something went wrong"}
	if got := err.Error(); got != "something went wrong" {
		t.Fatalf("got %q", got)
	}
}
