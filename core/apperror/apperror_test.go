package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindLoad, "LoadError"},
		{KindOCREngine, "OcrEngineError"},
		{KindSave, "SaveError"},
		{KindState, "StateError"},
		{Kind(42), "Unknown(42)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("Kind.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestError_Message(t *testing.T) {
	err := Load("open scan.png", errors.New("no such file"))
	want := "LoadError: open scan.png: no such file"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	err = Save("", errors.New("disk full"))
	want = "SaveError: disk full"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestError_Unwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := fmt.Errorf("outer: %w", OCREngine("recognize", sentinel))

	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should find the wrapped sentinel")
	}
	if !Is(err, KindOCREngine) {
		t.Error("Is(err, KindOCREngine) should be true")
	}
	if Is(err, KindSave) {
		t.Error("Is(err, KindSave) should be false")
	}

	kind, ok := KindOf(err)
	if !ok || kind != KindOCREngine {
		t.Errorf("KindOf() = %v, %v; want OcrEngineError, true", kind, ok)
	}
}

func TestNew_NilErr(t *testing.T) {
	err := State("get tab", nil)
	if err.Err == nil {
		t.Fatal("New should substitute a non-nil error")
	}
}

func TestKindOf_PlainError(t *testing.T) {
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf should report false for non-application errors")
	}
}
