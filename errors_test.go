package neuroscan

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := &Error{
		Op:   "Analyzer.Run",
		Kind: KindValidation,
		Err:  ErrInvalidInput,
	}

	msg := err.Error()
	for _, want := range []string{"neuroscan:", "Analyzer.Run", KindValidation} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestErrorFormattingWithContext(t *testing.T) {
	err := &Error{
		Op:      "New",
		Kind:    KindValidation,
		Err:     ErrNotConfigured,
		Context: map[string]any{"missing": "classifier"},
	}

	if !strings.Contains(err.Error(), "classifier") {
		t.Errorf("Error() = %q, context not rendered", err.Error())
	}
}

func TestErrorUnwrap(t *testing.T) {
	err := &Error{Op: "Analyzer.Run", Kind: KindValidation, Err: ErrInvalidInput}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Error should unwrap to its sentinel")
	}
}

func TestErrorIsMatchesByKindAndOp(t *testing.T) {
	err := &Error{Op: "Analyzer.Run", Kind: KindStage, Err: errors.New("boom")}

	if !errors.Is(err, &Error{Kind: KindStage}) {
		t.Error("should match by kind alone")
	}
	if !errors.Is(err, &Error{Op: "Analyzer.Run", Kind: KindStage}) {
		t.Error("should match by op and kind")
	}
	if errors.Is(err, &Error{Kind: KindQuery}) {
		t.Error("should not match a different kind")
	}
	if errors.Is(err, &Error{Op: "New", Kind: KindStage}) {
		t.Error("should not match a different op")
	}
}
