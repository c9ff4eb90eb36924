package apperrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"
	"time"
)

// TestConfigError verifies ConfigError construction and message formatting.
func TestConfigError(t *testing.T) {
	t.Parallel()
	err := NewConfigError("invalid value %d for flag %q", 42, "terms")
	want := `invalid value 42 for flag "terms"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	var ce ConfigError
	if !errors.As(err, &ce) {
		t.Error("NewConfigError should produce a ConfigError")
	}
}

// TestValidationError verifies the field/message formatting.
func TestValidationError(t *testing.T) {
	t.Parallel()
	err := ValidationError{Field: "count", Message: "must be non-negative"}
	if !strings.Contains(err.Error(), `"count"`) {
		t.Errorf("Error() should name the field, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "must be non-negative") {
		t.Errorf("Error() should contain the message, got %q", err.Error())
	}
}

// TestMismatchError verifies both value and length mismatch messages.
func TestMismatchError(t *testing.T) {
	t.Parallel()
	t.Run("value mismatch", func(t *testing.T) {
		t.Parallel()
		err := MismatchError{
			Index:      4,
			FirstName:  "Proven Recurrence",
			SecondName: "Conjectured Recurrence",
			First:      big.NewInt(75),
			Second:     big.NewInt(73),
		}
		msg := err.Error()
		for _, want := range []string{"a(4)", "75", "73", "Proven Recurrence", "Conjectured Recurrence"} {
			if !strings.Contains(msg, want) {
				t.Errorf("Error() = %q, should contain %q", msg, want)
			}
		}
	})

	t.Run("length mismatch", func(t *testing.T) {
		t.Parallel()
		err := MismatchError{Index: 6, FirstName: "A", SecondName: "B"}
		if !strings.Contains(err.Error(), "count mismatch") {
			t.Errorf("Error() = %q, should report a count mismatch", err.Error())
		}
	})
}

// TestCalculationError verifies cause preservation and unwrapping.
func TestCalculationError(t *testing.T) {
	t.Parallel()
	cause := errors.New("row arithmetic failed")
	err := CalculationError{Cause: cause}

	if err.Error() != cause.Error() {
		t.Errorf("Error() = %q, want %q", err.Error(), cause.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

// TestTimeoutError verifies the timeout message format.
func TestTimeoutError(t *testing.T) {
	t.Parallel()
	err := TimeoutError{Operation: "cross-validation", Limit: 5 * time.Minute}
	want := `operation "cross-validation" timed out after 5m0s`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

// TestWrapError verifies wrapping semantics, including the nil case.
func TestWrapError(t *testing.T) {
	t.Parallel()
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	cause := errors.New("boom")
	wrapped := WrapError(cause, "computing %d terms", 10)
	if !errors.Is(wrapped, cause) {
		t.Error("wrapped error should match its cause with errors.Is")
	}
	if !strings.Contains(wrapped.Error(), "computing 10 terms") {
		t.Errorf("wrapped message missing context: %q", wrapped.Error())
	}
}

// TestIsContextError covers the context error classification helper.
func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("run: %w", context.Canceled), true},
		{"generic error", errors.New("other"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// TestIsMismatchError verifies mismatch detection through wrapping.
func TestIsMismatchError(t *testing.T) {
	t.Parallel()
	m := MismatchError{Index: 2, FirstName: "A", SecondName: "B", First: big.NewInt(3), Second: big.NewInt(4)}
	if !IsMismatchError(m) {
		t.Error("direct MismatchError should be detected")
	}
	if !IsMismatchError(fmt.Errorf("validation failed: %w", m)) {
		t.Error("wrapped MismatchError should be detected")
	}
	if IsMismatchError(errors.New("other")) {
		t.Error("unrelated error should not be detected as mismatch")
	}
}

// TestHandleCalculationError verifies the mapping from error class to exit code.
func TestHandleCalculationError(t *testing.T) {
	t.Parallel()
	mismatch := MismatchError{Index: 1, FirstName: "A", SecondName: "B", First: big.NewInt(1), Second: big.NewInt(2)}
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"nil error", nil, ExitSuccess, ""},
		{"deadline", context.DeadlineExceeded, ExitErrorTimeout, "timed out"},
		{"canceled", context.Canceled, ExitErrorCanceled, "canceled"},
		{"mismatch", mismatch, ExitErrorMismatch, "CRITICAL"},
		{"validation", ValidationError{Field: "count", Message: "negative"}, ExitErrorConfig, "Invalid input"},
		{"generic", errors.New("boom"), ExitErrorGeneric, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			code := HandleCalculationError(tt.err, time.Second, &buf, nil)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if tt.wantMsg != "" && !strings.Contains(buf.String(), tt.wantMsg) {
				t.Errorf("output = %q, should contain %q", buf.String(), tt.wantMsg)
			}
		})
	}
}
