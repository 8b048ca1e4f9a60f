package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tonylturner/lsaddr/internal/xgt"
)

func TestUserFriendlyError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      UserFriendlyError
		contains []string
	}{
		{
			name:     "message only",
			err:      UserFriendlyError{Message: "something broke"},
			contains: []string{"something broke"},
		},
		{
			name: "all fields",
			err: UserFriendlyError{
				Message: "parse failed",
				Reason:  "bad prefix",
				Hint:    "use %M",
				Try:     "lsaddr validate MX1",
				Err:     fmt.Errorf("bad address"),
			},
			contains: []string{"parse failed", "Reason: bad prefix", "Hint: use %M", "Try: lsaddr validate MX1", "Details: bad address"},
		},
		{
			name: "no reason",
			err: UserFriendlyError{
				Message: "failed",
				Hint:    "hint here",
			},
			contains: []string{"failed", "Hint: hint here"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("Error() = %q, want to contain %q", msg, s)
				}
			}
		})
	}
}

func TestUserFriendlyError_ErrorOmitsEmptyFields(t *testing.T) {
	err := UserFriendlyError{Message: "msg"}
	msg := err.Error()
	if strings.Contains(msg, "Reason:") || strings.Contains(msg, "Hint:") || strings.Contains(msg, "Try:") || strings.Contains(msg, "Details:") {
		t.Errorf("Error() = %q, should not contain empty fields", msg)
	}
}

func TestUserFriendlyError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("root cause")
	err := UserFriendlyError{Message: "wrapper", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("Unwrap should return the inner error")
	}

	var nilErr UserFriendlyError
	if nilErr.Unwrap() != nil {
		t.Error("Unwrap on nil Err should return nil")
	}
}

func TestWrapAddressError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if WrapAddressError(nil, "MX1") != nil {
			t.Error("expected nil")
		}
	})

	tests := []struct {
		input    string
		reason   string
		sentinel error
	}{
		{"Z10", "start with", xgt.ErrMalformedPrefix},
		{"MXW10", "exactly one", xgt.ErrAmbiguousType},
		{"MB1,2,3", "one comma", xgt.ErrMalformedSegments},
		{"MXQ", "not an integer", xgt.ErrInvalidOffset},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			_, parseErr := xgt.Validate(tc.input)
			err := WrapAddressError(parseErr, tc.input)
			ufe := err.(UserFriendlyError)
			if !strings.Contains(ufe.Reason, tc.reason) {
				t.Errorf("reason = %q, want to contain %q", ufe.Reason, tc.reason)
			}
			if !strings.Contains(ufe.Message, tc.input) {
				t.Errorf("message should contain input, got %q", ufe.Message)
			}
			if !errors.Is(err, tc.sentinel) {
				t.Errorf("wrapped error should still match %v", tc.sentinel)
			}
		})
	}

	t.Run("generic error", func(t *testing.T) {
		err := WrapAddressError(fmt.Errorf("something else"), "MX1")
		ufe := err.(UserFriendlyError)
		if ufe.Reason != "Address could not be parsed" {
			t.Errorf("unexpected reason: %q", ufe.Reason)
		}
	})
}

func TestWrapConfigError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		if WrapConfigError(nil, "lsaddr.yaml") != nil {
			t.Error("expected nil")
		}
	})

	t.Run("wraps config error", func(t *testing.T) {
		err := WrapConfigError(fmt.Errorf("invalid yaml"), "lsaddr.yaml")
		ufe := err.(UserFriendlyError)
		if !strings.Contains(ufe.Message, "lsaddr.yaml") {
			t.Errorf("message should contain config path, got %q", ufe.Message)
		}
		if ufe.Reason != "invalid yaml" {
			t.Errorf("reason should be inner error message, got %q", ufe.Reason)
		}
		if !strings.Contains(ufe.Try, "--config lsaddr.yaml") {
			t.Errorf("try should reference config path, got %q", ufe.Try)
		}
	})
}

func TestWrapModelError(t *testing.T) {
	if WrapModelError(nil, "X") != nil {
		t.Error("expected nil")
	}
	err := WrapModelError(fmt.Errorf("unknown controller model"), "XGZ")
	ufe := err.(UserFriendlyError)
	if !strings.Contains(ufe.Message, "XGZ") || ufe.Try != "lsaddr models" {
		t.Errorf("unexpected wrap: %+v", ufe)
	}
}
