// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/capstyle/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "not_found_error",
			code:    errors.ErrNotFound,
			message: "terminfo entry not found",
			wantStr: "[NOT_FOUND] terminfo entry not found",
		},
		{
			name:    "param_type_error",
			code:    errors.ErrParamType,
			message: "an integer is required",
			wantStr: "[PARAM_TYPE] an integer is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		format  string
		args    []interface{}
		wantMsg string
	}{
		{
			name:    "format_with_string",
			code:    errors.ErrInvalidInput,
			format:  "invalid backend: %s",
			args:    []interface{}{"vt52"},
			wantMsg: "invalid backend: vt52",
		},
		{
			name:    "format_with_multiple_args",
			code:    errors.ErrParamType,
			format:  "argument %d has type %T",
			args:    []interface{}{2, "x"},
			wantMsg: "argument 2 has type string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.Newf(tt.code, tt.format, tt.args...)

			if err.Message != tt.wantMsg {
				t.Errorf("Newf() message = %q, want %q", err.Message, tt.wantMsg)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		if err.Code != errors.ErrInternal {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrInternal)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[INTERNAL] internal error: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrCapabilityMisuse, "bad call").
		WithDetail("capability", "bright_rde").
		WithDetail("args", []interface{}{"text"})

	if err.Details["capability"] != "bright_rde" {
		t.Errorf("WithDetail() capability = %v, want %v", err.Details["capability"], "bright_rde")
	}

	if _, ok := err.Details["args"]; !ok {
		t.Error("WithDetail() should record args")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrParamType, "error 1")
	err2 := errors.New(errors.ErrParamType, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with CapstyleError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrTerminfoLoad, "no database"),
			code:     errors.ErrTerminfoLoad,
			expected: true,
		},
		{
			name:     "non_capstyle_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{
			name:     "capstyle_error",
			err:      errors.New(errors.ErrSerialize, "bad envelope"),
			expected: errors.ErrSerialize,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			expected: errors.ErrUnknown,
		},
		{
			name:     "nil_error",
			err:      nil,
			expected: errors.ErrUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorDetails(t *testing.T) {
	err := errors.New(errors.ErrParamType, "bad").WithDetail("index", 1)
	wrapped := errors.Wrap(err, errors.ErrCapabilityMisuse, "misuse")

	if got := errors.GetErrorDetails(wrapped); got == nil {
		t.Error("GetErrorDetails() should return the outer details map")
	}
	if got := errors.GetErrorDetails(stderrors.New("plain")); got != nil {
		t.Errorf("GetErrorDetails() = %v, want nil", got)
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	typeErr := errors.Wrap(rootCause, errors.ErrParamType, "an integer is required")
	misuseErr := errors.Wrap(typeErr, errors.ErrCapabilityMisuse, "capability called with text")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(misuseErr, errors.ErrCapabilityMisuse) {
			t.Error("Top level should have ErrCapabilityMisuse code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var capErr *errors.CapstyleError
		if stderrors.As(misuseErr.Unwrap(), &capErr) {
			if !errors.IsErrorCode(capErr, errors.ErrParamType) {
				t.Error("Middle error should have ErrParamType code")
			}
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(misuseErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
