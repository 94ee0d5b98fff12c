package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeInvalidInput, "bad document"),
			want: "INVALID_INPUT: bad document",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeArtifactWrite, stderrors.New("disk full"), "write /tmp/x.svg"),
			want: "ARTIFACT_WRITE: write /tmp/x.svg: disk full",
		},
		{
			name: "formatted message",
			err:  New(ErrCodeInvalidConfig, "unknown converter %q", "gimp"),
			want: `INVALID_CONFIG: unknown converter "gimp"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeNoConverter, "no converter")

	if !Is(err, ErrCodeNoConverter) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeRenderFailed) {
		t.Error("Is() = true for non-matching code")
	}
	if Is(stderrors.New("plain"), ErrCodeNoConverter) {
		t.Error("Is() = true for a plain error")
	}

	// Code survives wrapping with %w.
	wrapped := fmt.Errorf("context: %w", err)
	if !Is(wrapped, ErrCodeNoConverter) {
		t.Error("Is() = false after fmt.Errorf wrapping")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeConvertFailed, "boom")); got != ErrCodeConvertFailed {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeConvertFailed)
	}
	if got := GetCode(stderrors.New("plain")); got != ErrCodeInternal {
		t.Errorf("GetCode(plain) = %q, want %q", got, ErrCodeInternal)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("spawn failed")
	err := Wrap(ErrCodeConvertFailed, cause, "inkscape")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is() does not reach the cause")
	}
	if !strings.Contains(err.Error(), "spawn failed") {
		t.Error("cause missing from message")
	}
}
