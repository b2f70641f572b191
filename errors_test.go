package elcmp

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrInvalidComponent,
		ErrNotFound,
		ErrDepthExceeded,
		ErrLoadFailed,
		ErrRenderPanic,
		ErrInvalidToken,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("%v should not match %v", err1, err2)
			}
		}
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"direct", ErrNotFound, true},
		{"wrapped", fmt.Errorf("helper %q: %w", "x", ErrNotFound), true},
		{"other", ErrLoadFailed, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.want {
				t.Errorf("IsNotFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsLoadError(t *testing.T) {
	cause := errors.New("syntax error")
	err := fmt.Errorf("%w: %w", ErrLoadFailed, cause)
	if !IsLoadError(err) {
		t.Error("IsLoadError() = false for wrapped load error")
	}
	if !errors.Is(err, cause) {
		t.Error("load error should keep its cause")
	}
	if IsLoadError(ErrNotFound) {
		t.Error("IsLoadError(ErrNotFound) = true")
	}
}

func TestIsRenderError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{fmt.Errorf("%w: boom", ErrRenderPanic), true},
		{ErrDepthExceeded, true},
		{ErrNotFound, false},
	}
	for _, tt := range tests {
		if got := IsRenderError(tt.err); got != tt.want {
			t.Errorf("IsRenderError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestIsTokenError(t *testing.T) {
	if !IsTokenError(fmt.Errorf("%w: bad", ErrInvalidToken)) {
		t.Error("IsTokenError() = false for wrapped token error")
	}
	if IsTokenError(ErrNotFound) {
		t.Error("IsTokenError(ErrNotFound) = true")
	}
}
