package elcmp

import "errors"

// Sentinel errors attached to render and load diagnostics.
var (
	ErrInvalidComponent = errors.New("elcmp: component has no render capability")
	ErrNotFound         = errors.New("elcmp: component not found")
	ErrDepthExceeded    = errors.New("elcmp: maximum render depth exceeded")
	ErrLoadFailed       = errors.New("elcmp: component load failed")
	ErrRenderPanic      = errors.New("elcmp: component render panicked")
	ErrInvalidToken     = errors.New("elcmp: invalid context token")
)

// IsNotFound checks if err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsLoadError checks if err is a module load failure.
func IsLoadError(err error) bool {
	return errors.Is(err, ErrLoadFailed)
}

// IsRenderError checks if err came from a render that did not complete.
func IsRenderError(err error) bool {
	return errors.Is(err, ErrRenderPanic) || errors.Is(err, ErrDepthExceeded)
}

// IsTokenError checks if err came from a tampered or malformed context token.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}
