package elcmp

import (
	"errors"
	"fmt"

	"github.com/pthm/elcmp/lib/encoding"
)

// Sealer is an alias for encoding.Sealer for convenience.
type Sealer = encoding.Sealer

// NewSealer creates a sealer for context tokens with the given key.
func NewSealer(key []byte) (*Sealer, error) {
	return encoding.NewSealer(key)
}

// SealContext encodes data as a URL-safe token. Sensitive tokens are
// encrypted; others are signed and readable.
func SealContext(s *Sealer, data Context, sensitive bool) (string, error) {
	return s.Encode(data, sensitive)
}

// OpenContext decodes a token produced by SealContext.
func OpenContext(s *Sealer, token string, sensitive bool) (Context, error) {
	data, err := s.Decode(token, sensitive)
	if err != nil {
		return nil, wrapEncodingError(err)
	}
	return Context(data), nil
}

// wrapEncodingError wraps encoding package errors with ErrInvalidToken.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrInvalidFormat) ||
		errors.Is(err, encoding.ErrSignatureInvalid) ||
		errors.Is(err, encoding.ErrDecryptFailed) {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return err
}
