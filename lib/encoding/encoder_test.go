package encoding

import (
	"errors"
	"strings"
	"testing"
)

func TestNewSealer(t *testing.T) {
	// Should work with any key length (derives 32-byte key)
	if _, err := NewSealer([]byte("short")); err != nil {
		t.Fatalf("NewSealer with short key failed: %v", err)
	}
	if _, err := NewSealer([]byte("this-is-a-32-byte-key-for-aes!!!")); err != nil {
		t.Fatalf("NewSealer with 32-byte key failed: %v", err)
	}
}

func TestSealer_RoundTrip(t *testing.T) {
	s, err := NewSealer([]byte("test-key"))
	if err != nil {
		t.Fatalf("NewSealer failed: %v", err)
	}

	for _, sensitive := range []bool{false, true} {
		token, err := s.Encode(map[string]any{"user": "ada", "admin": true}, sensitive)
		if err != nil {
			t.Fatalf("Encode(sensitive=%v) failed: %v", sensitive, err)
		}
		if strings.Contains(token, "=") || strings.Contains(token, "+") {
			t.Errorf("token %q is not URL-safe", token)
		}

		got, err := s.Decode(token, sensitive)
		if err != nil {
			t.Fatalf("Decode(sensitive=%v) failed: %v", sensitive, err)
		}
		if got["user"] != "ada" || got["admin"] != true {
			t.Errorf("Decode(sensitive=%v) = %v", sensitive, got)
		}
	}
}

func TestSealer_SignedIsVisibleEncryptedIsNot(t *testing.T) {
	s, _ := NewSealer([]byte("test-key"))

	signed, _ := s.Encode(map[string]any{"secret": "hunter2"}, false)
	if !strings.Contains(signed, ".") {
		t.Errorf("signed token %q has no signature part", signed)
	}

	sealed1, _ := s.Encode(map[string]any{"secret": "hunter2"}, true)
	sealed2, _ := s.Encode(map[string]any{"secret": "hunter2"}, true)
	if sealed1 == sealed2 {
		t.Error("encrypted tokens should differ per nonce")
	}
}

func TestSealer_Tampering(t *testing.T) {
	s, _ := NewSealer([]byte("test-key"))
	other, _ := NewSealer([]byte("other-key"))

	signed, _ := s.Encode(map[string]any{"id": "1"}, false)
	sealed, _ := s.Encode(map[string]any{"id": "1"}, true)

	tests := []struct {
		name      string
		token     string
		sensitive bool
		sealer    *Sealer
		want      error
	}{
		{"wrong key signed", signed, false, other, ErrSignatureInvalid},
		{"wrong key encrypted", sealed, true, other, ErrDecryptFailed},
		{"missing signature", strings.Split(signed, ".")[0], false, s, ErrInvalidFormat},
		{"modified payload", "A" + signed[1:], false, s, ErrSignatureInvalid},
		{"short ciphertext", "abc", true, s, ErrDecryptFailed},
		{"not base64", "!!!", true, s, ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.sealer.Decode(tt.token, tt.sensitive)
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode() error = %v, want %v", err, tt.want)
			}
		})
	}
}
