package encoding

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Errors returned by the codec and Sealer.
var (
	ErrInvalidFormat    = errors.New("encoding: invalid data format")
	ErrSignatureInvalid = errors.New("encoding: signature verification failed")
	ErrDecryptFailed    = errors.New("encoding: decryption failed")
	ErrUnknownFormat    = errors.New("encoding: unknown format")
)

// Format is a serialization format for render contexts.
type Format string

// Supported formats.
const (
	JSON    Format = "json"
	YAML    Format = "yaml"
	MsgPack Format = "msgpack"
)

// ParseFormat accepts a format name or a file extension (".yml", "mp", ...).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "msgpack", "mp", "mpk":
		return MsgPack, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Marshal serializes data in format f.
func Marshal(f Format, data map[string]any) ([]byte, error) {
	switch f {
	case JSON:
		return json.Marshal(data)
	case YAML:
		return yaml.Marshal(data)
	case MsgPack:
		return msgpack.Marshal(data)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Unmarshal parses data in format f. Empty input yields an empty map.
func Unmarshal(f Format, b []byte) (map[string]any, error) {
	data := map[string]any{}
	if len(strings.TrimSpace(string(b))) == 0 {
		return data, nil
	}

	var err error
	switch f {
	case JSON:
		err = json.Unmarshal(b, &data)
	case YAML:
		err = yaml.Unmarshal(b, &data)
	case MsgPack:
		err = msgpack.Unmarshal(b, &data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}

// ReadFile reads a context file, choosing the format from its extension.
func ReadFile(path string) (map[string]any, error) {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Unmarshal(f, b)
}
