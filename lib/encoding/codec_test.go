package encoding

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", JSON, false},
		{".JSON", JSON, false},
		{".yml", YAML, false},
		{"yaml", YAML, false},
		{"mp", MsgPack, false},
		{"msgpack", MsgPack, false},
		{".toml", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownFormat) {
				t.Errorf("error %v is not ErrUnknownFormat", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnmarshal_YAMLNested(t *testing.T) {
	src := []byte(`
title: Todos
items:
  - title: write tests
    done: true
  - title: ship
    done: false
`)
	data, err := Unmarshal(YAML, src)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if data["title"] != "Todos" {
		t.Errorf("title = %v", data["title"])
	}
	items, ok := data["items"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("items = %#v", data["items"])
	}
	first, ok := items[0].(map[string]any)
	if !ok || first["done"] != true {
		t.Errorf("items[0] = %#v", items[0])
	}
}

func TestUnmarshal_Empty(t *testing.T) {
	for _, f := range []Format{JSON, YAML, MsgPack} {
		data, err := Unmarshal(f, []byte("  \n"))
		if err != nil || data == nil || len(data) != 0 {
			t.Errorf("Unmarshal(%s, blank) = %v, %v; want empty map", f, data, err)
		}
	}
}

func TestUnmarshal_Invalid(t *testing.T) {
	if _, err := Unmarshal(JSON, []byte("{")); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("error = %v, want ErrInvalidFormat", err)
	}
	if _, err := Unmarshal("xml", []byte("<a/>")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("error = %v, want ErrUnknownFormat", err)
	}
}

func TestMarshal_MsgPackIsReadable(t *testing.T) {
	b, err := Marshal(MsgPack, map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	data, err := Unmarshal(MsgPack, b)
	if err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if data["name"] != "ada" {
		t.Errorf("name = %v", data["name"])
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ctx.json")
	if err := os.WriteFile(path, []byte(`{"user":"ada","n":2}`), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if data["user"] != "ada" || data["n"] != 2.0 {
		t.Errorf("ReadFile() = %v", data)
	}

	if _, err := ReadFile(filepath.Join(dir, "ctx.ini")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ReadFile(.ini) error = %v, want ErrUnknownFormat", err)
	}
}
