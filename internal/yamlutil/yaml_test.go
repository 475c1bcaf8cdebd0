package yamlutil

import (
	"bytes"
	"errors"
	"testing"
)

func TestUnmarshal(t *testing.T) {
	type doc struct {
		Name  string `yaml:"name"`
		Count int    `yaml:"count"`
	}

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{"nil data", nil, &doc{}, ErrNilData},
		{"empty data", []byte{}, &doc{}, ErrNilData},
		{"nil destination", []byte("name: x"), nil, ErrNilDestination},
		{"too large", bytes.Repeat([]byte("a"), MaxInputSize+1), &doc{}, ErrInputTooLarge},
		{"valid", []byte("name: x\ncount: 2\n"), &doc{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Unmarshal(tt.data, tt.dest)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Unmarshal() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUnmarshalDecodes(t *testing.T) {
	var out struct {
		Keys []string `yaml:"keys"`
	}
	if err := Unmarshal([]byte("keys: [a, b, c]"), &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(out.Keys) != 3 || out.Keys[2] != "c" {
		t.Errorf("Keys = %v", out.Keys)
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	var out map[string]any
	if err := Unmarshal([]byte("a: [unclosed"), &out); err == nil {
		t.Error("Unmarshal() with malformed YAML, want error")
	}
}
