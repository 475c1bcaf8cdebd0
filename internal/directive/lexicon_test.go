package directive

import "testing"

func TestIsBlockToken(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "open token",
			input: "{{#note}}",
			want:  true,
		},
		{
			name:  "open token with attributes",
			input: `{{#note title="X" color=red}}`,
			want:  true,
		},
		{
			name:  "close token",
			input: "{{/note}}",
			want:  true,
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  {{#note}}  ",
			want:  true,
		},
		{
			name:  "inline token is not block",
			input: "{{status}}",
			want:  false,
		},
		{
			name:  "token embedded in text",
			input: "before {{#note}}",
			want:  false,
		},
		{
			name:  "empty string",
			input: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlockToken(tt.input); got != tt.want {
				t.Errorf("IsBlockToken(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOpenName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantOK   bool
	}{
		{
			name:     "plain open",
			input:    "{{#note}}",
			wantName: "note",
			wantOK:   true,
		},
		{
			name:     "open with attributes",
			input:    `{{#note title="X"}}`,
			wantName: "note",
			wantOK:   true,
		},
		{
			name:   "close token is not open",
			input:  "{{/note}}",
			wantOK: false,
		},
		{
			name:   "inline token is not open",
			input:  "{{note}}",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := OpenName(tt.input)
			if ok != tt.wantOK || got != tt.wantName {
				t.Errorf("OpenName(%q) = %q, %v, want %q, %v", tt.input, got, ok, tt.wantName, tt.wantOK)
			}
		})
	}
}

func TestIsClose(t *testing.T) {
	tests := []struct {
		name  string
		input string
		match string
		want  bool
	}{
		{
			name:  "exact match",
			input: "{{/note}}",
			match: "note",
			want:  true,
		},
		{
			name:  "different name never closes",
			input: "{{/other}}",
			match: "note",
			want:  false,
		},
		{
			name:  "names are case-sensitive",
			input: "{{/Note}}",
			match: "note",
			want:  false,
		},
		{
			name:  "open token is not a close",
			input: "{{#note}}",
			match: "note",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsClose(tt.input, tt.match); got != tt.want {
				t.Errorf("IsClose(%q, %q) = %v, want %v", tt.input, tt.match, got, tt.want)
			}
		})
	}
}

func TestContainsToken(t *testing.T) {
	if !ContainsToken("before {{status color=green}} after") {
		t.Error("ContainsToken() = false for text with an inline token")
	}
	if ContainsToken("no tokens here {not one}") {
		t.Error("ContainsToken() = true for text without tokens")
	}
}
