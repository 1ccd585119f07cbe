package constant

import "testing"

func TestResolveColour(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOk bool
	}{
		{name: "known colour", input: "teal", want: "rgb(0,128,128)", wantOk: true},
		{name: "case insensitive", input: "TEAL", want: "rgb(0,128,128)", wantOk: true},
		{name: "mixed case", input: "Yellow", want: "rgb(255,255,0)", wantOk: true},
		{name: "unknown colour", input: "magenta", wantOk: false},
		{name: "empty", input: "", wantOk: false},
		{name: "rgb value is not a name", input: "rgb(0,128,128)", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveColour(tt.input)
			if ok != tt.wantOk {
				t.Fatalf("ResolveColour(%q) ok = %v, want %v", tt.input, ok, tt.wantOk)
			}
			if got != tt.want {
				t.Errorf("ResolveColour(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPaletteSize(t *testing.T) {
	if len(noteColours) != 13 {
		t.Errorf("palette has %d colours, want 13", len(noteColours))
	}
}
