package filter

import "testing"

func TestModeFor(t *testing.T) {
	tests := []struct {
		format string
		want   Mode
	}{
		{"html", Inline},
		{"epub", Inline},
		{"markdown", Inline},
		{"docx", PNGFile},
		{"pptx", PNGFile},
		{"pdf", SVGFile},
		{"latex", SVGFile},
		{"", SVGFile},
		{"HTML", SVGFile}, // format names are case-sensitive
		{"something-new", SVGFile},
	}

	for _, tt := range tests {
		name := tt.format
		if name == "" {
			name = "(empty)"
		}
		t.Run(name, func(t *testing.T) {
			if got := ModeFor(tt.format); got != tt.want {
				t.Errorf("ModeFor(%q) = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{Inline, "inline"},
		{SVGFile, "svg-file"},
		{PNGFile, "png-file"},
		{Mode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
