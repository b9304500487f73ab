package render

import "testing"

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"svg", FormatSVG, false},
		{"PNG", FormatPNG, false},
		{" dot ", FormatDOT, false},
		{"pdf", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"out/net.svg", FormatSVG, true},
		{"net.PNG", FormatPNG, true},
		{"tree.gv", FormatDOT, true},
		{"net.json", "", false},
	}
	for _, tt := range tests {
		got, ok := FormatFromPath(tt.path)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, ok)
		}
	}
}

func TestContentType(t *testing.T) {
	if FormatSVG.ContentType() != "image/svg+xml" {
		t.Error("svg content type")
	}
	if FormatPNG.ContentType() != "image/png" {
		t.Error("png content type")
	}
	if FormatDOT.ContentType() != "text/vnd.graphviz" {
		t.Error("dot content type")
	}
}
