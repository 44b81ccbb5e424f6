package badge

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

func TestRemoveLineBreaks(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Test Club", "Test Club"},
		{"Test\nClub", "Test Club"},
		{"Test \r\n\r\n Club\n", "Test Club"},
		{"\n  Chess  \n", "Chess"},
		{"\xff\xfe Club", "\uFFFD Club"},
		{"Kul\xc3b\xfc", "Kul\uFFFDb\uFFFD"},
	}

	for _, tt := range tests {
		if got := removeLineBreaks(tt.in); got != tt.want {
			t.Errorf("removeLineBreaks(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderTextAsPdf(t *testing.T) {
	family, err := LoadFontFamily(testFont(t))
	if err != nil {
		t.Fatalf("LoadFontFamily() error = %v", err)
	}

	layout := DefaultLayout()
	style := TextStyle{FontSize: 32, Color: "#FFFFFF"}
	tr := NewTextRenderer(family, style, layout.Text)

	t.Run("short name keeps the configured size", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "text.pdf")
		size, err := tr.RenderTextAsPdf("Test Club", out)
		if err != nil {
			t.Fatalf("RenderTextAsPdf() error = %v", err)
		}
		if size != style.FontSize {
			t.Errorf("font size = %v, want %v", size, style.FontSize)
		}

		n, err := api.PageCountFile(out)
		if err != nil || n != 1 {
			t.Errorf("PageCountFile() = %d, %v, want 1 page", n, err)
		}
	})

	t.Run("long name shrinks", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "text.pdf")
		size, err := tr.RenderTextAsPdf(strings.Repeat("Extraordinarily Long Club Name ", 12), out)
		if err != nil {
			t.Fatalf("RenderTextAsPdf() error = %v", err)
		}
		if size >= style.FontSize || size < MinFontSize {
			t.Errorf("font size = %v, want between %v and %v", size, MinFontSize, style.FontSize)
		}
	})
}
