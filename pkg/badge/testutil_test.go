package badge

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

var fontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/Library/Fonts/Arial.ttf",
}

// testFont returns a usable TrueType font or skips the test.
func testFont(t *testing.T) string {
	t.Helper()

	if path := os.Getenv("CLUBCERT_TEST_FONT"); path != "" {
		return path
	}
	for _, path := range fontCandidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	t.Skip("no TrueType font available, set CLUBCERT_TEST_FONT to run")
	return ""
}

// writeTemplate draws a plain A4 page, no font needed.
func writeTemplate(t *testing.T, dir string) string {
	t.Helper()

	c := canvas.New(210, 297)
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(color.RGBA{R: 0x00, G: 0x21, B: 0x47, A: 0xff})
	ctx.DrawPath(0, 0, canvas.Rectangle(210, 297))

	path := filepath.Join(dir, "template.pdf")
	if err := renderers.Write(path, c); err != nil {
		t.Fatalf("failed to write template: %v", err)
	}
	return path
}

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 0xd4, G: 0x2a, B: 0x2a, A: 0xff})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}
