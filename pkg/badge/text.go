package badge

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

/*
 * tdewolff/canvas measures in mm while layouts are in pt, every size is
 * converted with PtToMM right before it reaches the canvas.
 */

const MinFontSize = 1.0

var lineBreaks = regexp.MustCompile(`\s*[\r\n]+\s*`)

type TextRenderer struct {
	fontFamily *canvas.FontFamily
	style      TextStyle
	// Size of the rendered page, in pt
	rect Rect
}

func NewTextRenderer(fontFamily *canvas.FontFamily, style TextStyle, rect Rect) *TextRenderer {
	return &TextRenderer{
		fontFamily: fontFamily,
		style:      style,
		rect:       rect,
	}
}

func (tr *TextRenderer) face(fontSize float64) *canvas.FontFace {
	return tr.fontFamily.Face(fontSize, canvas.Hex(tr.style.Color), canvas.FontRegular, canvas.FontNormal)
}

func (tr *TextRenderer) textBox(text string, fontSize float64) *canvas.Text {
	return canvas.NewTextBox(tr.face(fontSize), text, PtToMM(tr.rect.Width), 0, canvas.Center, canvas.Top, 0.0, 0.0)
}

// fitFontSize returns the largest size, counting down one point at a time
// from the configured size, at which the wrapped text fits the rect.
func (tr *TextRenderer) fitFontSize(text string) float64 {
	widthMM, heightMM := PtToMM(tr.rect.Width), PtToMM(tr.rect.Height)

	fontSize := tr.style.FontSize
	for fontSize > MinFontSize {
		bounds := tr.textBox(text, fontSize).Bounds()
		if bounds.W() <= widthMM && bounds.H() <= heightMM {
			break
		}
		fontSize--
	}

	return max(fontSize, MinFontSize)
}

// removeLineBreaks also replaces invalid UTF-8, which canvas cannot shape.
func removeLineBreaks(text string) string {
	text = strings.ToValidUTF8(text, string(utf8.RuneError))
	return strings.TrimSpace(lineBreaks.ReplaceAllString(text, " "))
}

// RenderTextAsPdf writes a single page pdf the size of the rect with text
// centered on it, ready to be stamped onto the template.
func (tr *TextRenderer) RenderTextAsPdf(text string, output string) (float64, error) {
	text = removeLineBreaks(text)
	fontSize := tr.fitFontSize(text)

	widthMM, heightMM := PtToMM(tr.rect.Width), PtToMM(tr.rect.Height)
	c := canvas.New(widthMM, heightMM)
	ctx := canvas.NewContext(c)
	// Change coordination from bottom-left to top-left
	ctx.SetCoordSystem(canvas.CartesianIV)

	textBox := tr.textBox(text, fontSize)
	centerYMM := max((heightMM-textBox.Bounds().H())/2, 0)
	ctx.DrawText(0, centerYMM, textBox)

	if err := renderers.Write(output, c); err != nil {
		return 0, fmt.Errorf("failed to write PDF: %w", err)
	}

	return fontSize, nil
}
