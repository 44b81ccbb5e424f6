package badge

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PtPerMM converts millimetres to PDF points (1 pt = 1/72 inch).
const PtPerMM = 72 / 25.4

func MMToPt(mm float64) float64 {
	return mm * PtPerMM
}

func PtToMM(pt float64) float64 {
	return pt / PtPerMM
}

// Rect is a placement box in PDF points with the origin at the top-left
// corner of the page and y growing downwards.
type Rect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FitInside scales a w x h object to fit the rect without distortion and
// centers it. It returns the top-left corner of the placed object and the
// scale factor applied.
func (r Rect) FitInside(w, h float64) (x, y, scale float64) {
	if w <= 0 || h <= 0 {
		return r.X, r.Y, 0
	}

	scale = min(r.Width/w, r.Height/h)
	x = r.X + (r.Width-w*scale)/2
	y = r.Y + (r.Height-h*scale)/2

	return x, y, scale
}

// Layout holds the rectangle of every element drawn on page 1 of the template.
type Layout struct {
	Text Rect `yaml:"text"`
	Logo Rect `yaml:"logo"`
	QR   Rect `yaml:"qr"`
}

// DefaultLayout matches the A4 club template. The logo box is a 42mm square
// 16mm from the left edge and 162.26mm from the top, trimmed by 12pt on both
// sides. The club name sits to its right, lowered by a fraction of the logo
// height, and spans up to 16mm from the right edge.
func DefaultLayout() Layout {
	logoSize := MMToPt(42)
	left := MMToPt(16)
	top := MMToPt(162.26)
	textX := MMToPt(58) + 25

	return Layout{
		Text: Rect{
			X:      textX,
			Y:      top + logoSize/4.5,
			Width:  MMToPt(210) - left - textX,
			Height: logoSize,
		},
		Logo: Rect{
			X:      left + 12,
			Y:      top,
			Width:  logoSize - 24,
			Height: logoSize,
		},
		QR: Rect{
			X:      155,
			Y:      75,
			Width:  285,
			Height: 280,
		},
	}
}

func (l Layout) Validate() error {
	for name, r := range map[string]Rect{"text": l.Text, "logo": l.Logo, "qr": l.QR} {
		if r.Width <= 0 || r.Height <= 0 {
			return fmt.Errorf("layout %s rectangle must have a positive size, got %.2fx%.2f", name, r.Width, r.Height)
		}
	}
	return nil
}

type layoutFile struct {
	Text *Rect `yaml:"text"`
	Logo *Rect `yaml:"logo"`
	QR   *Rect `yaml:"qr"`
}

// LoadLayout reads a yaml file overriding any of the default rectangles.
// An empty path returns DefaultLayout.
//
//	text: {x: 190, y: 486, width: 360, height: 119}
//	qr:   {x: 155, y: 75, width: 285, height: 280}
func LoadLayout(path string) (Layout, error) {
	layout := DefaultLayout()
	if path == "" {
		return layout, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return layout, fmt.Errorf("failed to read layout file: %w", err)
	}

	var lf layoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return layout, fmt.Errorf("failed to parse layout file: %w", err)
	}

	if lf.Text != nil {
		layout.Text = *lf.Text
	}
	if lf.Logo != nil {
		layout.Logo = *lf.Logo
	}
	if lf.QR != nil {
		layout.QR = *lf.QR
	}

	if err := layout.Validate(); err != nil {
		return layout, errors.Join(ErrInvalidLayout, err)
	}

	return layout, nil
}
