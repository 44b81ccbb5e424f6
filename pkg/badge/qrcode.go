package badge

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/skip2/go-qrcode"
)

const (
	// Smallest symbol version used, longer links grow the symbol as needed
	QRMinVersion = 3
	// Pixels per module
	QRBoxSize = 12
	// Quiet zone width in modules
	QRBorder = 1
)

var (
	QRForegroundColor = color.RGBA{R: 0x00, G: 0x21, B: 0x47, A: 0xff} // #002147
	QRBackgroundColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// GenerateQRCode encodes link as a PNG with the badge's fixed look: low
// error correction, 12px modules, a 1-module border, navy on white.
// The output is deterministic for a given link.
func GenerateQRCode(link string) ([]byte, error) {
	qr, err := qrcode.NewWithForcedVersion(link, QRMinVersion, qrcode.Low)
	if err != nil {
		// does not fit in the minimum version, let the encoder pick the smallest one that does
		qr, err = qrcode.New(link, qrcode.Low)
		if err != nil {
			return nil, fmt.Errorf("failed to generate QR code: %w", err)
		}
	}

	// go-qrcode only knows a 4 module quiet zone, the border is drawn below
	qr.DisableBorder = true
	img := renderQRBitmap(qr.Bitmap(), QRBoxSize, QRBorder)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}

	return buf.Bytes(), nil
}

func renderQRBitmap(bitmap [][]bool, boxSize, border int) *image.Paletted {
	modules := len(bitmap) + 2*border
	size := modules * boxSize

	// index 0 is the background, so the zero value of the image is already filled
	img := image.NewPaletted(image.Rect(0, 0, size, size), color.Palette{QRBackgroundColor, QRForegroundColor})

	for y, row := range bitmap {
		for x, set := range row {
			if !set {
				continue
			}

			x0 := (x + border) * boxSize
			y0 := (y + border) * boxSize
			for py := y0; py < y0+boxSize; py++ {
				for px := x0; px < x0+boxSize; px++ {
					img.SetColorIndex(px, py, 1)
				}
			}
		}
	}

	return img
}
