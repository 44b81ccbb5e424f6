package badge

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/webp"
)

type imageFile struct {
	Path   string
	Width  int
	Height int
}

// writeImage stores data under dir as name plus an extension pdfcpu can
// stamp. PNG and JPEG are written as is, other decodable formats are
// re-encoded to PNG.
func writeImage(data []byte, dir, name string) (*imageFile, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Join(ErrInvalidImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: empty %s image", ErrInvalidImage, format)
	}

	var out []byte
	var ext string
	switch format {
	case "png":
		out, ext = data, ".png"
	case "jpeg":
		out, ext = data, ".jpg"
	default:
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Join(ErrInvalidImage, err)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("failed to convert %s image to png: %w", format, err)
		}
		out, ext = buf.Bytes(), ".png"
	}

	path := filepath.Join(dir, name+ext)
	if err := os.WriteFile(path, out, 0644); err != nil {
		return nil, fmt.Errorf("failed to write image: %w", err)
	}

	return &imageFile{
		Path:   path,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
