package badge

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/font/sfnt"
)

type FontMetadata struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func GetFontMetadataByPath(fontPath string) (*FontMetadata, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFontNotFound, fontPath)
		}
		return nil, fmt.Errorf("reading font file: %w", err)
	}

	font, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	name, err := font.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return nil, fmt.Errorf("retrieving font name: %w", err)
	}

	return &FontMetadata{
		Name: name,
		Path: fontPath,
	}, nil
}

// ScanFontDir walks dir for .ttf and .otf files. Files that cannot be
// parsed are reported to onSkip (when non-nil) and left out of the result.
func ScanFontDir(dir string, onSkip func(path string, err error)) ([]FontMetadata, error) {
	var fonts []FontMetadata

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if ext != ".ttf" && ext != ".otf" {
			return nil
		}

		meta, err := GetFontMetadataByPath(path)
		if err != nil {
			if onSkip != nil {
				onSkip(path, err)
			}
			return nil
		}

		fonts = append(fonts, *meta)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return fonts, nil
}

// LoadFontFamily loads the regular face of the font at path. The family is
// registered under the name stored in the font file.
func LoadFontFamily(path string) (*canvas.FontFamily, error) {
	meta, err := GetFontMetadataByPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get font metadata: %w", err)
	}

	fontFamily := canvas.NewFontFamily(meta.Name)
	if err := fontFamily.LoadFontFile(meta.Path, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("failed to load font file: %w", err)
	}

	return fontFamily, nil
}
