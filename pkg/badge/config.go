package badge

import (
	"fmt"
	"os"
	"path/filepath"
)

type TextStyle struct {
	// Size in pt, shrunk automatically when the text does not fit its rectangle
	FontSize float64
	// Hex color such as "#FFFFFF"
	Color string
}

type Config struct {
	// Single page pdf every badge is composed on
	TemplatePath string
	// TrueType/OpenType font used for the club name, it must exist at request time
	FontPath string
	// Directory where per-document workspaces are created, each workspace is removed when the document is closed
	TmpDir string
	Layout Layout
	Text   TextStyle
}

func NewDefaultConfig() *Config {
	return &Config{
		TemplatePath: "template.pdf",
		FontPath:     "Montserrat-SemiBold.ttf",
		TmpDir:       filepath.Join(os.TempDir(), "clubcert"),
		Layout:       DefaultLayout(),
		Text: TextStyle{
			FontSize: 32,
			Color:    "#FFFFFF",
		},
	}
}

func (cfg *Config) newWorkspace(id string) (string, error) {
	// 0755 mean owner can read, write and execute
	if err := os.MkdirAll(cfg.TmpDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create tmp directory: %w", err)
	}

	dir := filepath.Join(cfg.TmpDir, "badge_"+id)
	if err := os.Mkdir(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create document workspace: %w", err)
	}

	return dir, nil
}
