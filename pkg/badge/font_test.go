package badge

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFontFamilyMissing(t *testing.T) {
	_, err := LoadFontFamily(filepath.Join(t.TempDir(), "missing.ttf"))
	if !errors.Is(err, ErrFontNotFound) {
		t.Fatalf("LoadFontFamily() error = %v, want ErrFontNotFound", err)
	}
}

func TestLoadFontFamily(t *testing.T) {
	path := testFont(t)

	family, err := LoadFontFamily(path)
	if err != nil {
		t.Fatalf("LoadFontFamily() error = %v", err)
	}
	if family == nil {
		t.Fatal("LoadFontFamily() returned nil family")
	}
}

func TestScanFontDirSkipsBrokenFonts(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.ttf"), []byte("not a font"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("ignored"), 0644); err != nil {
		t.Fatal(err)
	}

	var skipped []string
	fonts, err := ScanFontDir(dir, func(path string, err error) {
		skipped = append(skipped, filepath.Base(path))
	})
	if err != nil {
		t.Fatalf("ScanFontDir() error = %v", err)
	}

	if len(fonts) != 0 {
		t.Errorf("expected no fonts, got %v", fonts)
	}
	if len(skipped) != 1 || skipped[0] != "broken.ttf" {
		t.Errorf("skipped = %v, want [broken.ttf]", skipped)
	}
}
