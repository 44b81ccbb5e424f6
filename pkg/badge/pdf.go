package badge

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Only the first page of the template is ever touched
var stampPages = []string{"1"}

// In pdfcpu, y is inverted. Offsets are taken from the top-left corner of the
// page and a positive y moves the stamp up, so the top-left based y is negated.
// With abs scaling, 1 means the stamp's natural size in points (pixels for images).
func stampDescription(x, y, scale float64) string {
	return fmt.Sprintf("pos: tl, off: %.2f %.2f, scale: %.4f abs, rotation: 0", x, -y, scale)
}

// stampPdf puts page 1 of stampFile onto page 1 of file, in place.
func stampPdf(file, stampFile string, x, y, scale float64) error {
	if err := api.AddPDFWatermarksFile(file, "", stampPages, true, stampFile, stampDescription(x, y, scale), nil); err != nil {
		return fmt.Errorf("failed to stamp pdf: %w", err)
	}
	return nil
}

// stampImage puts a png or jpeg image onto page 1 of file, in place.
func stampImage(file, imageFile string, x, y, scale float64) error {
	if err := api.AddImageWatermarksFile(file, "", stampPages, true, imageFile, stampDescription(x, y, scale), nil); err != nil {
		return fmt.Errorf("failed to stamp image: %w", err)
	}
	return nil
}

func pageCount(file string) (int, error) {
	n, err := api.PageCountFile(file)
	if err != nil {
		return 0, fmt.Errorf("failed to read page count: %w", err)
	}
	return n, nil
}

// CopyFile copies src to dst, replacing dst. Errors from flushing and
// closing dst are returned.
func CopyFile(src, dst string) (err error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dstFile.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return err
	}

	return dstFile.Sync()
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
