package badge

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

const (
	workFileName   = "work.pdf"
	outputFileName = "badge.pdf"
	textFileName   = "text.pdf"
	workspaceIDLen = 12
)

type Composer struct {
	cfg *Config
}

func NewComposer(cfg *Config) *Composer {
	return &Composer{cfg: cfg}
}

func (c *Composer) Config() *Config {
	return c.cfg
}

// Document is one badge being composed inside its own workspace directory.
// It is not safe for concurrent use.
type Document struct {
	ID     string
	dir    string
	work   string
	layout Layout
	closed bool
}

// Open copies the template into a fresh workspace and stamps the club name
// onto page 1. The template and the font are checked before anything is
// written.
func (c *Composer) Open(clubName string) (_ *Document, err error) {
	ok, err := fileExists(c.cfg.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to check template: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, c.cfg.TemplatePath)
	}

	fontFamily, err := LoadFontFamily(c.cfg.FontPath)
	if err != nil {
		return nil, err
	}

	if err := c.cfg.Layout.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidLayout, err)
	}

	id, err := gonanoid.New(workspaceIDLen)
	if err != nil {
		return nil, fmt.Errorf("failed to generate workspace id: %w", err)
	}

	dir, err := c.cfg.newWorkspace(id)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		ID:     id,
		dir:    dir,
		work:   filepath.Join(dir, workFileName),
		layout: c.cfg.Layout,
	}

	// the workspace must not outlive a failed open, a panic in pdfcpu or canvas included
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to compose badge: %v", r)
		}
		if err != nil {
			doc.Close()
		}
	}()

	if err := doc.init(c.cfg.TemplatePath, NewTextRenderer(fontFamily, c.cfg.Text, c.cfg.Layout.Text), clubName); err != nil {
		return nil, err
	}

	return doc, nil
}

func (d *Document) init(templatePath string, tr *TextRenderer, clubName string) error {
	if err := CopyFile(templatePath, d.work); err != nil {
		return fmt.Errorf("failed to copy template: %w", err)
	}

	pages, err := pageCount(d.work)
	if err != nil {
		return err
	}
	if pages < 1 {
		return fmt.Errorf("template %s has no pages", templatePath)
	}

	textFile := filepath.Join(d.dir, textFileName)
	if _, err := tr.RenderTextAsPdf(clubName, textFile); err != nil {
		return fmt.Errorf("failed to render club name: %w", err)
	}

	// the text page is exactly the size of its rect
	return stampPdf(d.work, textFile, d.layout.Text.X, d.layout.Text.Y, 1)
}

func (d *Document) Dir() string {
	return d.dir
}

func (d *Document) PlaceLogo(logo []byte) error {
	return d.placeImage(logo, "logo", d.layout.Logo)
}

func (d *Document) PlaceQR(qr []byte) error {
	return d.placeImage(qr, "qr", d.layout.QR)
}

// placeImage fits the image inside rect, keeping its aspect ratio, centered.
func (d *Document) placeImage(data []byte, name string, rect Rect) error {
	if d.closed {
		return ErrDocumentClosed
	}

	img, err := writeImage(data, d.dir, name)
	if err != nil {
		return err
	}

	x, y, scale := rect.FitInside(float64(img.Width), float64(img.Height))
	return stampImage(d.work, img.Path, x, y, scale)
}

// Save writes the composed badge to the workspace and returns its path.
// The file lives until Close.
func (d *Document) Save() (string, error) {
	if d.closed {
		return "", ErrDocumentClosed
	}

	out := filepath.Join(d.dir, outputFileName)
	if err := api.OptimizeFile(d.work, out, nil); err != nil {
		return "", fmt.Errorf("failed to write badge: %w", err)
	}

	return out, nil
}

// Close removes the workspace and everything in it. Calling it more than
// once is a no-op.
func (d *Document) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true

	if err := os.RemoveAll(d.dir); err != nil {
		return fmt.Errorf("failed to remove workspace: %w", err)
	}
	return nil
}
