package badge

import "errors"

var (
	ErrTemplateNotFound = errors.New("template file not found")
	ErrFontNotFound     = errors.New("font file not found")
	ErrInvalidImage     = errors.New("invalid image")
	ErrInvalidLayout    = errors.New("invalid layout")
	ErrDocumentClosed   = errors.New("document is closed")
)
