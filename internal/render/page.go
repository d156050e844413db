package render

import (
	"bufio"
	"io"

	"github.com/timsite/tim/internal/kvstore"
)

// Diagnostics receives non-fatal render problems. *slog.Logger satisfies it.
type Diagnostics interface {
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Page is the per-page render context.
type Page struct {
	OutputPath  string
	ContentPath string
	// Data is the content file's header.
	Data map[string]string
	// body is the rest of the content file, positioned after the header.
	body *bufio.Reader
}

// NewPage reads the header of content and keeps the remaining bytes as the
// page body.
func NewPage(outputPath, contentPath string, content io.Reader) (*Page, error) {
	body := bufio.NewReader(content)
	data, err := kvstore.ReadHeader(body)
	if err != nil {
		return nil, err
	}
	return &Page{
		OutputPath:  outputPath,
		ContentPath: contentPath,
		Data:        data,
		body:        body,
	}, nil
}

// Suppression is the single conditional-output flag of one page render. It is
// shared by pointer with every nested content render.
type Suppression struct {
	active bool
}

// Active reports whether output is currently withheld.
func (s *Suppression) Active() bool { return s.active }

// Set switches suppression on or off.
func (s *Suppression) Set(active bool) { s.active = active }

// Clear ends suppression.
func (s *Suppression) Clear() { s.active = false }
