package render

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/yuin/goldmark"

	"github.com/timsite/tim/internal/errors"
	"github.com/timsite/tim/internal/logfields"
	"github.com/timsite/tim/internal/site"
)

// Renderer expands templates for one loaded site.
type Renderer struct {
	site     *site.Site
	diag     Diagnostics
	markdown goldmark.Markdown
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithDiagnostics routes diagnostics to d instead of the default logger.
func WithDiagnostics(d Diagnostics) Option {
	return func(r *Renderer) { r.diag = d }
}

// WithMarkdown replaces the converter used for markdown page bodies.
func WithMarkdown(md goldmark.Markdown) Option {
	return func(r *Renderer) { r.markdown = md }
}

// NewRenderer creates a renderer for s, whose data and config must already be loaded.
func NewRenderer(s *site.Site, opts ...Option) *Renderer {
	r := &Renderer{site: s}
	for _, opt := range opts {
		opt(r)
	}
	if r.diag == nil {
		r.diag = slog.Default()
	}
	if r.markdown == nil {
		r.markdown = NewMarkdown()
	}
	return r
}

// RenderPage renders the base template for page into w with a fresh
// suppression cell.
func (r *Renderer) RenderPage(w io.Writer, base io.Reader, page *Page) error {
	return r.Render(w, bufio.NewReader(base), page, &Suppression{})
}

// Render scans src, copying literal spans to w and resolving directives
// against page. It calls itself for the content directive, passing the same
// sup. Reaching the end of src inside a directive ends the render quietly.
//
// A failed content render is reported once and remembered; the scan goes on
// and the failure is returned at the end. Read and write errors on src and w
// stop the render immediately.
func (r *Renderer) Render(w io.Writer, src *bufio.Reader, page *Page, sup *Suppression) error {
	var contentErr error
	for {
		literal, err := src.ReadString(byte(Sentinel))
		if err != nil && err != io.EOF {
			return errors.WrapError(err, errors.CategoryRender, "template read failed").Build()
		}
		atEOF := err == io.EOF
		if !atEOF {
			literal = literal[:len(literal)-1]
		}
		if !sup.Active() && literal != "" {
			if _, werr := io.WriteString(w, literal); werr != nil {
				return writeFailed(werr, page)
			}
		}
		if atEOF {
			return contentErr
		}

		kind, err := src.ReadByte()
		if err != nil {
			return readEnd(err, contentErr)
		}
		body, err := src.ReadString(byte(Sentinel))
		if err != nil {
			return readEnd(err, contentErr)
		}
		d := ParseDirective(kind, body[:len(body)-1])

		if d.Op == OpEndIf {
			sup.Clear()
			continue
		}
		if sup.Active() {
			continue
		}
		if d.Op == OpContent {
			if err := r.renderContent(w, page, sup); err != nil {
				r.diag.Error("Page content was NOT written properly", logfields.Page(page.OutputPath), logfields.Error(err))
				if contentErr == nil {
					contentErr = err
				}
			}
			continue
		}
		if err := r.resolve(w, d, page, sup); err != nil {
			return writeFailed(err, page)
		}
	}
}

// readEnd maps an end of stream inside a token to a quiet stop.
func readEnd(err, contentErr error) error {
	if err == io.EOF {
		return contentErr
	}
	return errors.WrapError(err, errors.CategoryRender, "template read failed").Build()
}

func writeFailed(err error, page *Page) error {
	return errors.WrapError(err, errors.CategoryRender, "page output write failed").
		WithContext("page", page.OutputPath).
		Build()
}

func (r *Renderer) renderContent(w io.Writer, page *Page, sup *Suppression) error {
	if page.body == nil {
		return nil
	}
	if !r.isMarkdown(page) {
		return r.Render(w, page.body, page, sup)
	}

	var buf bytes.Buffer
	renderErr := r.Render(&buf, page.body, page, sup)
	if err := r.markdown.Convert(buf.Bytes(), w); err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}
	return renderErr
}

func (r *Renderer) isMarkdown(page *Page) bool {
	return page.Data["format"] == "markdown" || r.site.Config[site.ConfigMarkdown] == "true"
}

// isSiteIndex reports whether page is rendered from the site's main index content file.
func (r *Renderer) isSiteIndex(page *Page) bool {
	return filepath.Clean(page.ContentPath) == filepath.Clean(r.site.IndexFile)
}
