package build

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/yuin/goldmark"

	"github.com/timsite/tim/internal/console"
	"github.com/timsite/tim/internal/errors"
	"github.com/timsite/tim/internal/logfields"
	"github.com/timsite/tim/internal/metrics"
	"github.com/timsite/tim/internal/render"
	"github.com/timsite/tim/internal/site"
)

// Stats counts what one GenerateFiles pass did.
type Stats struct {
	Pages   int
	Failed  int
	Omitted int
}

// Generator renders the pages of one loaded site.
type Generator struct {
	site     *site.Site
	recorder metrics.Recorder
	logger   *slog.Logger
	markdown goldmark.Markdown
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) GeneratorOption {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithLogger sets the logger for progress and diagnostics.
func WithLogger(l *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator creates a generator for s, whose data and config must be loaded
// and whose output tree must already mirror the feed.
func NewGenerator(s *site.Site, opts ...GeneratorOption) *Generator {
	g := &Generator{
		site:     s,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
		markdown: render.NewMarkdown(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateFiles renders every .html file of the output tree in directory
// order. Other files are left as copied. A page that cannot be generated is
// reported and skipped; the pass still returns an error wrapping
// ErrPagesFailed at the end. Failing to open the base template stops the pass.
func (g *Generator) GenerateFiles(ctx context.Context) (Stats, error) {
	var stats Stats
	root := g.site.OutputDir

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			g.logger.Error("Directory entry was NOT read", logfields.Path(path), logfields.Error(err))
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if filepath.Ext(path) != ".html" {
			g.logger.Info("Omitted file in generating", logfields.Path(path))
			g.recorder.IncPageResult(g.site.Name, metrics.ResultOmitted)
			stats.Omitted++
			return nil
		}

		start := time.Now()
		err = g.generateFile(path)
		g.recorder.ObservePageDuration(g.site.Name, time.Since(start))
		if err != nil {
			if errors.HasCategory(err, errors.CategoryBuild) {
				return err
			}
			console.Failure("File: %s was NOT generated", path)
			g.logger.Error("Page was NOT generated", logfields.Page(path), logfields.Error(err))
			g.recorder.IncPageResult(g.site.Name, metrics.ResultFailed)
			stats.Failed++
			return nil
		}
		g.recorder.IncPageResult(g.site.Name, metrics.ResultSuccess)
		stats.Pages++
		return nil
	})
	if walkErr != nil {
		return stats, walkErr
	}
	if stats.Failed > 0 {
		return stats, errors.WrapError(fmt.Errorf("%w: %d of %d", ErrPagesFailed, stats.Failed, stats.Failed+stats.Pages),
			errors.CategoryRender, "Some pages were NOT generated").
			WithContext("site", g.site.Name).
			Build()
	}
	return stats, nil
}

// generateFile renders one output page from the base template and its paired
// content file under the feed directory.
func (g *Generator) generateFile(outputPath string) error {
	base, err := os.Open(g.site.BaseFile)
	if err != nil {
		return errors.WrapError(fmt.Errorf("%w: %w", ErrBaseTemplate, err), errors.CategoryBuild, "Base site file is NOT open").
			WithContext("path", g.site.BaseFile).
			Fatal().
			Build()
	}
	defer func() { _ = base.Close() }()

	rel, err := filepath.Rel(g.site.OutputDir, outputPath)
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "relative page path was NOT computed").Build()
	}
	contentPath := filepath.Join(g.site.FeedDir, rel)
	// #nosec G304 -- content files are found by walking the site's own tree.
	content, err := os.Open(contentPath)
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "Content file: "+contentPath+" is NOT open").Build()
	}
	defer func() { _ = content.Close() }()

	page, err := render.NewPage(outputPath, contentPath, content)
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "Content file: "+contentPath+" was NOT read").Build()
	}

	// #nosec G304 -- see above.
	out, err := os.Create(outputPath)
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "File: "+outputPath+" is NOT open").Build()
	}
	w := bufio.NewWriter(out)

	logger := g.logger.With(logfields.Page(outputPath))
	r := render.NewRenderer(g.site,
		render.WithDiagnostics(pageDiagnostics{logger: logger, recorder: g.recorder, site: g.site.Name}),
		render.WithMarkdown(g.markdown))
	renderErr := r.RenderPage(w, base, page)
	flushErr := w.Flush()
	closeErr := out.Close()

	switch {
	case renderErr != nil:
		return renderErr
	case flushErr != nil:
		return errors.WrapError(flushErr, errors.CategoryFileSystem, "page output write failed").Build()
	case closeErr != nil:
		return errors.WrapError(closeErr, errors.CategoryFileSystem, "page output close failed").Build()
	}
	logger.Debug("Page generated", logfields.Content(contentPath))
	return nil
}
