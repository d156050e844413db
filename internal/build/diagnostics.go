package build

import (
	"log/slog"

	"github.com/timsite/tim/internal/metrics"
)

// pageDiagnostics logs render diagnostics for one page and counts them.
type pageDiagnostics struct {
	logger   *slog.Logger
	recorder metrics.Recorder
	site     string
}

func (d pageDiagnostics) Warn(msg string, args ...any) {
	d.recorder.IncDiagnostic(d.site, "warn")
	d.logger.Warn(msg, args...)
}

func (d pageDiagnostics) Error(msg string, args ...any) {
	d.recorder.IncDiagnostic(d.site, "error")
	d.logger.Error(msg, args...)
}
