package errors

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/timsite/tim/internal/console"
)

// CLIErrorAdapter turns a command's error into a log record, a marked
// failure line and an exit code.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	exit    func(int)
}

func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{verbose: verbose, logger: logger, exit: os.Exit}
}

// ExitCodeFor returns 0 for nil, the category's code for classified errors
// and 1 otherwise.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if classified, ok := AsClassified(err); ok {
		return classified.category.ExitCode()
	}
	return 1
}

// FormatError returns the message alone, or the full chain when verbose.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	if classified, ok := AsClassified(err); ok && !a.verbose {
		return classified.message
	}
	return err.Error()
}

// HandleError reports err and exits. A nil err is ignored.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}
	a.log(err)
	console.Failure("%s", a.FormatError(err))
	a.exit(a.ExitCodeFor(err))
}

func (a *CLIErrorAdapter) log(err error) {
	classified, ok := AsClassified(err)
	if !ok {
		a.logger.Error("Task failed", slog.String("error", err.Error()))
		return
	}
	level := slog.LevelError
	if classified.severity == SeverityWarning {
		level = slog.LevelWarn
	}
	attrs := []slog.Attr{slog.String("category", string(classified.category))}
	for k, v := range classified.context {
		attrs = append(attrs, slog.String(k, fmt.Sprint(v)))
	}
	if classified.cause != nil {
		attrs = append(attrs, slog.String("error", classified.cause.Error()))
	}
	a.logger.LogAttrs(context.Background(), level, classified.message, attrs...)
}
