package build

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/timsite/tim/internal/errors"
	"github.com/timsite/tim/internal/logfields"
	"github.com/timsite/tim/internal/metrics"
	"github.com/timsite/tim/internal/site"
	"github.com/timsite/tim/internal/workspace"
)

// DefaultBuildService is the standard implementation of BuildService.
type DefaultBuildService struct {
	recorder metrics.Recorder
	logger   *slog.Logger
	newID    func() string
}

// NewBuildService creates a new DefaultBuildService that records nothing and
// logs through slog.Default.
func NewBuildService() *DefaultBuildService {
	return &DefaultBuildService{
		recorder: metrics.NoopRecorder{},
		newID:    uuid.NewString,
	}
}

// WithRecorder sets the metrics recorder.
func (s *DefaultBuildService) WithRecorder(r metrics.Recorder) *DefaultBuildService {
	if r != nil {
		s.recorder = r
	}
	return s
}

// WithLogger sets the logger every build derives its logger from.
func (s *DefaultBuildService) WithLogger(l *slog.Logger) *DefaultBuildService {
	s.logger = l
	return s
}

// Run executes the complete build pipeline.
func (s *DefaultBuildService) Run(ctx context.Context, req BuildRequest) (*BuildResult, error) {
	startTime := time.Now()
	result := &BuildResult{
		BuildID:   s.newID(),
		StartTime: startTime,
	}
	logger := s.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(logfields.BuildID(result.BuildID), logfields.Site(req.Name))

	finish := func(status BuildStatus, err error) (*BuildResult, error) {
		result.Status = status
		result.EndTime = time.Now()
		result.Duration = result.EndTime.Sub(startTime)
		outcome := metrics.BuildOutcomeSuccess
		if status != BuildStatusSuccess {
			outcome = metrics.BuildOutcomeFailed
		}
		s.recorder.IncBuildOutcome(req.Name, outcome)
		s.recorder.ObserveBuildDuration(req.Name, result.Duration)
		logger.Info("Build finished",
			slog.String("status", string(status)),
			slog.Int("pages", result.Pages),
			slog.Int("pages_failed", result.PagesFailed),
			logfields.DurationMS(float64(result.Duration.Milliseconds())))
		return result, err
	}

	st, err := site.New(req.SitesDir, req.Name)
	if err != nil {
		return finish(BuildStatusFailed, err)
	}
	result.OutputPath = st.OutputDir

	// Stage 1: layout
	logger.Info("Checking site layout")
	if err := st.CheckLayout(); err != nil {
		return finish(BuildStatusFailed, err)
	}

	// Stage 2: output reset
	ws := workspace.NewManager(st.OutputDir)
	if err := ws.Reset(); err != nil {
		return finish(BuildStatusFailed, errors.WrapError(err, errors.CategoryFileSystem, "output directory was NOT reset").
			WithContext("path", st.OutputDir).
			Build())
	}

	// Stage 3: data and config
	if err := st.LoadData(); err != nil {
		return finish(BuildStatusFailed, err)
	}
	if err := st.LoadConfig(); err != nil {
		return finish(BuildStatusFailed, err)
	}

	// Stage 4: feed copy
	if err := ws.Populate(st.FeedDir); err != nil {
		return finish(BuildStatusFailed, errors.WrapError(err, errors.CategoryFileSystem, "feed was NOT copied to the output directory").
			WithContext("path", st.FeedDir).
			Build())
	}
	if err := ctx.Err(); err != nil {
		return finish(BuildStatusCancelled, err)
	}

	// Stage 5: pages
	logger.Info("Generating pages", logfields.Path(st.OutputDir))
	gen := NewGenerator(st, WithRecorder(s.recorder), WithLogger(logger))
	stats, err := gen.GenerateFiles(ctx)
	result.Pages = stats.Pages
	result.PagesFailed = stats.Failed
	result.FilesOmitted = stats.Omitted
	switch {
	case err == nil:
		return finish(BuildStatusSuccess, nil)
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return finish(BuildStatusCancelled, err)
	default:
		return finish(BuildStatusFailed, err)
	}
}
