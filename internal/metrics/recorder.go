package metrics

import "time"

// ResultLabel enumerates page result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
	ResultOmitted ResultLabel = "omitted"
)

// BuildOutcomeLabel enumerates final build outcomes.
type BuildOutcomeLabel string

const (
	BuildOutcomeSuccess BuildOutcomeLabel = "success"
	BuildOutcomeFailed  BuildOutcomeLabel = "failed"
)

// Recorder defines observability hooks for site builds. Implementations must
// be safe for concurrent use; preview records from its rebuild worker while
// the HTTP handler scrapes.
type Recorder interface {
	ObservePageDuration(site string, d time.Duration)
	IncPageResult(site string, result ResultLabel)
	IncDiagnostic(site, level string)
	ObserveBuildDuration(site string, d time.Duration)
	IncBuildOutcome(site string, outcome BuildOutcomeLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObservePageDuration(string, time.Duration) {}
func (NoopRecorder) IncPageResult(string, ResultLabel) {}
func (NoopRecorder) IncDiagnostic(string, string) {}
func (NoopRecorder) ObserveBuildDuration(string, time.Duration) {}
func (NoopRecorder) IncBuildOutcome(string, BuildOutcomeLabel) {}
