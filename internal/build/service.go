package build

import (
	"context"
	"time"
)

// BuildService is the canonical interface for executing site builds.
type BuildService interface {
	// Run executes a complete build: layout check, output reset, data and
	// config load, feed copy and page generation.
	Run(ctx context.Context, req BuildRequest) (*BuildResult, error)
}

// BuildRequest contains all inputs required to execute a site build.
type BuildRequest struct {
	// SitesDir is the folder holding the site directories.
	SitesDir string
	// Name is the site to build.
	Name string
}

// BuildResult contains the outcome of a build execution.
type BuildResult struct {
	Status BuildStatus

	// BuildID correlates every log line of this build.
	BuildID string

	// OutputPath is the site's output directory.
	OutputPath string

	// Pages is the count of pages generated successfully.
	Pages int
	// PagesFailed is the count of pages that were not generated.
	PagesFailed int
	// FilesOmitted is the count of non-HTML files left as copied.
	FilesOmitted int

	Duration  time.Duration
	StartTime time.Time
	EndTime   time.Time
}

// BuildStatus represents the outcome of a build execution.
type BuildStatus string

const (
	BuildStatusSuccess   BuildStatus = "success"
	BuildStatusFailed    BuildStatus = "failed"
	BuildStatusCancelled BuildStatus = "cancelled"
)

// IsSuccess returns true if the build completed successfully.
func (s BuildStatus) IsSuccess() bool {
	return s == BuildStatusSuccess
}
