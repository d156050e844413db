package build

import "errors"

// Sentinel errors classifying build failures. They are wrapped with context
// at the call site.
var (
	// ErrPagesFailed reports that at least one page was not generated while
	// the rest of the build completed.
	ErrPagesFailed = errors.New("tim: some pages were NOT generated")
	// ErrBaseTemplate reports that the shared base template could not be opened.
	ErrBaseTemplate = errors.New("tim: base site file is NOT open")
)
