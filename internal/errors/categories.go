package errors

// ErrorCategory groups failures by what the user has to fix.
type ErrorCategory string

const (
	CategoryConfig        ErrorCategory = "config"         // tim.yaml, _data.txt or _config.txt unusable
	CategoryValidation    ErrorCategory = "validation"     // site layout or site name is wrong
	CategoryNotFound      ErrorCategory = "not_found"      // site or output folder missing
	CategoryAlreadyExists ErrorCategory = "already_exists" // new on an existing site
	CategoryFileSystem    ErrorCategory = "filesystem"     // a source or destination file failed
	CategoryRender        ErrorCategory = "render"         // a page was not generated
	CategoryBuild         ErrorCategory = "build"          // the build as a whole failed
	CategoryInternal      ErrorCategory = "internal"
)

// exitCodes maps categories to process exit codes. Unknown categories and
// unclassified errors exit with 1.
var exitCodes = map[ErrorCategory]int{
	CategoryValidation:    2,
	CategoryNotFound:      3,
	CategoryAlreadyExists: 3,
	CategoryConfig:        7,
	CategoryInternal:      10,
	CategoryFileSystem:    11,
	CategoryRender:        11,
	CategoryBuild:         11,
}

// ExitCode returns the process exit code for c.
func (c ErrorCategory) ExitCode() int {
	if code, ok := exitCodes[c]; ok {
		return code
	}
	return 1
}

// ErrorSeverity tells the caller whether the task can go on.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // the task stops
	SeverityError   ErrorSeverity = "error"   // the page or step fails, the task goes on
	SeverityWarning ErrorSeverity = "warning" // degraded output
)

// ErrorContext carries the paths and names a failure is about.
type ErrorContext map[string]any
