package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeySite       = "site"
	KeyPage       = "page"
	KeyContent    = "content"
	KeyDirective  = "directive"
	KeyKind       = "kind"
	KeyPath       = "path"
	KeyBuildID    = "build_id"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Site(name string) slog.Attr      { return slog.String(KeySite, name) }
func Page(path string) slog.Attr      { return slog.String(KeyPage, path) }
func Content(path string) slog.Attr   { return slog.String(KeyContent, path) }
func Directive(name string) slog.Attr { return slog.String(KeyDirective, name) }
func Kind(k byte) slog.Attr           { return slog.String(KeyKind, string(k)) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
