package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timsite/tim/internal/site"
)

// recordingDiagnostics collects diagnostics instead of logging them.
type recordingDiagnostics struct {
	warnings []string
	errors   []string
}

func (d *recordingDiagnostics) Warn(msg string, _ ...any)  { d.warnings = append(d.warnings, msg) }
func (d *recordingDiagnostics) Error(msg string, _ ...any) { d.errors = append(d.errors, msg) }

// newTestSite creates an empty site folder with its output tree under a temp dir.
func newTestSite(t *testing.T) *site.Site {
	t.Helper()
	s, err := site.New(t.TempDir(), "blog")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(s.OutputDir, 0o750))
	require.NoError(t, os.MkdirAll(s.FeedDir, 0o750))
	s.Data = map[string]string{"url": "https://example.com"}
	s.Config = map[string]string{}
	return s
}

// touch creates the files and directories (trailing slash) below root.
func touch(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if p[len(p)-1] == '/' {
			require.NoError(t, os.MkdirAll(full, 0o750))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
		require.NoError(t, os.WriteFile(full, nil, 0o600))
	}
}
