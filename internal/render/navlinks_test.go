package render

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrevLinks(t *testing.T) {
	s := newTestSite(t)
	var buf bytes.Buffer

	page := filepath.Join(s.OutputDir, "posts", "2024", "first.html")
	require.NoError(t, PrevLinks(&buf, s, page, &recordingDiagnostics{}))

	assert.Equal(t, `<nav class="nav-links prev-links" >`+
		`<a class="nav-link prev-link" href="https://example.com/posts">posts</a>`+
		`<a class="nav-link prev-link" href="https://example.com/posts/2024">2024</a>`+
		`</nav>`, buf.String())
}

func TestPrevLinks_RootPageWritesNothing(t *testing.T) {
	s := newTestSite(t)
	var buf bytes.Buffer

	require.NoError(t, PrevLinks(&buf, s, filepath.Join(s.OutputDir, "index.html"), &recordingDiagnostics{}))
	assert.Empty(t, buf.String())
}

func TestNextLinks(t *testing.T) {
	s := newTestSite(t)
	touch(t, s.OutputDir, "index.html", "posts/", "projects/", "about.html")

	var buf bytes.Buffer
	require.NoError(t, NextLinks(&buf, filepath.Join(s.OutputDir, "index.html"), &recordingDiagnostics{}))

	assert.Equal(t, `<nav class="nav-links next-links" >`+
		`<a class="nav-link next-link" href="posts">posts</a>`+
		`<a class="nav-link next-link" href="projects">projects</a>`+
		`</nav>`, buf.String())
}

func TestNextLinks_NoSubdirectories(t *testing.T) {
	s := newTestSite(t)
	touch(t, s.OutputDir, "posts/first.html", "posts/second.html")

	var buf bytes.Buffer
	require.NoError(t, NextLinks(&buf, filepath.Join(s.OutputDir, "posts", "first.html"), &recordingDiagnostics{}))
	assert.Empty(t, buf.String(), "empty nav elements must never be written")
}

func TestNextLinks_UnreadableDirectory(t *testing.T) {
	s := newTestSite(t)
	diag := &recordingDiagnostics{}

	var buf bytes.Buffer
	require.NoError(t, NextLinks(&buf, filepath.Join(s.OutputDir, "missing", "page.html"), diag))
	assert.Empty(t, buf.String())
	assert.Len(t, diag.warnings, 1)
}

func TestFeedLinks_SiteLinkFirst(t *testing.T) {
	s := newTestSite(t)
	touch(t, s.OutputDir, "index.html", "posts/", "about/")

	var buf bytes.Buffer
	require.NoError(t, FeedLinks(&buf, s, &recordingDiagnostics{}))

	assert.Equal(t, `<nav class="nav-links feed-links" >`+
		`<a class="nav-link feed-link site-link" href="https://example.com">blog</a>`+
		`<a class="nav-link feed-link" href="https://example.com/about">about</a>`+
		`<a class="nav-link feed-link" href="https://example.com/posts">posts</a>`+
		`</nav>`, buf.String())
}

func TestFeedLinks_NoSubdirectoriesStillHasSiteLink(t *testing.T) {
	s := newTestSite(t)
	touch(t, s.OutputDir, "index.html")

	var buf bytes.Buffer
	require.NoError(t, FeedLinks(&buf, s, &recordingDiagnostics{}))

	assert.Equal(t, `<nav class="nav-links feed-links" >`+
		`<a class="nav-link feed-link site-link" href="https://example.com">blog</a>`+
		`</nav>`, buf.String())
}

func TestPageLinks_IndexPageOption(t *testing.T) {
	tests := []struct {
		name      string
		config    map[string]string
		wantIndex bool
	}{
		{"absent", map[string]string{}, true},
		{"false", map[string]string{"index_page": "false"}, false},
		{"true", map[string]string{"index_page": "true"}, true},
		{"empty", map[string]string{"index_page": ""}, true},
		{"other casing", map[string]string{"index_page": "FALSE"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSite(t)
			s.Config = tt.config
			touch(t, s.OutputDir, "index.html", "about.html", "notes.txt", "posts/")

			var buf bytes.Buffer
			require.NoError(t, PageLinks(&buf, s, filepath.Join(s.OutputDir, "about.html"), &recordingDiagnostics{}))

			out := buf.String()
			assert.Contains(t, out, `<a class="nav-link page-link" href="about.html">about</a>`)
			assert.NotContains(t, out, "notes")
			assert.NotContains(t, out, "posts")
			if tt.wantIndex {
				assert.Contains(t, out, `<a class="nav-link page-link" href="index.html">index</a>`)
			} else {
				assert.NotContains(t, out, "index.html")
			}
		})
	}
}

func TestPageLinks_OnlyIndexExcluded(t *testing.T) {
	s := newTestSite(t)
	s.Config = map[string]string{"index_page": "false"}
	touch(t, s.OutputDir, "index.html")

	var buf bytes.Buffer
	require.NoError(t, PageLinks(&buf, s, filepath.Join(s.OutputDir, "index.html"), &recordingDiagnostics{}))
	assert.Empty(t, buf.String())
}
