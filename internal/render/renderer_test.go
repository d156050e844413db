package render

import (
	"bufio"
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timsite/tim/internal/errors"
)

// renderString renders base for a page built from content.
func renderString(t *testing.T, r *Renderer, base, outputPath, contentPath, content string) (string, error) {
	t.Helper()
	page, err := NewPage(outputPath, contentPath, strings.NewReader(content))
	require.NoError(t, err)
	var buf bytes.Buffer
	err = r.RenderPage(&buf, strings.NewReader(base), page)
	return buf.String(), err
}

func TestRender_EndToEnd(t *testing.T) {
	s := newTestSite(t)
	r := NewRenderer(s, WithDiagnostics(&recordingDiagnostics{}))

	out, err := renderString(t, r, "~_title~: ~_content~",
		filepath.Join(s.OutputDir, "about.html"),
		filepath.Join(s.FeedDir, "about.html"),
		"title:ignored\n;\nHello")

	require.NoError(t, err)
	assert.Equal(t, "about: Hello", out)
}

func TestRender_SuppressionDoesNotNest(t *testing.T) {
	s := newTestSite(t)
	r := NewRenderer(s, WithDiagnostics(&recordingDiagnostics{}))

	out, err := renderString(t, r,
		"A ~_if.page.site_index~ B ~_if.page.site_index~ C ~_endif~ D",
		filepath.Join(s.OutputDir, "about.html"),
		filepath.Join(s.FeedDir, "about.html"),
		";\n")

	require.NoError(t, err)
	assert.Equal(t, "A  D", out)
}

func TestRender_IfOnSiteIndex(t *testing.T) {
	s := newTestSite(t)
	r := NewRenderer(s, WithDiagnostics(&recordingDiagnostics{}))
	base := "[~_if.page.site_index~home~_endif~|~_ifnot.page.site_index~other~_endif~]"

	out, err := renderString(t, r, base, filepath.Join(s.OutputDir, "index.html"), s.IndexFile, ";\n")
	require.NoError(t, err)
	assert.Equal(t, "[home|]", out)

	out, err = renderString(t, r, base,
		filepath.Join(s.OutputDir, "posts", "index.html"),
		filepath.Join(s.FeedDir, "posts", "index.html"), ";\n")
	require.NoError(t, err)
	assert.Equal(t, "[|other]", out)
}

func TestRender_UnrecognizedConditionIsFalse(t *testing.T) {
	s := newTestSite(t)
	r := NewRenderer(s, WithDiagnostics(&recordingDiagnostics{}))

	tests := []struct {
		base string
		want string
	}{
		{"a~_if~b~_endif~c", "ac"},
		{"a~_if.page~b~_endif~c", "ac"},
		{"a~_if.site.index~b~_endif~c", "ac"},
		{"a~_if.page.site_index.extra~b~_endif~c", "ac"},
		{"a~_ifnot~b~_endif~c", "abc"},
		{"a~_ifnot.page.other~b~_endif~c", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			out, err := renderString(t, r, tt.base, s.IndexFile, s.IndexFile, ";\n")
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRender_EndifUnderAnyKindClearsSuppression(t *testing.T) {
	s := newTestSite(t)
	r := NewRenderer(s, WithDiagnostics(&recordingDiagnostics{}))

	out, err := renderString(t, r, "a~_if.page.site_index~b~:endif~c",
		filepath.Join(s.OutputDir, "x.html"), filepath.Join(s.FeedDir, "x.html"), ";\n")
	require.NoError(t, err)
	assert.Equal(t, "ac", out)
}

func TestRender_RoundTripLiteralBody(t *testing.T) {
	s := newTestSite(t)
	r := NewRenderer(s, WithDiagnostics(&recordingDiagnostics{}))
	body := "<h1>Plain body</h1>\n<p>No directives: 100% literal, colons: too.</p>\n"
	base := "<html>\n<body>\n~_content~</body>\n</html>\n"

	out, err := renderString(t, r, base,
		filepath.Join(s.OutputDir, "about.html"), filepath.Join(s.FeedDir, "about.html"),
		"title:About\n;\n"+body)

	require.NoError(t, err)
	assert.Equal(t, strings.Replace(base, "~_content~", body, 1), out)
}

func TestRender_MissingSiteDataKey(t *testing.T) {
	s := newTestSite(t)
	diag := &recordingDiagnostics{}
	r := NewRenderer(s, WithDiagnostics(diag))

	out, err := renderString(t, r, "[~:unknown~]",
		filepath.Join(s.OutputDir, "about.html"), filepath.Join(s.FeedDir, "about.html"), ";\n")

	require.NoError(t, err)
	assert.Equal(t, "[]", out)
	assert.Len(t, diag.warnings, 1)
	assert.Empty(t, diag.errors)
}

func TestRender_DataLookups(t *testing.T) {
	s := newTestSite(t)
	s.Data["author"] = "Tim"
	s.Data["empty"] = ""
	diag := &recordingDiagnostics{}
	r := NewRenderer(s, WithDiagnostics(diag))

	out, err := renderString(t, r, "~:author~|~+description~|~+missing~|~:empty~|~_name~|~_url~",
		filepath.Join(s.OutputDir, "about.html"), filepath.Join(s.FeedDir, "about.html"),
		"description:A page: about things\n;\n")

	require.NoError(t, err)
	assert.Equal(t, "Tim|A page: about things|||blog|https://example.com", out)
	assert.Len(t, diag.warnings, 2)
}

func TestRender_UnknownDirectivesAreDiagnostics(t *testing.T) {
	s := newTestSite(t)
	diag := &recordingDiagnostics{}
	r := NewRenderer(s, WithDiagnostics(diag))

	out, err := renderString(t, r, "a~_nope~b~=file~c",
		filepath.Join(s.OutputDir, "about.html"), filepath.Join(s.FeedDir, "about.html"), ";\n")

	require.NoError(t, err)
	assert.Equal(t, "abc", out)
	assert.Equal(t, []string{"Undefined data to replace", "Undefined token"}, diag.warnings)
}

func TestRender_DirectivesSkippedWhileSuppressed(t *testing.T) {
	s := newTestSite(t)
	diag := &recordingDiagnostics{}
	r := NewRenderer(s, WithDiagnostics(diag))

	out, err := renderString(t, r, "a~_if~~:unknown~~_nope~~_content~b~_endif~c",
		filepath.Join(s.OutputDir, "about.html"), filepath.Join(s.FeedDir, "about.html"), ";\nBODY")

	require.NoError(t, err)
	assert.Equal(t, "ac", out)
	assert.Empty(t, diag.warnings)
}

func TestRender_EOFInsideTokenEndsQuietly(t *testing.T) {
	s := newTestSite(t)
	r := NewRenderer(s, WithDiagnostics(&recordingDiagnostics{}))

	for _, base := range []string{"abc~", "abc~_", "abc~_title"} {
		out, err := renderString(t, r, base,
			filepath.Join(s.OutputDir, "about.html"), filepath.Join(s.FeedDir, "about.html"), ";\n")
		require.NoError(t, err, base)
		assert.Equal(t, "abc", out, base)
	}
}

func TestRender_ContentSharesSuppression(t *testing.T) {
	s := newTestSite(t)
	r := NewRenderer(s, WithDiagnostics(&recordingDiagnostics{}))

	// The if opened inside the body is still active when the base resumes.
	out, err := renderString(t, r, "1~_content~2~_endif~3",
		filepath.Join(s.OutputDir, "about.html"), filepath.Join(s.FeedDir, "about.html"),
		";\np~_if.page.site_index~q")
	require.NoError(t, err)
	assert.Equal(t, "1p3", out)

	// A suppressed content directive is skipped, so the body's endif never runs.
	out, err = renderString(t, r, "1~_ifnot~2~_endif~3~_if.page.site_index~4~_content~5",
		filepath.Join(s.OutputDir, "about.html"), filepath.Join(s.FeedDir, "about.html"),
		";\nx~_endif~y")
	require.NoError(t, err)
	assert.Equal(t, "123", out)
}

func TestRender_ContentBodyIsConsumedOnce(t *testing.T) {
	s := newTestSite(t)
	r := NewRenderer(s, WithDiagnostics(&recordingDiagnostics{}))

	out, err := renderString(t, r, "[~_content~][~_content~]",
		filepath.Join(s.OutputDir, "about.html"), filepath.Join(s.FeedDir, "about.html"), ";\nbody")
	require.NoError(t, err)
	assert.Equal(t, "[body][]", out)
}

func TestRender_NavigationDirectives(t *testing.T) {
	s := newTestSite(t)
	touch(t, s.OutputDir, "index.html", "posts/first.html", "posts/2024/")
	r := NewRenderer(s, WithDiagnostics(&recordingDiagnostics{}))

	out, err := renderString(t, r, "~_this_url~\n~_prev_links~\n~_next_links~\n~_page_links~",
		filepath.Join(s.OutputDir, "posts", "first.html"),
		filepath.Join(s.FeedDir, "posts", "first.html"), ";\n")

	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "https://example.com/posts", lines[0])
	assert.Equal(t, `<nav class="nav-links prev-links" ><a class="nav-link prev-link" href="https://example.com/posts">posts</a></nav>`, lines[1])
	assert.Equal(t, `<nav class="nav-links next-links" ><a class="nav-link next-link" href="2024">2024</a></nav>`, lines[2])
	assert.Equal(t, `<nav class="nav-links page-links" ><a class="nav-link page-link" href="first.html">first</a></nav>`, lines[3])
}

func TestRender_MarkdownBody(t *testing.T) {
	s := newTestSite(t)
	r := NewRenderer(s, WithDiagnostics(&recordingDiagnostics{}))

	out, err := renderString(t, r, "<main>~_content~</main>",
		filepath.Join(s.OutputDir, "about.html"), filepath.Join(s.FeedDir, "about.html"),
		"format:markdown\n;\n# ~_title~\n\nSome *text*.\n")

	require.NoError(t, err)
	assert.Contains(t, out, "<h1>about</h1>")
	assert.Contains(t, out, "<em>text</em>")
	assert.True(t, strings.HasPrefix(out, "<main>"))
	assert.True(t, strings.HasSuffix(out, "</main>"))
}

func TestRender_MarkdownKeepsRawHTML(t *testing.T) {
	s := newTestSite(t)
	touch(t, s.OutputDir, "posts/first.html", "posts/second.html")
	r := NewRenderer(s, WithDiagnostics(&recordingDiagnostics{}))

	out, err := renderString(t, r, "~_content~",
		filepath.Join(s.OutputDir, "posts", "first.html"), filepath.Join(s.FeedDir, "posts", "first.html"),
		"format:markdown\n;\n# Hi\n\n~_page_links~\n\n<div class=\"x\">raw</div>\n")

	require.NoError(t, err)
	assert.Contains(t, out, "<h1>Hi</h1>")
	assert.Contains(t, out, `<nav class="nav-links page-links" >`)
	assert.Contains(t, out, `<a class="nav-link page-link" href="second.html">second</a>`)
	assert.Contains(t, out, `<div class="x">raw</div>`)
	assert.NotContains(t, out, "raw HTML omitted")
}

func TestRender_MarkdownSiteOption(t *testing.T) {
	s := newTestSite(t)
	s.Config["markdown"] = "true"
	r := NewRenderer(s, WithDiagnostics(&recordingDiagnostics{}))

	out, err := renderString(t, r, "~_content~",
		filepath.Join(s.OutputDir, "about.html"), filepath.Join(s.FeedDir, "about.html"), ";\n**bold**\n")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestRender_ContentFailureDoesNotStopOuterRender(t *testing.T) {
	s := newTestSite(t)
	diag := &recordingDiagnostics{}
	r := NewRenderer(s, WithDiagnostics(diag))

	page := &Page{
		OutputPath:  filepath.Join(s.OutputDir, "about.html"),
		ContentPath: filepath.Join(s.FeedDir, "about.html"),
		Data:        map[string]string{},
		body:        bufio.NewReader(iotest.ErrReader(stderrors.New("disk gone"))),
	}
	var buf bytes.Buffer
	err := r.RenderPage(&buf, strings.NewReader("before ~_content~after"), page)

	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryRender))
	assert.Equal(t, "before after", buf.String())
	assert.Len(t, diag.errors, 1)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestRender_WriteFailureStops(t *testing.T) {
	s := newTestSite(t)
	r := NewRenderer(s, WithDiagnostics(&recordingDiagnostics{}))
	page, err := NewPage(filepath.Join(s.OutputDir, "about.html"), filepath.Join(s.FeedDir, "about.html"), strings.NewReader(";\n"))
	require.NoError(t, err)

	err = r.RenderPage(failingWriter{}, strings.NewReader("literal ~_title~"), page)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestRender_IndependentRendersDoNotShareSuppression(t *testing.T) {
	s := newTestSite(t)
	r := NewRenderer(s, WithDiagnostics(&recordingDiagnostics{}))
	page := func() *Page {
		p, err := NewPage(filepath.Join(s.OutputDir, "a.html"), filepath.Join(s.FeedDir, "a.html"), strings.NewReader(";\n"))
		require.NoError(t, err)
		return p
	}

	var first, second bytes.Buffer
	require.NoError(t, r.RenderPage(&first, strings.NewReader("x~_if~y"), page()))
	require.NoError(t, r.RenderPage(&second, strings.NewReader("z"), page()))
	assert.Equal(t, "x", first.String())
	assert.Equal(t, "z", second.String())
}
