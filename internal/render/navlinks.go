package render

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/timsite/tim/internal/logfields"
	"github.com/timsite/tim/internal/site"
)

// navWriter emits one <nav> fragment. The wrapper is opened lazily with the
// first link so an empty nav is never written.
type navWriter struct {
	w      io.Writer
	kind   string // prev, next, feed, page
	opened bool
	err    error
}

func newNav(w io.Writer, kind string) *navWriter {
	return &navWriter{w: w, kind: kind}
}

func (n *navWriter) write(s string) {
	if n.err != nil {
		return
	}
	_, n.err = io.WriteString(n.w, s)
}

func (n *navWriter) open() {
	if n.opened {
		return
	}
	n.opened = true
	n.write(`<nav class="nav-links ` + n.kind + `-links" >`)
}

func (n *navWriter) link(href, label string, extraClasses ...string) {
	n.open()
	class := "nav-link " + n.kind + "-link"
	if len(extraClasses) > 0 {
		class += " " + strings.Join(extraClasses, " ")
	}
	n.write(`<a class="` + class + `" href="` + href + `">` + label + `</a>`)
}

func (n *navWriter) close() error {
	if n.opened {
		n.write("</nav>")
	}
	return n.err
}

// PrevLinks writes the breadcrumb trail from the site root down to, but
// excluding, the page itself.
func PrevLinks(w io.Writer, s *site.Site, outputPath string, diag Diagnostics) error {
	rel, err := filepath.Rel(s.OutputDir, outputPath)
	if err != nil {
		diag.Warn("Relative page path was NOT computed", logfields.Page(outputPath), logfields.Error(err))
		return nil
	}
	segments := strings.Split(filepath.ToSlash(rel), "/")

	nav := newNav(w, "prev")
	for i := 0; i < len(segments)-1; i++ {
		prefix := strings.Join(segments[:i+1], "/")
		nav.link(s.URL()+"/"+prefix, segments[i])
	}
	return nav.close()
}

// NextLinks writes one relative link per subdirectory of the page's folder.
func NextLinks(w io.Writer, outputPath string, diag Diagnostics) error {
	nav := newNav(w, "next")
	for _, name := range subdirectories(filepath.Dir(outputPath), diag) {
		nav.link(name, name)
	}
	return nav.close()
}

// FeedLinks writes the site root link followed by one link per top-level
// folder of the output tree. It is never empty.
func FeedLinks(w io.Writer, s *site.Site, diag Diagnostics) error {
	nav := newNav(w, "feed")
	nav.link(s.URL(), s.Name, "site-link")
	for _, name := range subdirectories(s.OutputDir, diag) {
		nav.link(s.URL()+"/"+name, name)
	}
	return nav.close()
}

// PageLinks writes one link per .html file in the page's folder. index.html is
// left out only when the index_page config option is exactly "false".
func PageLinks(w io.Writer, s *site.Site, outputPath string, diag Diagnostics) error {
	writeIndex := s.Config[site.ConfigIndexPage] != "false"
	dir := filepath.Dir(outputPath)

	nav := newNav(w, "page")
	for _, entry := range readDir(dir, diag) {
		name := entry.Name()
		if isDir(dir, entry) || filepath.Ext(name) != htmlExt {
			continue
		}
		if !writeIndex && name == indexFileName {
			continue
		}
		nav.link(name, strings.TrimSuffix(name, htmlExt))
	}
	return nav.close()
}

// readDir lists dir in the order os.ReadDir returns (sorted by name). Errors
// are reported and whatever was read is still returned.
func readDir(dir string, diag Diagnostics) []fs.DirEntry {
	entries, err := os.ReadDir(dir)
	if err != nil {
		diag.Warn("Directory was NOT listed", logfields.Path(dir), logfields.Error(err))
	}
	return entries
}

func subdirectories(dir string, diag Diagnostics) []string {
	var names []string
	for _, entry := range readDir(dir, diag) {
		if isDir(dir, entry) {
			names = append(names, entry.Name())
		}
	}
	return names
}

// isDir follows symlinks, the way a directory iterator's is_directory does.
func isDir(dir string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	st, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && st.IsDir()
}
