package render

import (
	"path/filepath"
	"strings"

	"github.com/timsite/tim/internal/logfields"
)

const (
	htmlExt       = ".html"
	indexFileName = "index.html"
)

// Title derives a page title from its output path. An index page is titled
// after its folder; any other page after its file name without ".html".
func Title(outputPath string) string {
	base := filepath.Base(outputPath)
	if base == indexFileName {
		return filepath.Base(filepath.Dir(outputPath))
	}
	return strings.TrimSuffix(base, htmlExt)
}

// CurrentURL returns siteURL joined with the page's folder relative to
// outputRoot, using forward slashes. A page at the root yields siteURL + "/".
// When the relative path cannot be computed the failure is reported to diag
// and the folder segment is left empty.
func CurrentURL(siteURL, outputRoot, outputPath string, diag Diagnostics) string {
	rel, err := filepath.Rel(outputRoot, filepath.Dir(outputPath))
	if err != nil {
		diag.Warn("Relative page path was NOT computed", logfields.Page(outputPath), logfields.Error(err))
		rel = ""
	}
	if rel == "." {
		rel = ""
	}
	return siteURL + "/" + filepath.ToSlash(rel)
}
