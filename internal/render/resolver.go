package render

import (
	"io"

	"github.com/timsite/tim/internal/logfields"
)

// resolve writes the value of one directive. The content directive is handled
// by Render itself. Missing data and unknown names are diagnostics, never
// errors; only write failures are returned.
func (r *Renderer) resolve(w io.Writer, d Directive, page *Page, sup *Suppression) error {
	s := r.site
	switch d.Op {
	case OpSiteName:
		return writeString(w, s.Name)
	case OpSiteURL:
		return writeString(w, s.URL())
	case OpThisURL:
		return writeString(w, CurrentURL(s.URL(), s.OutputDir, page.OutputPath, r.diag))
	case OpTitle:
		return writeString(w, Title(page.OutputPath))
	case OpPrevLinks:
		return PrevLinks(w, s, page.OutputPath, r.diag)
	case OpNextLinks:
		return NextLinks(w, page.OutputPath, r.diag)
	case OpFeedLinks:
		return FeedLinks(w, s, r.diag)
	case OpPageLinks:
		return PageLinks(w, s, page.OutputPath, r.diag)
	case OpIf, OpIfNot:
		sup.Set(!r.condition(d, page) != (d.Op == OpIfNot))
		return nil
	case OpEndIf:
		sup.Clear()
		return nil
	case OpSiteData:
		return r.lookup(w, s.Data, d)
	case OpPageData:
		return r.lookup(w, page.Data, d)
	case OpUnknownBuiltin:
		r.diag.Warn("Undefined data to replace", logfields.Directive(d.Name))
		return nil
	default:
		r.diag.Warn("Undefined token", logfields.Kind(d.Kind), logfields.Directive(d.Name))
		return nil
	}
}

// condition evaluates the arguments of if/ifnot. page.site_index is the only
// condition; anything else is false.
func (r *Renderer) condition(d Directive, page *Page) bool {
	if len(d.Args) == 2 && d.Args[0] == "page" && d.Args[1] == "site_index" {
		return r.isSiteIndex(page)
	}
	return false
}

func (r *Renderer) lookup(w io.Writer, data map[string]string, d Directive) error {
	value := data[d.Name]
	if value == "" {
		r.diag.Warn("Undefined data to replace", logfields.Kind(d.Kind), logfields.Directive(d.Name))
		return nil
	}
	return writeString(w, value)
}

func writeString(w io.Writer, s string) error {
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, s)
	return err
}
