// Package render expands the directive language embedded in a site's base
// template.
//
// A directive is written between two '~' sentinels: one kind character, a
// name, and optional dot-separated arguments:
//
//	~_title~              builtin (kind '_')
//	~:author~             site data lookup (kind ':')
//	~+description~        page header lookup (kind '+')
//	~_if.page.site_index~ conditional, closed by ~_endif~
//
// Rendering streams the template: literal spans are copied, directives are
// decoded into a Directive and resolved. The content builtin renders the
// page's body as a template of its own, in place, sharing the same
// Suppression cell.
//
// Conditionals do not nest. One Suppression flag covers the whole render,
// including included content; an if or ifnot met while suppressed is not
// evaluated, and the first endif clears suppression whatever opened it.
package render
