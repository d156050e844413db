package render

import (
	"fmt"
	"strings"
)

// Sentinel delimits directive tokens. It cannot appear in literal text.
const Sentinel = '~'

// Directive kind characters.
const (
	KindBuiltin  byte = '_'
	KindSiteData byte = ':'
	KindPageData byte = '+'
)

// Op is the decoded meaning of a directive.
type Op int

const (
	OpUnknownKind Op = iota
	OpUnknownBuiltin
	OpContent
	OpSiteName
	OpSiteURL
	OpThisURL
	OpTitle
	OpPrevLinks
	OpNextLinks
	OpFeedLinks
	OpPageLinks
	OpIf
	OpIfNot
	OpEndIf
	OpSiteData
	OpPageData
)

var opNames = map[Op]string{
	OpUnknownKind:    "unknown-kind",
	OpUnknownBuiltin: "unknown-builtin",
	OpContent:        "content",
	OpSiteName:       "name",
	OpSiteURL:        "url",
	OpThisURL:        "this_url",
	OpTitle:          "title",
	OpPrevLinks:      "prev_links",
	OpNextLinks:      "next_links",
	OpFeedLinks:      "feed_links",
	OpPageLinks:      "page_links",
	OpIf:             "if",
	OpIfNot:          "ifnot",
	OpEndIf:          "endif",
	OpSiteData:       "site-data",
	OpPageData:       "page-data",
}

func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

var builtinOps = map[string]Op{
	"content":    OpContent,
	"name":       OpSiteName,
	"url":        OpSiteURL,
	"this_url":   OpThisURL,
	"title":      OpTitle,
	"prev_links": OpPrevLinks,
	"next_links": OpNextLinks,
	"feed_links": OpFeedLinks,
	"page_links": OpPageLinks,
	"if":         OpIf,
	"ifnot":      OpIfNot,
}

// Directive is one decoded token.
type Directive struct {
	Op   Op
	Kind byte
	Name string
	// Args holds the dot-separated parameters after the name.
	Args []string
}

// ParseDirective decodes the text between the sentinels: kind is the first
// byte, body the remainder. endif is recognized under any kind.
func ParseDirective(kind byte, body string) Directive {
	parts := strings.Split(body, ".")
	d := Directive{Kind: kind, Name: parts[0], Args: parts[1:]}

	if d.Name == "endif" {
		d.Op = OpEndIf
		return d
	}
	switch kind {
	case KindBuiltin:
		op, ok := builtinOps[d.Name]
		if !ok {
			op = OpUnknownBuiltin
		}
		d.Op = op
	case KindSiteData:
		d.Op = OpSiteData
	case KindPageData:
		d.Op = OpPageData
	default:
		d.Op = OpUnknownKind
	}
	return d
}
