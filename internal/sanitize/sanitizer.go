// Package sanitize strips article HTML down to a fixed allow-list before it is
// stored and later rendered unescaped on the public sites.
package sanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

// AllowedElements is the element allow-list for article bodies.
var AllowedElements = []string{
	"p", "br", "strong", "em", "u",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"ul", "ol", "li",
	"a", "img",
	"blockquote", "code", "pre",
	"span", "div",
}

// AllowedURLSchemes are the schemes permitted in href and src.
var AllowedURLSchemes = []string{"http", "https", "mailto", "tel"}

// Sanitizer applies the article HTML policy. It is safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New builds a Sanitizer with the article policy
func New() *Sanitizer {
	return &Sanitizer{policy: newPolicy()}
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(AllowedElements...)

	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowAttrs("src", "alt", "title").OnElements("img")
	p.AllowAttrs("class", "id").OnElements(AllowedElements...)

	// Drops javascript:, data: and anything unparseable from href/src.
	p.RequireParseableURLs(true)
	p.AllowRelativeURLs(true)
	p.AllowURLSchemes(AllowedURLSchemes...)

	return p
}

// Sanitize returns html with every element and attribute outside the
// allow-list removed. Sanitizing its own output is a no-op.
func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
