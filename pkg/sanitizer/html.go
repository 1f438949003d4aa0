package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	emailPolicy *bluemonday.Policy
	textPolicy  *bluemonday.Policy
	initOnce    sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// textPolicy strips ALL HTML, returns plain text
		textPolicy = bluemonday.StrictPolicy()

		// emailPolicy keeps the table-based markup transactional email
		// templates rely on while stripping scripts, event handlers,
		// and javascript: URLs.
		emailPolicy = bluemonday.NewPolicy()
		emailPolicy.AllowStandardURLs()
		emailPolicy.AllowImages()
		emailPolicy.AllowElements(
			"html", "head", "body", "title",
			"div", "span", "p", "br", "hr",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"strong", "b", "em", "i", "u", "small", "center",
			"ul", "ol", "li",
			"code", "pre", "blockquote",
			"table", "thead", "tbody", "tfoot", "tr", "td", "th",
		)
		emailPolicy.AllowAttrs("href").OnElements("a")
		emailPolicy.AllowAttrs("style", "align", "valign", "width", "height",
			"border", "cellpadding", "cellspacing", "bgcolor", "color").Globally()
	})
}

// EmailHTML sanitizes an HTML email body. It preserves the structural and
// presentational markup email clients expect (tables, inline styles, images)
// while removing dangerous constructs: script elements, event handler
// attributes, and javascript: URLs.
func EmailHTML(s string) string {
	initPolicies()
	return emailPolicy.Sanitize(s)
}

// PlainText strips all markup, returning the text content only.
// Use to derive a plain-text fallback from an HTML body.
func PlainText(s string) string {
	initPolicies()
	return textPolicy.Sanitize(s)
}

// Custom applies a caller-supplied bluemonday policy.
// Returns input unchanged if policy is nil.
func Custom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
