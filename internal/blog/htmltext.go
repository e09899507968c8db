package blog

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML converts HTML markup to plain text. Input that fails to parse is
// returned unchanged so callers never lose the article body.
func StripHTML(html string) string {
	if html == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}

	return strings.TrimSpace(doc.Text())
}
