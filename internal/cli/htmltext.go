package cli

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML flattens rich-text backend fields (job descriptions, cover
// letters) into plain terminal text. Input that is not HTML passes through
// unchanged apart from whitespace normalization.
func StripHTML(s string) string {
	if !strings.ContainsRune(s, '<') {
		return collapseWhitespace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapseWhitespace(s)
	}
	return collapseWhitespace(doc.Text())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
