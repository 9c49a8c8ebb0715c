package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractHTMLText converts an HTML document (e.g. a saved job posting page)
// into normalized plain text. Script, style, and navigation elements are
// dropped; block elements become line breaks.
func ExtractHTMLText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, header, footer").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, body *goquery.Selection) {
		collectText(body, &sb)
	})

	// Documents without a body element (fragments) fall back to full text.
	if sb.Len() == 0 {
		sb.WriteString(doc.Text())
	}

	return Normalize(sb.String()), nil
}

// collectText walks a selection, emitting text with line breaks at block
// element boundaries so the date parser sees one entry per line.
func collectText(sel *goquery.Selection, sb *strings.Builder) {
	sel.Contents().Each(func(_ int, node *goquery.Selection) {
		if goquery.NodeName(node) == "#text" {
			sb.WriteString(node.Text())
			return
		}
		switch goquery.NodeName(node) {
		case "p", "div", "li", "br", "tr", "h1", "h2", "h3", "h4", "h5", "h6", "section", "article", "ul", "ol":
			sb.WriteString("\n")
			collectText(node, sb)
			sb.WriteString("\n")
		default:
			collectText(node, sb)
		}
	})
}
