// Package htmltext converts posting HTML into plain text suitable for
// keyword matching.
package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelector matches elements that carry no posting content.
const noiseSelector = "script, style, noscript, nav, header, footer"

// Strip parses the given HTML fragment, removes noise elements and returns
// the remaining text with whitespace collapsed to single spaces. Malformed
// markup is handled by the tolerant HTML parser; on a parse failure the raw
// input is returned with whitespace collapsed. Plain text passes through
// unchanged apart from whitespace normalization.
func Strip(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return collapseWhitespace(html)
	}

	doc.Find(noiseSelector).Remove()

	// Block elements would otherwise run together ("<p>a</p><p>b</p>"
	// becomes "ab"), breaking phrase matching across paragraph boundaries.
	doc.Find("p, div, li, br, h1, h2, h3, h4, h5, h6, tr").AfterHtml(" ")

	return collapseWhitespace(doc.Text())
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
