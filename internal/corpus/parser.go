package corpus

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Parser extracts outbound link targets from HTML content.
//
// Design decision: We use golang.org/x/net/html rather than a regex
// because:
//  1. It correctly handles malformed HTML
//  2. Attribute parsing (quoting, entities) is already solved
//  3. More maintainable than anchor-tag regex patterns
type Parser struct{}

// NewParser creates a new HTML link parser.
func NewParser() *Parser {
	return &Parser{}
}

// Links parses HTML content and returns the href targets of all anchor
// elements, deduplicated, in document order. Non-navigational schemes
// (mailto:, javascript:, tel:, data:) and bare fragments are skipped;
// fragment suffixes on page links are stripped so that "page.html#top"
// and "page.html" count as the same target.
func (p *Parser) Links(content io.Reader) ([]string, error) {
	doc, err := html.Parse(content)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	links := make([]string, 0)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if target := normalizeHref(getAttr(n, "href")); target != "" && !seen[target] {
				seen[target] = true
				links = append(links, target)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return links, nil
}

// normalizeHref cleans an href value, returning "" for targets that
// cannot refer to a corpus page.
func normalizeHref(href string) string {
	href = strings.TrimSpace(href)
	if href == "" || href == "#" {
		return ""
	}
	for _, scheme := range []string{"javascript:", "mailto:", "tel:", "data:"} {
		if strings.HasPrefix(href, scheme) {
			return ""
		}
	}
	if i := strings.IndexByte(href, '#'); i >= 0 {
		href = href[:i]
	}
	return href
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
