package e2etest

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FindText returns the trimmed text of the first element matching selector.
func FindText(doc *goquery.Document, selector string) (string, error) {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", fmt.Errorf("element not found: %s", selector)
	}
	return strings.TrimSpace(sel.Text()), nil
}

// AttrValues returns the attribute of every element matching selector in document order.
func AttrValues(doc *goquery.Document, selector, attr string) []string {
	var values []string
	doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if v, ok := s.Attr(attr); ok {
			values = append(values, v)
		}
	})
	return values
}
