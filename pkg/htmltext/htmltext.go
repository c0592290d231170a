// Package htmltext prepares HTML documents for pattern extraction: it
// flattens markup to plain text and harvests the values that only live in
// attributes (mailto: and tel: hrefs, anchor targets), which text regexes
// would otherwise miss.
package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document is the extraction-ready view of an HTML input.
type Document struct {
	text   string
	links  []string
	emails []string
	phones []string
}

// Parse builds a Document from raw HTML. Malformed HTML degrades to plain
// tag stripping rather than failing: extraction inputs are untrusted.
func Parse(rawHTML string) *Document {
	doc := &Document{}

	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		doc.text = StripTags(rawHTML)
		return doc
	}

	parsed.Find(`a[href]`).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)

		switch {
		case strings.HasPrefix(href, "mailto:"):
			email := strings.TrimPrefix(href, "mailto:")
			// Drop query params such as ?subject=...
			if idx := strings.Index(email, "?"); idx != -1 {
				email = email[:idx]
			}
			if email != "" {
				doc.emails = append(doc.emails, email)
			}
		case strings.HasPrefix(href, "tel:"):
			if phone := strings.TrimPrefix(href, "tel:"); phone != "" {
				doc.phones = append(doc.phones, phone)
			}
		case strings.HasPrefix(href, "http://"), strings.HasPrefix(href, "https://"):
			doc.links = append(doc.links, href)
		}
	})

	doc.text = StripTags(rawHTML)
	return doc
}

// Text returns the document's visible text content.
func (d *Document) Text() string {
	return d.text
}

// Links returns the http/https anchor targets, document order.
func (d *Document) Links() []string {
	return d.links
}

// Emails returns the addresses harvested from mailto: links.
func (d *Document) Emails() []string {
	return d.emails
}

// Phones returns the numbers harvested from tel: links.
func (d *Document) Phones() []string {
	return d.phones
}

// StripTags removes HTML tags from a string, replacing each closed tag
// with a space so adjacent text nodes do not run together.
func StripTags(s string) string {
	var builder strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			builder.WriteRune(' ')
		case !inTag:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
