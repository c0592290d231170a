package extract

import (
	"context"

	"github.com/lepinkainen/extract-forge/pkg/htmltext"
	"github.com/lepinkainen/extract-forge/pkg/opengraph"
)

// Extractor wraps a single text value and exposes typed accessors over the
// dispatcher. All accessors are pure functions of the stored text;
// LinkObjects with OpenGraph enabled is the only operation that performs
// I/O.
type Extractor struct {
	text     string
	registry *Registry
	doc      *htmltext.Document
}

// NewExtractor wraps plain text using the default registry.
func NewExtractor(text string) *Extractor {
	return NewExtractorWithRegistry(text, nil)
}

// NewExtractorWithRegistry wraps plain text with an injected registry; a
// nil registry uses the default one.
func NewExtractorWithRegistry(text string, registry *Registry) *Extractor {
	if registry == nil {
		registry = NewDefault(nil)
	}
	return &Extractor{text: text, registry: registry}
}

// NewHTMLExtractor wraps an HTML document: extraction runs over its text
// content, and values harvested from mailto:/tel:/href attributes are
// merged into the matching kinds.
func NewHTMLExtractor(rawHTML string) *Extractor {
	return NewHTMLExtractorWithRegistry(rawHTML, nil)
}

// NewHTMLExtractorWithRegistry is NewHTMLExtractor with an injected
// registry.
func NewHTMLExtractorWithRegistry(rawHTML string, registry *Registry) *Extractor {
	doc := htmltext.Parse(rawHTML)
	e := NewExtractorWithRegistry(doc.Text(), registry)
	e.doc = doc
	return e
}

// Text returns the text being scanned (for HTML input, its text content).
func (e *Extractor) Text() string {
	return e.text
}

// Extract returns the matches of kind. For HTML input, attribute-harvested
// values are appended to the scan results before deduplication.
func (e *Extractor) Extract(kind string) []string {
	matches := e.registry.Extract(e.text, kind)
	if e.doc == nil {
		return matches
	}

	switch kind {
	case "links":
		matches = append(matches, e.doc.Links()...)
	case "emails":
		matches = append(matches, e.doc.Emails()...)
	case "phones":
		matches = append(matches, e.doc.Phones()...)
	default:
		return matches
	}
	return dedup(matches)
}

// ExtractAll returns every registered kind's matches keyed by kind.
func (e *Extractor) ExtractAll() map[string][]string {
	results := make(map[string][]string)
	for _, kind := range e.registry.Kinds() {
		results[kind] = e.Extract(kind)
	}
	return results
}

// Links returns the http/https URLs in the text.
func (e *Extractor) Links() []string {
	return e.Extract("links")
}

// Tags returns the hashtag bodies in the text.
func (e *Extractor) Tags() []string {
	return e.Extract("hashtags")
}

// Mentions returns the @-mention bodies in the text.
func (e *Extractor) Mentions() []string {
	return e.Extract("mentions")
}

// Emails returns the email addresses in the text.
func (e *Extractor) Emails() []string {
	return e.Extract("emails")
}

// Attachments returns document and archive URLs in the text.
func (e *Extractor) Attachments() []string {
	return e.Extract("attachments")
}

// PhoneNumbers returns the phone-number-shaped tokens in the text.
func (e *Extractor) PhoneNumbers() []string {
	return e.Extract("phones")
}

// ImageURLs returns image URLs in the text.
func (e *Extractor) ImageURLs() []string {
	return e.Extract("images")
}

// TwitterHandles returns the @handles in the text.
func (e *Extractor) TwitterHandles() []string {
	return e.Extract("twitter_handles")
}

// MarkdownLinks returns the [text](url) pairs in the text.
func (e *Extractor) MarkdownLinks() []MarkdownLink {
	return MarkdownLinks(e.text)
}

// MetadataFetcher supplies link-preview metadata for a URL. Satisfied by
// both opengraph.Fetcher and opengraph.CachedFetcher.
type MetadataFetcher interface {
	Fetch(ctx context.Context, url string) *opengraph.Record
}

// LinkObject pairs an extracted URL with its OpenGraph record, when one
// was requested.
type LinkObject struct {
	URL       string            `json:"url"`
	OpenGraph *opengraph.Record `json:"opengraph,omitempty"`
}

// LinkObjectOptions controls LinkObjects.
type LinkObjectOptions struct {
	// WithOpenGraph enables metadata lookup per link.
	WithOpenGraph bool
	// Fetcher performs the lookups; required when WithOpenGraph is set.
	Fetcher MetadataFetcher
}

// LinkObjects returns one object per extracted link, in extraction order.
// With OpenGraph enabled each link is resolved through the fetcher; a
// failed lookup keeps its error-tagged record rather than dropping the
// link.
func (e *Extractor) LinkObjects(ctx context.Context, opts LinkObjectOptions) []LinkObject {
	links := e.Links()
	objects := make([]LinkObject, 0, len(links))

	for _, link := range links {
		obj := LinkObject{URL: link}
		if opts.WithOpenGraph && opts.Fetcher != nil {
			obj.OpenGraph = opts.Fetcher.Fetch(ctx, link)
		}
		objects = append(objects, obj)
	}
	return objects
}
