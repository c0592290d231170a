package extract

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/lepinkainen/extract-forge/pkg/identifiers"
)

var (
	linkPattern = regexp.MustCompile(`https?://[^\s<>"']+`)

	// Pragmatic RFC-5322-ish pattern, not a full RFC parser.
	emailPattern = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)

	phonePattern = regexp.MustCompile(`\+?\d[\d\s()-]{7,}`)

	// \B keeps "alice@example.com" from yielding a mention for "example".
	hashtagPattern = regexp.MustCompile(`\B#(\w+)`)
	mentionPattern = regexp.MustCompile(`\B@(\w+)`)
	twitterPattern = regexp.MustCompile(`\B@(\w{1,15})\b`)

	imagePattern      = regexp.MustCompile(`(?i)https?://[^\s<>"']+\.(?:jpg|jpeg|png|gif|svg|webp)\b`)
	attachmentPattern = regexp.MustCompile(`(?i)https?://[^\s<>"']+\.(?:pdf|docx|doc|xlsx|xls|pptx|ppt|txt|csv|zip|rar|7z)\b`)

	markdownLinkPattern = regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]+)\)`)
)

// trailingPunct is stripped from the end of extracted links: a URL at the
// end of a sentence should not keep the sentence's punctuation.
const trailingPunct = ".,!?:;"

// MarkdownLink is one [text](url) pair.
type MarkdownLink struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// NewDefault builds a registry with every built-in kind. Identifier kinds
// (isbn, vin, issn, iban, credit_cards, imei, uuids, ...) come from table;
// a nil table uses the embedded default specs.
func NewDefault(table *identifiers.Table) *Registry {
	if table == nil {
		table = identifiers.Default()
	}

	r := NewRegistry()

	register := func(kind string, fn Func) {
		if err := r.Register(kind, fn); err != nil {
			// Built-in names are unique by construction.
			slog.Warn("Failed to register built-in kind", "kind", kind, "error", err)
		}
	}

	register("links", Links)
	register("emails", Emails)
	register("phones", Phones)
	register("hashtags", Hashtags)
	register("mentions", Mentions)
	register("images", ImageURLs)
	register("attachments", Attachments)
	register("twitter_handles", TwitterHandles)
	register("markdown_links", markdownLinkURLs)

	// Dispatcher names follow the public API (plural); the spec table keys
	// stay singular.
	identifierKinds := []struct {
		kind string
		spec string
	}{
		{"uuids", "uuid"},
		{"hex_colors", "hex_color"},
		{"ips", "ip"},
		{"mac_addresses", "mac_address"},
		{"ean13", "ean13"},
		{"upca", "upca"},
		{"isbn", "isbn"},
		{"vin", "vin"},
		{"issn", "issn"},
		{"iban", "iban"},
		{"credit_cards", "credit_card"},
		{"imei", "imei"},
	}
	for _, ik := range identifierKinds {
		spec, ok := table.Lookup(ik.spec)
		if !ok {
			slog.Debug("Identifier kind not in spec table, skipping", "kind", ik.spec)
			continue
		}
		register(ik.kind, identifierFunc(spec))
	}

	return r
}

// identifierFunc builds an extractor from an identifier spec: regex scan,
// then checksum filter when the spec has one.
func identifierFunc(spec *identifiers.Spec) Func {
	re := spec.Regexp()
	validator := spec.Validator()

	return func(text string) []string {
		if re == nil {
			return nil
		}
		var matches []string
		for _, m := range re.FindAllString(text, -1) {
			if validator != nil && !validator(m) {
				continue
			}
			matches = append(matches, m)
		}
		return dedup(matches)
	}
}

// Links returns http/https URLs in text, trailing sentence punctuation
// stripped, deduplicated in order of first appearance.
func Links(text string) []string {
	var links []string
	for _, m := range linkPattern.FindAllString(text, -1) {
		links = append(links, strings.TrimRight(m, trailingPunct))
	}
	return dedup(links)
}

// Emails returns email addresses in text.
func Emails(text string) []string {
	return dedup(emailPattern.FindAllString(text, -1))
}

// Phones returns phone-number-shaped tokens: an optional +, then eight or
// more digit, space, hyphen or parenthesis characters.
func Phones(text string) []string {
	var phones []string
	for _, m := range phonePattern.FindAllString(text, -1) {
		phones = append(phones, strings.TrimSpace(m))
	}
	return dedup(phones)
}

// Hashtags returns the text after each # symbol.
func Hashtags(text string) []string {
	return captures(hashtagPattern, text)
}

// Mentions returns the text after each @ symbol.
func Mentions(text string) []string {
	return captures(mentionPattern, text)
}

// TwitterHandles returns @-prefixed handles of at most fifteen word
// characters, without the @.
func TwitterHandles(text string) []string {
	return captures(twitterPattern, text)
}

// ImageURLs returns URLs ending in a known image extension.
func ImageURLs(text string) []string {
	return dedup(imagePattern.FindAllString(text, -1))
}

// Attachments returns URLs ending in a known document or archive extension.
func Attachments(text string) []string {
	return dedup(attachmentPattern.FindAllString(text, -1))
}

// MarkdownLinks returns the [text](url) pairs in text.
func MarkdownLinks(text string) []MarkdownLink {
	var links []MarkdownLink
	seen := make(map[string]bool)
	for _, m := range markdownLinkPattern.FindAllStringSubmatch(text, -1) {
		key := m[1] + "\x00" + m[2]
		if seen[key] {
			continue
		}
		seen[key] = true
		links = append(links, MarkdownLink{Text: m[1], URL: m[2]})
	}
	return links
}

// markdownLinkURLs is the dispatcher adapter for markdown links: the
// generic string-list contract carries the URL half of each pair.
func markdownLinkURLs(text string) []string {
	var urls []string
	for _, link := range MarkdownLinks(text) {
		urls = append(urls, link.URL)
	}
	return dedup(urls)
}

// captures collects the first capture group of every match.
func captures(re *regexp.Regexp, text string) []string {
	var values []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		values = append(values, m[1])
	}
	return dedup(values)
}
