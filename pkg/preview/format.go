package preview

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lepinkainen/extract-forge/pkg/extract"
)

// FormatCompactListItem formats a link object for the list view
func FormatCompactListItem(index int, link extract.LinkObject) string {
	marker := " "
	title := link.URL

	if link.OpenGraph != nil {
		if link.OpenGraph.OK() {
			marker = "✓"
			if link.OpenGraph.Title != "" {
				title = link.OpenGraph.Title
			}
		} else {
			marker = "✗"
		}
	}

	// Truncate long titles to keep the list readable
	if len(title) > 70 {
		title = title[:67] + "..."
	}

	return fmt.Sprintf("[%d] %s %s", index+1, marker, title)
}

// FormatDetailedItem formats a link object with all OpenGraph fields
func FormatDetailedItem(link extract.LinkObject) string {
	var b strings.Builder

	b.WriteString("═══════════════════════════════════════════════════════\n")
	b.WriteString(fmt.Sprintf("URL: %s\n", link.URL))
	b.WriteString("═══════════════════════════════════════════════════════\n\n")

	og := link.OpenGraph
	if og == nil {
		b.WriteString("No OpenGraph data fetched for this link.\n")
		return b.String()
	}

	if !og.OK() {
		b.WriteString(fmt.Sprintf("Fetch error: %s\n", og.Error))
		return b.String()
	}

	fields := []struct {
		label string
		value string
	}{
		{"Title", og.Title},
		{"Description", og.Description},
		{"Image", og.Image},
		{"Site name", og.SiteName},
		{"Type", og.Type},
	}

	for _, f := range fields {
		if f.value == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("%s:\n", f.label))
		b.WriteString(wrapText(f.value, 70))
		b.WriteString("\n\n")
	}

	if !og.FetchedAt.IsZero() {
		b.WriteString(fmt.Sprintf("Fetched: %s\n", og.FetchedAt.Format("2006-01-02 15:04:05")))
	}

	return b.String()
}

// FormatJSONItem renders the link object as indented JSON
func FormatJSONItem(link extract.LinkObject) string {
	data, err := json.MarshalIndent(link, "", "  ")
	if err != nil {
		return fmt.Sprintf("failed to render JSON: %v", err)
	}
	return string(data)
}

// wrapText wraps text to the specified width, breaking at word boundaries
func wrapText(text string, width int) string {
	if width <= 0 {
		width = 70
	}
	if len(text) <= width {
		return text
	}

	var b strings.Builder
	lineLen := 0

	for i, word := range strings.Fields(text) {
		if lineLen+len(word)+1 > width && lineLen > 0 {
			b.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(word)
		lineLen += len(word)
	}

	return b.String()
}
