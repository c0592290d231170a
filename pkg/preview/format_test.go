package preview

import (
	"strings"
	"testing"

	"github.com/lepinkainen/extract-forge/pkg/extract"
	"github.com/lepinkainen/extract-forge/pkg/opengraph"
	"github.com/lepinkainen/extract-forge/pkg/testutil"
)

func TestFormatCompactListItem(t *testing.T) {
	tests := []struct {
		name string
		link extract.LinkObject
		want string
	}{
		{
			name: "no metadata shows URL",
			link: extract.LinkObject{URL: "https://example.com/page"},
			want: "[1]   https://example.com/page",
		},
		{
			name: "successful fetch shows title",
			link: extract.LinkObject{
				URL:       "https://example.com/page",
				OpenGraph: &opengraph.Record{URL: "https://example.com/page", Title: "Example Page"},
			},
			want: "[1] ✓ Example Page",
		},
		{
			name: "failed fetch keeps URL with error marker",
			link: extract.LinkObject{
				URL:       "https://example.com/down",
				OpenGraph: &opengraph.Record{URL: "https://example.com/down", Error: "HTTP error: 500"},
			},
			want: "[1] ✗ https://example.com/down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCompactListItem(0, tt.link); got != tt.want {
				t.Errorf("FormatCompactListItem() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatCompactListItem_TruncatesLongTitles(t *testing.T) {
	link := extract.LinkObject{
		URL: "https://example.com",
		OpenGraph: &opengraph.Record{
			URL:   "https://example.com",
			Title: strings.Repeat("a", 100),
		},
	}

	got := FormatCompactListItem(0, link)
	want := "[1] ✓ " + strings.Repeat("a", 67) + "..."
	if got != want {
		t.Errorf("FormatCompactListItem() = %q, want %q", got, want)
	}
}

func TestFormatDetailedItem_Golden(t *testing.T) {
	link := extract.LinkObject{
		URL: "https://example.com/article",
		OpenGraph: &opengraph.Record{
			URL:         "https://example.com/article",
			Title:       "Example Article",
			Description: "A short description.",
			Image:       "https://example.com/og.png",
			SiteName:    "example.com",
			Type:        "article",
		},
	}

	testutil.CompareGolden(t, "testdata/detail.golden", FormatDetailedItem(link))
}

func TestFormatDetailedItem_Error(t *testing.T) {
	link := extract.LinkObject{
		URL: "https://example.com/down",
		OpenGraph: &opengraph.Record{
			URL:   "https://example.com/down",
			Error: "HTTP error: 500 Internal Server Error",
		},
	}

	got := FormatDetailedItem(link)
	if !strings.Contains(got, "Fetch error: HTTP error: 500 Internal Server Error") {
		t.Errorf("FormatDetailedItem() missing fetch error, got:\n%s", got)
	}
	if strings.Contains(got, "Title:") {
		t.Errorf("FormatDetailedItem() rendered fields for a failed fetch:\n%s", got)
	}
}

func TestFormatDetailedItem_NoMetadata(t *testing.T) {
	got := FormatDetailedItem(extract.LinkObject{URL: "https://example.com"})
	if !strings.Contains(got, "No OpenGraph data fetched") {
		t.Errorf("FormatDetailedItem() = %q, want no-metadata notice", got)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{
			name:  "short text unchanged",
			text:  "hello world",
			width: 70,
			want:  "hello world",
		},
		{
			name:  "wraps at word boundary",
			text:  "one two three four",
			width: 9,
			want:  "one two\nthree\nfour",
		},
		{
			name:  "zero width uses default",
			text:  "short",
			width: 0,
			want:  "short",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapText(tt.text, tt.width); got != tt.want {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
