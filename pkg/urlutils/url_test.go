package urlutils

import "testing"

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"https URL", "https://example.com/page", true},
		{"http URL", "http://example.com", true},
		{"ftp URL", "ftp://files.example.com/pub", true},
		{"missing scheme", "example.com/page", false},
		{"missing host", "https://", false},
		{"empty string", "", false},
		{"garbage", "://not-a-url", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidURL(tt.url); got != tt.want {
				t.Errorf("IsValidURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestIsHTTPURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"https URL", "https://example.com/page", true},
		{"http URL", "http://example.com", true},
		{"ftp URL", "ftp://files.example.com/pub", false},
		{"mailto link", "mailto:user@example.com", false},
		{"relative path", "/images/logo.png", false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHTTPURL(tt.url); got != tt.want {
				t.Errorf("IsHTTPURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestHost(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"plain host", "https://example.com/page", "example.com"},
		{"host with port", "http://localhost:8080/api", "localhost:8080"},
		{"no host", "/relative/path", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Host(tt.url); got != tt.want {
				t.Errorf("Host(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		relative string
		want     string
	}{
		{"relative path", "https://example.com/articles/1", "/images/og.png", "https://example.com/images/og.png"},
		{"relative without slash", "https://example.com/articles/", "og.png", "https://example.com/articles/og.png"},
		{"already absolute", "https://example.com", "https://cdn.example.com/og.png", "https://cdn.example.com/og.png"},
		{"protocol relative", "https://example.com", "//cdn.example.com/og.png", "https://cdn.example.com/og.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveURL(tt.base, tt.relative)
			if err != nil {
				t.Fatalf("ResolveURL(%q, %q) returned error: %v", tt.base, tt.relative, err)
			}
			if got != tt.want {
				t.Errorf("ResolveURL(%q, %q) = %q, want %q", tt.base, tt.relative, got, tt.want)
			}
		})
	}
}
