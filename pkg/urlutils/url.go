// Package urlutils provides URL helper functions shared by the extractors
// and the OpenGraph fetcher.
package urlutils

import "net/url"

// IsValidURL checks if a URL parses and has both a scheme and a host.
func IsValidURL(urlStr string) bool {
	u, err := url.Parse(urlStr)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// IsHTTPURL checks if a URL is a fetchable http or https URL.
func IsHTTPURL(urlStr string) bool {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// Host returns the host part of a URL, or the empty string when the URL
// does not parse.
func Host(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Host
}

// ResolveURL resolves a relative URL against a base URL.
// If the URL is already absolute, it returns it unchanged.
func ResolveURL(baseURL, relativeURL string) (string, error) {
	rel, err := url.Parse(relativeURL)
	if err != nil {
		return "", err
	}

	if rel.IsAbs() {
		return relativeURL, nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}

	return base.ResolveReference(rel).String(), nil
}
