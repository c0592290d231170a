// Package httputil builds the HTTP clients used for outbound fetches.
// Requests are made once; failures surface to the caller without retries.
package httputil

import (
	"fmt"
	"net/http"
	"time"
)

// ClientConfig represents HTTP client configuration.
type ClientConfig struct {
	Timeout      time.Duration
	MaxRedirects int
}

// DefaultConfig returns the default HTTP client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		Timeout:      15 * time.Second,
		MaxRedirects: 3,
	}
}

// NewClient creates an *http.Client honoring the timeout and redirect cap.
func NewClient(config *ClientConfig) *http.Client {
	if config == nil {
		config = DefaultConfig()
	}

	maxRedirects := config.MaxRedirects
	return &http.Client{
		Timeout: config.Timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
}
