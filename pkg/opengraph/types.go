package opengraph

import "time"

// Record is the OpenGraph metadata extracted for one URL. A non-empty
// Error means the fetch or parse failed; the remaining fields are then
// untrusted. Fetches never surface as Go errors, only as error-tagged
// records.
type Record struct {
	URL         string    `json:"url"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	SiteName    string    `json:"site_name,omitempty"`
	Type        string    `json:"type,omitempty"`
	Error       string    `json:"error,omitempty"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// OK reports whether the fetch behind this record succeeded.
func (r *Record) OK() bool {
	return r.Error == ""
}
