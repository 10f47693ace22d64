package projects

import "errors"

// ErrNotConfigured is reported when no endpoint is set outside development.
var ErrNotConfigured = errors.New("project API endpoint is not configured")

// FeedConfig is the part of the configuration the feed policy depends on.
type FeedConfig struct {
	Endpoint    string
	Development bool
}

// FetchResult is the outcome of a fetch attempt. Attempted is false when no
// request was made.
type FetchResult struct {
	Attempted bool
	Projects  []Project
	Err       error
}

// ShouldFetch reports whether a network request should be made at all.
// Local development without an endpoint goes straight to the fallback list.
func ShouldFetch(cfg FeedConfig) bool {
	return !(cfg.Development && cfg.Endpoint == "")
}

// Resolve picks the list to display from the configuration and the fetch
// outcome. It never returns nil.
func Resolve(cfg FeedConfig, res FetchResult) []Project {
	if !ShouldFetch(cfg) || !res.Attempted || res.Err != nil {
		return Fallback()
	}
	if res.Projects == nil {
		return []Project{}
	}
	return res.Projects
}
