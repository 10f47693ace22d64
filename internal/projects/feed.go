package projects

import (
	"context"

	"github.com/rs/zerolog"
)

// Fetcher retrieves the live project list.
type Fetcher interface {
	List(ctx context.Context) ([]Project, error)
}

// Feed applies the fetch-with-fallback policy for one page view.
type Feed struct {
	cfg     FeedConfig
	fetcher Fetcher
	log     zerolog.Logger
}

func NewFeed(cfg FeedConfig, fetcher Fetcher, log zerolog.Logger) *Feed {
	return &Feed{cfg: cfg, fetcher: fetcher, log: log}
}

// Load makes at most one fetch attempt and returns the list to display.
// Failures are logged and replaced by the fallback list.
func (f *Feed) Load(ctx context.Context) []Project {
	if !ShouldFetch(f.cfg) {
		f.log.Debug().Msg("development mode without API endpoint, using fallback projects")
		return Resolve(f.cfg, FetchResult{})
	}

	list, err := f.fetcher.List(ctx)
	res := FetchResult{Attempted: true, Projects: list, Err: err}
	if err != nil {
		f.log.Warn().Err(err).Msg("failed to fetch projects, using fallback list")
	}
	return Resolve(f.cfg, res)
}
