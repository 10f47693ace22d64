// Package handlers serves the site's pages, HTMX fragments and JSON API.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harshlostagainn/harshcode-dev/internal/calendar"
	"github.com/harshlostagainn/harshcode-dev/internal/content"
	"github.com/harshlostagainn/harshcode-dev/internal/projects"
	"github.com/harshlostagainn/harshcode-dev/internal/site"
)

// CalendarSource returns a user's daily contribution counts.
type CalendarSource interface {
	Fetch(ctx context.Context, username string) ([]calendar.Day, error)
}

type Options struct {
	Site       site.Metadata
	Feed       *projects.Feed
	Calendar   CalendarSource
	Username   string
	ResumePath string
	Version    string
	Logger     zerolog.Logger
}

type Handler struct {
	site       site.Metadata
	feed       *projects.Feed
	calendar   CalendarSource
	views      *calendar.Views
	username   string
	resumePath string
	version    string
	commits    []content.Commit
	sections   []content.Section
	log        zerolog.Logger
	now        func() time.Time
}

// New loads the embedded page content and returns a Handler.
func New(opts Options) (*Handler, error) {
	commits, err := content.Commits()
	if err != nil {
		return nil, fmt.Errorf("load timeline: %w", err)
	}
	sections, err := content.Sections()
	if err != nil {
		return nil, fmt.Errorf("load uses: %w", err)
	}

	return &Handler{
		site:       opts.Site,
		feed:       opts.Feed,
		calendar:   opts.Calendar,
		views:      calendar.NewViews(),
		username:   opts.Username,
		resumePath: opts.ResumePath,
		version:    opts.Version,
		commits:    commits,
		sections:   sections,
		log:        opts.Logger,
		now:        time.Now,
	}, nil
}

// render executes a full page template with the shared layout data.
func (h *Handler) render(c *gin.Context, status int, name string, page site.Page, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["head"] = site.NewHead(h.site, page)
	data["nav"] = site.Navigation
	data["site"] = h.site
	data["path"] = page.Path
	c.HTML(status, name, data)
}

// NotFound renders the 404 page for unmatched routes.
func (h *Handler) NotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, "404.html", site.Page{
		Title: "404",
		Path:  c.Request.URL.Path,
	}, nil)
}
