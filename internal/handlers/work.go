package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/harshlostagainn/harshcode-dev/internal/calendar"
	"github.com/harshlostagainn/harshcode-dev/internal/icons"
	"github.com/harshlostagainn/harshcode-dev/internal/projects"
)

// ProjectCard is a project plus the icon for its language, if one is known.
type ProjectCard struct {
	projects.Project
	Icon    icons.Icon
	HasIcon bool
}

func cards(list []projects.Project) []ProjectCard {
	out := make([]ProjectCard, 0, len(list))
	for _, p := range list {
		icon, ok := icons.Lookup(p.Language)
		out = append(out, ProjectCard{Project: p, Icon: icon, HasIcon: ok})
	}
	return out
}

// ProjectsContent returns the project cards fragment that replaces the
// loading indicator.
func (h *Handler) ProjectsContent(c *gin.Context) {
	list := h.feed.Load(c.Request.Context())
	c.HTML(http.StatusOK, "projects.html", gin.H{
		"projects": cards(list),
	})
}

// APIProjects returns the resolved project list as JSON.
func (h *Handler) APIProjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.feed.Load(c.Request.Context()))
}

// CalendarContent returns the contribution grid sized for the client's
// viewport width. A missing or malformed width shows the full year.
//
// The series is fetched once per page view, identified by the view id the
// work page hands out; resizes re-filter it. A failed fetch answers 204 so
// HTMX leaves whatever grid is already on screen.
func (h *Handler) CalendarContent(c *gin.Context) {
	months := calendar.MaxMonths
	if width, ok := parseIntParam(c, "width"); ok {
		months = calendar.MonthsToShow(width)
	}

	viewID := viewParam(c)
	days, ok := h.views.Get(viewID)
	if !ok {
		fetched, err := h.calendar.Fetch(c.Request.Context(), h.username)
		if err != nil {
			h.log.Warn().Err(err).Str("username", h.username).Msg("failed to fetch contributions")
			c.Status(http.StatusNoContent)
			return
		}
		h.views.Put(viewID, fetched)
		days = fetched
	}
	days = calendar.Filter(days, months, h.now())

	c.HTML(http.StatusOK, "calendar.html", gin.H{
		"months": months,
		"days":   days,
		"weeks":  calendar.Weeks(days),
		"total":  calendar.Total(days),
	})
}

// viewParam returns the page view id, or "" when it is missing or not one
// the work page could have issued.
func viewParam(c *gin.Context) string {
	id, err := uuid.Parse(c.Query("view"))
	if err != nil {
		return ""
	}
	return id.String()
}

func parseIntParam(c *gin.Context, name string) (int, bool) {
	val := c.Query(name)
	if val == "" {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return n, true
}
