package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/harshlostagainn/harshcode-dev/internal/content"
	"github.com/harshlostagainn/harshcode-dev/internal/site"
)

func (h *Handler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, "index.html", site.Page{Title: "Home", Path: "/"}, gin.H{
		"greeting":           content.Greeting,
		"aboutIntro":         content.AboutIntro,
		"aboutWorkBefore":    content.AboutWorkBefore,
		"aboutWorkHighlight": content.AboutWorkHighlight,
		"aboutWorkAfter":     content.AboutWorkAfter,
		"resumePath":         h.resumePath,
	})
}

func (h *Handler) Timeline(c *gin.Context) {
	h.render(c, http.StatusOK, "timeline.html", site.Page{
		Title:       "About",
		Description: content.TimelineSubtitle,
		Path:        "/timeline",
	}, gin.H{
		"prompt":   content.TimelinePrompt,
		"subtitle": content.TimelineSubtitle,
		"commits":  h.commits,
	})
}

// Work renders the page shell. The calendar and project list are loaded
// by HTMX once the page is on screen.
func (h *Handler) Work(c *gin.Context) {
	h.render(c, http.StatusOK, "work.html", site.Page{Title: "Projects", Path: "/work"}, gin.H{
		"viewID": uuid.NewString(),
	})
}

func (h *Handler) Uses(c *gin.Context) {
	h.render(c, http.StatusOK, "uses.html", site.Page{
		Title:       "Uses",
		Description: content.UsesIntro,
		Path:        "/uses",
	}, gin.H{
		"intro":    content.UsesIntro,
		"outro":    content.UsesOutro,
		"sections": h.sections,
	})
}
