package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harshlostagainn/harshcode-dev/internal/config"
	"github.com/harshlostagainn/harshcode-dev/internal/handlers"
	"github.com/harshlostagainn/harshcode-dev/internal/middleware"
	"github.com/harshlostagainn/harshcode-dev/web"
)

func newRouter(cfg *config.Config, log zerolog.Logger, h *handlers.Handler, tracker *visitorTracker) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.SecurityHeaders(),
		tracker.Middleware(),
	)
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", http.FS(web.Static()))
	if cfg.Server.ResumeFile != "" {
		r.StaticFile(cfg.Server.ResumePath, cfg.Server.ResumeFile)
	}

	fragmentLimit := middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst).Middleware()
	setupRoutes(r, h, fragmentLimit)

	api := r.Group("/api")
	api.Use(corsMiddleware(cfg.Server.AllowedOrigins))
	api.Use(middleware.NewRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst).Middleware())
	api.GET("/projects", h.APIProjects)

	return r, nil
}

func setupRoutes(r *gin.Engine, h *handlers.Handler, fragmentLimit gin.HandlerFunc) {
	// Pages
	r.GET("/", h.Home)
	r.GET("/timeline", h.Timeline)
	r.GET("/work", h.Work)
	r.GET("/uses", h.Uses)

	// HTMX fragments
	r.GET("/work/projects", h.ProjectsContent)
	r.GET("/work/calendar", fragmentLimit, h.CalendarContent)

	r.GET("/health", h.Health)
	r.GET("/healthz", h.Health)

	r.NoRoute(h.NotFound)
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cc := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
	}
	if len(origins) == 0 {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = origins
	}
	return cors.New(cc)
}
