package main

import (
	"fmt"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/harshlostagainn/harshcode-dev/internal/calendar"
	"github.com/harshlostagainn/harshcode-dev/internal/config"
	"github.com/harshlostagainn/harshcode-dev/internal/handlers"
	"github.com/harshlostagainn/harshcode-dev/internal/logger"
	"github.com/harshlostagainn/harshcode-dev/internal/projects"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return err
	}

	log, closer, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	h, err := newHandler(cfg, log)
	if err != nil {
		return err
	}
	tracker, err := newVisitorTracker(logger.Component(log, "analytics"))
	if err != nil {
		return err
	}

	r, err := newRouter(cfg, log, h, tracker)
	if err != nil {
		return err
	}

	log.Info().
		Str("port", cfg.Server.Port).
		Str("env", cfg.App.Environment).
		Bool("projects_api", cfg.Projects.APIURI != "").
		Msg("server starting")
	return r.Run(":" + cfg.Server.Port)
}

func newHandler(cfg *config.Config, log zerolog.Logger) (*handlers.Handler, error) {
	feedCfg := projects.FeedConfig{
		Endpoint:    cfg.Projects.APIURI,
		Development: cfg.IsDevelopment(),
	}
	client := projects.NewClient(cfg.Projects.APIURI, http.DefaultClient)

	// Without a file on disk there is nothing to link to.
	resumePath := ""
	if cfg.Server.ResumeFile != "" {
		resumePath = cfg.Server.ResumePath
	}

	return handlers.New(handlers.Options{
		Site:       cfg.Site,
		Feed:       projects.NewFeed(feedCfg, client, logger.Component(log, "projects")),
		Calendar:   calendar.NewClient(cfg.Calendar.APIURL),
		Username:   cfg.Calendar.Username,
		ResumePath: resumePath,
		Version:    cfg.App.Version,
		Logger:     logger.Component(log, "handlers"),
	})
}
