package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/harshlostagainn/harshcode-dev/internal/site"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	App      AppConfig      `mapstructure:"app"`
	Projects ProjectsConfig `mapstructure:"projects"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Log      LogConfig      `mapstructure:"log"`
	Site     site.Metadata  `mapstructure:"site"`
}

type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	RateLimitRPS   float64  `mapstructure:"rate_limit_rps"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	ResumeFile     string   `mapstructure:"resume_file"`
	ResumePath     string   `mapstructure:"resume_path"`
}

type AppConfig struct {
	Environment string `mapstructure:"environment"`
	Version     string `mapstructure:"version"`
}

// ProjectsConfig points at the project API. An empty APIURI means "not configured".
type ProjectsConfig struct {
	APIURI string `mapstructure:"api_uri"`
}

type CalendarConfig struct {
	APIURL   string `mapstructure:"api_url"`
	Username string `mapstructure:"username"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // "console" or "json"
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// envBindings maps config keys to the plain environment names used in .env files.
var envBindings = map[string]string{
	"server.port":             "PORT",
	"server.allowed_origins":  "ALLOWED_ORIGINS",
	"server.rate_limit_rps":   "RATE_LIMIT_RPS",
	"server.rate_limit_burst": "RATE_LIMIT_BURST",
	"server.resume_file":      "RESUME_FILE",
	"app.environment":         "APP_ENV",
	"app.version":             "APP_VERSION",
	"projects.api_uri":        "API_URI",
	"calendar.api_url":        "CALENDAR_API_URL",
	"calendar.username":       "GITHUB_USERNAME",
	"log.level":               "LOG_LEVEL",
	"log.format":              "LOG_FORMAT",
	"log.file":                "LOG_FILE",
}

// Load reads configuration from an optional config file and the environment.
// configPath may be empty, in which case config.yaml is looked up in . and ./config.
func Load(configPath string) (*Config, error) {
	cfg := defaultConfig()

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:           "8080",
			RateLimitRPS:   5,
			RateLimitBurst: 10,
			ResumePath:     "/Harsh_Dubey_Resume.pdf",
		},
		App: AppConfig{
			Environment: EnvDevelopment,
			Version:     "1.0.0",
		},
		Calendar: CalendarConfig{
			APIURL:   "https://github-contributions-api.jogruber.de",
			Username: "harshlostagainn",
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Site: site.Default(),
	}
}

func (c *Config) normalize() {
	c.App.Environment = strings.ToLower(strings.TrimSpace(c.App.Environment))
	c.Projects.APIURI = strings.TrimSpace(c.Projects.APIURI)
	c.Server.AllowedOrigins = compact(c.Server.AllowedOrigins)
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.App.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("APP_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.App.Environment)
	}

	if c.Server.RateLimitRPS <= 0 || c.Server.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}

	return nil
}

// IsDevelopment reports whether the site runs in local development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
