package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/tracker"
	"github.com/Zachkp/portfolio/internal/viewport"
)

// Config is read from the environment; a .env file is loaded first by
// godotenv/autoload.
type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	TemplatesGlob string `env:"PORTFOLIO_TEMPLATES" envDefault:"templates/*"`
	StaticDir     string `env:"PORTFOLIO_STATIC_DIR" envDefault:"./static"`
	ImagesDir     string `env:"PORTFOLIO_IMAGES_DIR" envDefault:"./images"`
	ContentFile   string `env:"PORTFOLIO_CONTENT_FILE"`
	DatabaseDSN   string `env:"PORTFOLIO_DB"`
	// ContactEmail receives contact form submissions.
	ContactEmail string `env:"TO_EMAIL" envDefault:"zachkordaspotter@gmail.com"`

	Tracker  TrackerConfig  `envPrefix:"PORTFOLIO_TRACKER_"`
	Viewport ViewportConfig `envPrefix:"PORTFOLIO_"`
	SMTP     SMTPConfig     `envPrefix:"SMTP_"`
	Admin    AdminConfig    `envPrefix:"ADMIN_"`
}

type TrackerConfig struct {
	Strategy   string  `env:"STRATEGY" envDefault:"intersection"`
	Threshold  float64 `env:"THRESHOLD" envDefault:"0.5"`
	Offset     float64 `env:"OFFSET" envDefault:"100"`
	Expression string  `env:"EXPR"`
}

type ViewportConfig struct {
	ScrollThreshold float64 `env:"SCROLL_THRESHOLD" envDefault:"50"`
	Breakpoint      float64 `env:"BREAKPOINT" envDefault:"1280"`
}

type SMTPConfig struct {
	Host string `env:"HOST" envDefault:"smtp.gmail.com"`
	Port string `env:"PORT" envDefault:"587"`
	User string `env:"USER"`
	Pass string `env:"PASS"`
}

type AdminConfig struct {
	Username string `env:"USERNAME" envDefault:"admin"`
	Password string `env:"PASSWORD" envDefault:"admin123"`
	// Secret signs admin session tokens. A random secret is generated per
	// process when empty.
	Secret string `env:"SECRET"`
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if c.Viewport.ScrollThreshold < 0 {
		return fmt.Errorf("PORTFOLIO_SCROLL_THRESHOLD must not be negative")
	}
	if c.Viewport.Breakpoint <= 0 {
		return fmt.Errorf("PORTFOLIO_BREAKPOINT must be positive")
	}
	if _, err := c.predicate(); err != nil {
		return err
	}
	return nil
}

func (c *Config) predicate() (tracker.Predicate, error) {
	return tracker.ParseStrategy(tracker.StrategyConfig{
		Name:       c.Tracker.Strategy,
		Threshold:  &c.Tracker.Threshold,
		Offset:     &c.Tracker.Offset,
		Expression: c.Tracker.Expression,
	})
}

// PageOptions returns the options every page view is built with.
func (c *Config) PageOptions() (page.Options, error) {
	p, err := c.predicate()
	if err != nil {
		return page.Options{}, err
	}
	return page.Options{
		Predicate: p,
		Viewport: viewport.Options{
			ScrollThreshold: c.Viewport.ScrollThreshold,
			Breakpoint:      c.Viewport.Breakpoint,
		},
	}, nil
}
