package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime settings for the site. Values come from the
// environment, optionally seeded from a .env file.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	GinMode   string `env:"GIN_MODE"`
	ImagesDir string `env:"IMAGES_DIR" envDefault:"./images"`

	ContactEmail string `env:"CONTACT_EMAIL" envDefault:"vibhor.sharma24.vs@gmail.com"`
	GitHubURL    string `env:"GITHUB_URL" envDefault:"https://github.com/s58vshar?tab=repositories"`
	LinkedInURL  string `env:"LINKEDIN_URL" envDefault:"https://www.linkedin.com/in/sharma-vibhor15/"`
	ResumePath   string `env:"RESUME_PATH" envDefault:"/images/resume.pdf"`
	PrivacyURL   string `env:"PRIVACY_URL" envDefault:"#"`
	ImprintURL   string `env:"IMPRINT_URL" envDefault:"#"`

	// ThemeCookieMaxAge is in seconds.
	ThemeCookieMaxAge int  `env:"THEME_COOKIE_MAX_AGE" envDefault:"31536000"`
	CookieSecure      bool `env:"COOKIE_SECURE" envDefault:"false"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	return cfg, nil
}
