package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"feedskill/internal/domain/entities"
	"feedskill/internal/infrastructure/feed"
)

const (
	defaultAddr        = ":8080"
	defaultFeedTimeout = 5 * time.Second
)

type Config struct {
	Addr          string
	FeedURL       string
	FeedTimeout   time.Duration
	DefaultLocale entities.Locale
	LogLevel      string
	LogFormat     string
}

// Load reads the configuration from environment variables and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment (Lambda, Docker, CI).
	_ = godotenv.Load()

	cfg := &Config{
		Addr:          os.Getenv("SKILL_ADDR"),
		FeedURL:       os.Getenv("FEED_URL"),
		DefaultLocale: entities.Locale(strings.ToLower(strings.TrimSpace(os.Getenv("DEFAULT_LOCALE")))),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		LogFormat:     os.Getenv("LOG_FORMAT"),
	}

	if raw := strings.TrimSpace(os.Getenv("FEED_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("config: FEED_TIMEOUT is invalid (%q): %w", raw, err)
		}
		cfg.FeedTimeout = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate fills defaults and checks the loaded values.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		c.Addr = defaultAddr
	}

	if strings.TrimSpace(c.FeedURL) == "" {
		c.FeedURL = feed.DefaultURL
	}
	parsed, err := url.Parse(c.FeedURL)
	if err != nil {
		return fmt.Errorf("config: FEED_URL is invalid (%q): %w", c.FeedURL, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("config: FEED_URL is invalid (%q): http(s) scheme and host required", c.FeedURL)
	}

	if c.FeedTimeout == 0 {
		c.FeedTimeout = defaultFeedTimeout
	}
	if c.FeedTimeout < 0 {
		return fmt.Errorf("config: FEED_TIMEOUT must be positive, got %s", c.FeedTimeout)
	}

	if c.DefaultLocale == "" {
		c.DefaultLocale = entities.LocaleEN
	}
	if !c.DefaultLocale.IsSupported() {
		return fmt.Errorf("config: DEFAULT_LOCALE %q is not supported (want one of %v)", c.DefaultLocale, entities.SupportedLocales)
	}

	return nil
}
