package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment (after .env autoload).
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	AssetsDir        string `env:"PORTFOLIO_ASSETS_DIR" envDefault:"assets"`
	AssetsURL        string `env:"PORTFOLIO_ASSETS_URL" envDefault:"/assets"`
	FallbackImageURL string `env:"PORTFOLIO_FALLBACK_IMAGE" envDefault:"https://placehold.co/800x600?text=Add+image+to+public/gallery"`
	DBPath           string `env:"PORTFOLIO_DB_PATH" envDefault:"portfolio.db"`
	Watch            bool   `env:"PORTFOLIO_WATCH" envDefault:"false"`

	Carousel CarouselConfig `envPrefix:"CAROUSEL_"`
	SMTP     SMTPConfig     `envPrefix:"SMTP_"`
	Upload   UploadConfig   `envPrefix:"UPLOAD_"`

	// ContactEmail is where contact form submissions are delivered.
	ContactEmail string `env:"TO_EMAIL" envDefault:"shubham@example.com"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT"`
}

type CarouselConfig struct {
	Interval      time.Duration `env:"INTERVAL" envDefault:"5s"`
	WheelInterval time.Duration `env:"WHEEL_INTERVAL" envDefault:"600ms"`
	ScrollFlag    time.Duration `env:"SCROLL_FLAG" envDefault:"400ms"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	MaxSessions   int           `env:"MAX_SESSIONS" envDefault:"1000"`
}

type SMTPConfig struct {
	Host string `env:"HOST" envDefault:"smtp.gmail.com"`
	Port string `env:"PORT" envDefault:"587"`
	User string `env:"USER"`
	Pass string `env:"PASS"`
}

// Configured reports whether credentials are present.
func (s SMTPConfig) Configured() bool {
	return s.User != "" && s.Pass != ""
}

type UploadConfig struct {
	// Endpoint is the object store base URL; when empty files are copied to Dir.
	Endpoint  string `env:"ENDPOINT"`
	Token     string `env:"TOKEN"`
	PublicURL string `env:"PUBLIC_URL"`
	Dir       string `env:"DIR" envDefault:"public/uploads"`
	Manifest  string `env:"MANIFEST"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses a Config from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
