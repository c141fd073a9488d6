package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Port int `env:"PORTFOLIO_TEST_PORT" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	require.NoError(t, ParseEnv(&cfg))
	assert.Equal(t, 123, cfg.Port)
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("PORTFOLIO_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "assets", cfg.AssetsDir)
	assert.Equal(t, "/assets", cfg.AssetsURL)
	assert.Equal(t, 5*time.Second, cfg.Carousel.Interval)
	assert.Equal(t, 600*time.Millisecond, cfg.Carousel.WheelInterval)
	assert.Equal(t, 400*time.Millisecond, cfg.Carousel.ScrollFlag)
	assert.Equal(t, 1000, cfg.Carousel.MaxSessions)
	assert.Equal(t, "public/uploads", cfg.Upload.Dir)
}

func TestLoadNestedPrefixes(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SMTP_HOST", "mail.example.com")
	t.Setenv("SMTP_USER", "me")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("CAROUSEL_WHEEL_INTERVAL", "1s")
	t.Setenv("UPLOAD_ENDPOINT", "https://store.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "mail.example.com", cfg.SMTP.Host)
	assert.True(t, cfg.SMTP.Configured())
	assert.Equal(t, time.Second, cfg.Carousel.WheelInterval)
	assert.Equal(t, "https://store.example.com", cfg.Upload.Endpoint)
}
