package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearEnv blanks every variable Load reads, so each test starts from a known
// state. t.Setenv also registers automatic restore when the test finishes.
func clearEnv(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("SECRET_KEY", "")
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "dev-secret-key-change-in-production", cfg.SecretKey)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9001")
	t.Setenv("ENV", "production")
	t.Setenv("SECRET_KEY", "s3cret")

	cfg := Load()

	assert.Equal(t, "9001", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "s3cret", cfg.SecretKey)
	assert.False(t, cfg.IsDevelopment())
}

func TestIsDevelopmentTreatsUnknownEnvAsDev(t *testing.T) {
	// Anything that isn't exactly "production" counts as development —
	// safer to fail toward verbose local behavior than the other way round.
	cfg := &Config{Env: "staging"}
	assert.True(t, cfg.IsDevelopment())
}
