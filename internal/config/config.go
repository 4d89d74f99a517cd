// Package config handles loading and validating runtime configuration for the app.
// Configuration values (like the port and the environment name) are read from
// environment variables rather than being hardcoded. This follows the "12-factor app"
// methodology, which recommends storing config in the environment so the same binary
// can run in dev, staging, and production without changing any code — just swap the
// environment variables. Container platforms (Cloud Run, Render, Railway, ECS) all
// use exactly this mechanism: they inject PORT and expect the app to listen on it.
package config

import (
	"os"

	// godotenv reads a .env file and loads its key=value pairs into the process environment.
	// This is convenient in development: create a .env file with your settings and they're
	// automatically available as environment variables. In production, real env vars are used instead.
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values for the application.
// Using a struct groups related settings together and makes them easy to pass around.
type Config struct {
	Port      string // The TCP port the HTTP server will listen on (e.g., "8080")
	Env       string // The runtime environment: "development" or "production"
	SecretKey string // Secret used for signing; never ship the default to production
}

// IsDevelopment reports whether the app is running in development mode.
// Development mode prints a friendly startup banner with the URLs to visit.
func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}

// Load reads configuration from environment variables and returns a populated Config.
// It first tries to load a .env file for local development. The underscore (_) discards
// the error from godotenv.Load — if there's no .env file (e.g., in production), that's fine.
func Load() *Config {
	// Attempt to load a .env file from the current working directory.
	// The error is intentionally ignored: missing .env is acceptable in production
	// because real environment variables will already be set by the deployment platform.
	_ = godotenv.Load()

	// os.Getenv returns the value of an environment variable, or "" if it isn't set.
	// We provide sensible defaults so the app runs out of the box with zero setup.
	port := os.Getenv("PORT")
	if port == "" {
		// Default to port 8080 if none is specified — the standard for HTTP dev servers.
		// Hosting platforms override this by setting their own PORT before starting us.
		port = "8080"
	}

	env := os.Getenv("ENV")
	if env == "" {
		// Default to "development" so local runs don't accidentally behave like production
		env = "development"
	}

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		// An obviously-fake default so the app still starts locally with zero setup.
		// Real deployments must set SECRET_KEY in the environment.
		secret = "dev-secret-key-change-in-production"
	}

	// Return a pointer to a Config struct populated with all values.
	// Using a pointer (*Config) avoids copying the struct everywhere it's passed.
	return &Config{
		Port:      port,
		Env:       env,
		SecretKey: secret,
	}
}
