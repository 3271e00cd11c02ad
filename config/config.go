package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: Admin authentication and identity-provider configuration
//   - database.go: Document store and Redis configuration
//   - http.go: HTTP server configuration
//   - notify.go: Outbound notification (SMTP) configuration
type AppConfig struct {
	// IsDev controls development mode behavior (insecure cookies on plain
	// HTTP, verbose logging). Set DEV=true or NODE_ENV=development.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Admin authentication configuration
	Auth AdminAuthConfig

	// External identity provider configuration (bearer-token path)
	IdP IdPConfig

	// Document store and cache configuration
	Mongo MongoConfig
	Redis RedisConfig

	// HTTP server configuration
	HTTP HTTPConfig

	// Outbound notification configuration
	SMTP SMTPConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Auth.Sanitize()
	c.IdP.Sanitize()
	c.HTTP.Sanitize()

	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
