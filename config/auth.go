package config

import "time"

// RateLimitStore selects the backing store for login-attempt counters.
type RateLimitStore string

const (
	// RateLimitStoreMemory keeps counters in process memory. Counters are
	// per-instance: a multi-instance deployment will under-count attempts.
	RateLimitStoreMemory RateLimitStore = "memory"
	// RateLimitStoreRedis keeps counters in Redis, shared across instances.
	RateLimitStoreRedis RateLimitStore = "redis"
)

// AdminAuthConfig groups admin login and session configuration.
type AdminAuthConfig struct {
	// Password is the single admin login secret. When empty, all logins are
	// refused with a server error: misconfiguration locks the door, it never
	// leaves it open.
	Password string `env:"ADMIN_PASSWORD"`

	// SessionSecret signs admin session tokens. It is a dedicated secret with
	// no fallback; when empty, admin authentication is disabled entirely.
	SessionSecret string `env:"ADMIN_SESSION_SECRET"`

	// SessionTTL is the lifetime of an issued admin session.
	SessionTTL time.Duration `env:"ADMIN_SESSION_TTL" envDefault:"24h"`

	// LoginMaxAttempts is the number of login attempts allowed per client
	// within one LoginWindow.
	LoginMaxAttempts int `env:"ADMIN_LOGIN_MAX_ATTEMPTS" envDefault:"10"`

	// LoginWindow is the fixed rate-limit window for login attempts.
	LoginWindow time.Duration `env:"ADMIN_LOGIN_WINDOW" envDefault:"60s"`

	// BootstrapAdminEmails is a hardcoded fallback set of administrator
	// emails so that at least one admin exists before any user record is
	// written to the document store.
	BootstrapAdminEmails []string `env:"ADMIN_BOOTSTRAP_EMAILS" envSeparator:";"`

	// RateLimit selects the counter store for login attempts.
	RateLimit RateLimitStore `env:"RATE_LIMIT_STORE" envDefault:"memory"`
}

// Sanitize applies guardrails to admin auth configuration values.
func (a *AdminAuthConfig) Sanitize() {
	if a.LoginMaxAttempts < 1 {
		a.LoginMaxAttempts = 1
	}
	if a.LoginWindow <= 0 {
		a.LoginWindow = 60 * time.Second
	}
	if a.SessionTTL <= 0 {
		a.SessionTTL = 24 * time.Hour
	}
	if a.RateLimit != RateLimitStoreRedis {
		a.RateLimit = RateLimitStoreMemory
	}
}

// IdPConfig configures verification of externally issued bearer tokens
// against the identity provider.
type IdPConfig struct {
	// IssuerURL is the identity provider issuer used for discovery.
	// When empty, the bearer-token API surface is disabled.
	IssuerURL string `env:"IDP_ISSUER_URL"`

	// Timeout bounds the outbound verification call. The provider being
	// unreachable must fail the request, never hang it.
	Timeout time.Duration `env:"IDP_TIMEOUT" envDefault:"5s"`
}

// Sanitize applies guardrails to identity-provider configuration values.
func (i *IdPConfig) Sanitize() {
	if i.Timeout <= 0 {
		i.Timeout = 5 * time.Second
	}
}
