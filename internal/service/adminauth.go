package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"github.com/pinehollow/storefront/internal/domain/auth"
	"github.com/pinehollow/storefront/internal/ratelimit"
	"github.com/pinehollow/storefront/internal/session"
)

// AdminAuthServiceOptions groups dependencies for AdminAuthService.
type AdminAuthServiceOptions struct {
	// Password is the configured admin secret. Empty means misconfigured:
	// every login fails with auth.ErrMisconfigured.
	Password string
	Codec    *session.Codec
	Limiter  ratelimit.Limiter
	Logger   *slog.Logger
}

// AdminAuthService orchestrates the password login flow: rate limit, then
// credential check, then token issuance. It also verifies existing session
// tokens for the route guard and the privileged action guard.
type AdminAuthService struct {
	password string
	codec    *session.Codec
	limiter  ratelimit.Limiter
	logger   *slog.Logger
}

// NewAdminAuthService constructs a new AdminAuthService.
func NewAdminAuthService(opts AdminAuthServiceOptions) *AdminAuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminAuthService{
		password: opts.Password,
		codec:    opts.Codec,
		limiter:  opts.Limiter,
		logger:   logger,
	}
}

// Login validates the supplied password for the given client key and
// returns a fresh session token. Checks run in a fixed order and
// short-circuit: rate limit, configuration, credential.
func (s *AdminAuthService) Login(ctx context.Context, password, clientKey string) (string, error) {
	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, clientKey)
		if err != nil {
			// A broken counter store must not disable throttling.
			s.logger.ErrorContext(ctx, "login rate limiter failed", "error", err)
			return "", auth.ErrRateLimited
		}
		if !allowed {
			s.logger.WarnContext(ctx, "login rate limit exceeded", "client", clientKey)
			return "", auth.ErrRateLimited
		}
	}

	if s.password == "" || s.codec == nil {
		s.logger.ErrorContext(ctx, "admin login refused: no admin password or session secret configured")
		return "", auth.ErrMisconfigured
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return "", auth.ErrInvalidCredential
	}

	token, err := s.codec.Issue()
	if err != nil {
		return "", fmt.Errorf("issue session token: %w", err)
	}
	return token, nil
}

// VerifySession verifies a session token. It is a pure local computation;
// the verdict carries no detail about why a token was rejected.
func (s *AdminAuthService) VerifySession(token string) session.Verdict {
	if s == nil || s.codec == nil {
		return session.Invalid
	}
	return s.codec.Verify(token)
}
