package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pinehollow/storefront/internal/domain/auth"
	"github.com/pinehollow/storefront/internal/ports"
)

// BearerAuthServiceOptions groups dependencies for BearerAuthService.
type BearerAuthServiceOptions struct {
	Verifier ports.TokenVerifier
	// Directory resolves user records for the role lookup. May be nil, in
	// which case only the bootstrap list grants admin status.
	Directory ports.AdminDirectory
	// BootstrapAdminEmails always grant admin status, so at least one
	// administrator exists before any user record is written.
	BootstrapAdminEmails []string
	Logger               *slog.Logger
}

// BearerAuthService authorizes external API callers that present an
// identity-provider bearer token instead of the admin session cookie. It is
// the second adapter onto the same question the cookie path answers: is
// this caller an administrator.
type BearerAuthService struct {
	verifier  ports.TokenVerifier
	directory ports.AdminDirectory
	bootstrap map[string]struct{}
	logger    *slog.Logger
}

// NewBearerAuthService constructs a new BearerAuthService.
func NewBearerAuthService(opts BearerAuthServiceOptions) *BearerAuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	bootstrap := make(map[string]struct{}, len(opts.BootstrapAdminEmails))
	for _, email := range opts.BootstrapAdminEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			bootstrap[email] = struct{}{}
		}
	}
	return &BearerAuthService{
		verifier:  opts.Verifier,
		directory: opts.Directory,
		bootstrap: bootstrap,
		logger:    logger,
	}
}

// Authenticate resolves the identity behind a raw bearer token. Any
// provider rejection (expired, malformed, revoked) or unreachable provider
// fails authentication; callers surface all of it as one generic
// unauthorized response.
func (s *BearerAuthService) Authenticate(ctx context.Context, rawToken string) (auth.Identity, error) {
	if rawToken == "" {
		return auth.Identity{}, auth.ErrUnauthenticated
	}
	if s.verifier == nil {
		return auth.Identity{}, auth.ErrMisconfigured
	}

	identity, err := s.verifier.Verify(ctx, rawToken)
	if err != nil {
		if errors.Is(err, auth.ErrUpstreamUnavailable) {
			s.logger.WarnContext(ctx, "bearer verification upstream failure", "error", err)
			return auth.Identity{}, err
		}
		return auth.Identity{}, fmt.Errorf("%w: %w", auth.ErrInvalidCredential, err)
	}
	return identity, nil
}

// IsAdmin resolves administrator status for an authenticated identity: the
// bootstrap email list first (no I/O), then one document read of the user
// record's role field.
func (s *BearerAuthService) IsAdmin(ctx context.Context, identity auth.Identity) (bool, error) {
	if _, ok := s.bootstrap[strings.ToLower(identity.Email)]; ok {
		return true, nil
	}

	if s.directory == nil || identity.UserID == "" {
		return false, nil
	}

	record, err := s.directory.Lookup(ctx, identity.UserID)
	if errors.Is(err, ports.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup admin record: %w", err)
	}
	return record.IsAdmin(), nil
}
