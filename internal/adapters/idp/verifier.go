package idp

// Package idp verifies externally issued bearer tokens against the
// identity provider. Verification is remote: the token is forwarded to the
// provider's userinfo (introspection) endpoint and the resolved principal
// is read back. Nothing is cached or persisted locally.

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/pinehollow/storefront/internal/domain/auth"
)

// Config holds configuration for the identity-provider verifier.
type Config struct {
	// IssuerURL is the provider issuer used for endpoint discovery.
	IssuerURL string
	// Timeout bounds each outbound verification call. Defaults to 5s.
	Timeout time.Duration
	// HTTPClient is optional; a client with Timeout is built when nil.
	HTTPClient *http.Client
}

// Verifier resolves bearer tokens to identities via the provider.
type Verifier struct {
	provider   *gooidc.Provider
	httpClient *http.Client
	timeout    time.Duration
}

// NewVerifier performs provider discovery and returns a verifier.
func NewVerifier(ctx context.Context, cfg Config) (*Verifier, error) {
	if cfg.IssuerURL == "" {
		return nil, errors.New("issuer URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	issuer := strings.TrimSuffix(cfg.IssuerURL, "/")
	provider, err := gooidc.NewProvider(gooidc.ClientContext(ctx, httpClient), issuer)
	if err != nil {
		return nil, fmt.Errorf("discover identity provider: %w", err)
	}

	return &Verifier{
		provider:   provider,
		httpClient: httpClient,
		timeout:    timeout,
	}, nil
}

// Verify forwards the raw token to the provider and returns the resolved
// identity. Timeouts and unreachable-provider failures map to
// auth.ErrUpstreamUnavailable; everything else is a token rejection. The
// call is never retried within the request.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (auth.Identity, error) {
	if rawToken == "" {
		return auth.Identity{}, errors.New("empty bearer token")
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()
	ctx = gooidc.ClientContext(ctx, v.httpClient)

	source := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: rawToken,
		TokenType:   "Bearer",
	})
	info, err := v.provider.UserInfo(ctx, source)
	if err != nil {
		if isUnreachable(ctx, err) {
			return auth.Identity{}, fmt.Errorf("%w: %w", auth.ErrUpstreamUnavailable, err)
		}
		return auth.Identity{}, fmt.Errorf("verify bearer token: %w", err)
	}
	if info.Subject == "" {
		return auth.Identity{}, errors.New("userinfo response missing subject")
	}

	return auth.Identity{
		UserID: info.Subject,
		Email:  info.Email,
	}, nil
}

// isUnreachable distinguishes transport failures from token rejections.
func isUnreachable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
