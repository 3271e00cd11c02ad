package idp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinehollow/storefront/internal/domain/auth"
)

// fakeIdP serves an OIDC discovery document and a userinfo endpoint that
// accepts exactly one bearer token.
func fakeIdP(t *testing.T, validToken string, userinfoDelay time.Duration) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	mux.HandleFunc("/.well-known/openid-configuration", func(w http.ResponseWriter, _ *http.Request) {
		doc := map[string]any{
			"issuer":                 server.URL,
			"authorization_endpoint": server.URL + "/auth",
			"token_endpoint":         server.URL + "/token",
			"userinfo_endpoint":      server.URL + "/userinfo",
			"jwks_uri":               server.URL + "/keys",
		}
		_ = json.NewEncoder(w).Encode(doc)
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if userinfoDelay > 0 {
			time.Sleep(userinfoDelay)
		}
		if r.Header.Get("Authorization") != "Bearer "+validToken {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"sub":   "user-42",
			"email": "jordan@example.com",
		})
	})

	return server
}

func TestNewVerifier_RequiresIssuer(t *testing.T) {
	_, err := NewVerifier(context.Background(), Config{})
	require.Error(t, err)
}

func TestVerifier_ValidToken(t *testing.T) {
	server := fakeIdP(t, "good-token", 0)
	verifier, err := NewVerifier(context.Background(), Config{IssuerURL: server.URL})
	require.NoError(t, err)

	identity, err := verifier.Verify(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, auth.Identity{UserID: "user-42", Email: "jordan@example.com"}, identity)
}

func TestVerifier_RejectedToken(t *testing.T) {
	server := fakeIdP(t, "good-token", 0)
	verifier, err := NewVerifier(context.Background(), Config{IssuerURL: server.URL})
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), "revoked-token")
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrUpstreamUnavailable)
}

func TestVerifier_EmptyToken(t *testing.T) {
	server := fakeIdP(t, "good-token", 0)
	verifier, err := NewVerifier(context.Background(), Config{IssuerURL: server.URL})
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), "")
	require.Error(t, err)
}

func TestVerifier_TimeoutIsUpstreamFailure(t *testing.T) {
	server := fakeIdP(t, "good-token", 500*time.Millisecond)
	verifier, err := NewVerifier(context.Background(), Config{
		IssuerURL: server.URL,
		Timeout:   50 * time.Millisecond,
	})
	require.NoError(t, err)

	start := time.Now()
	_, err = verifier.Verify(context.Background(), "good-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrUpstreamUnavailable)
	assert.Less(t, time.Since(start), 400*time.Millisecond, "must fail fast, not hang")
}
