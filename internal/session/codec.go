package session

// Package session issues and verifies the signed, time-limited admin
// session token. Tokens are stateless: validity is entirely a function of
// signature and expiry, recomputed on every verification, so the route
// guard never touches a database.

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pinehollow/storefront/internal/domain/auth"
)

// Verdict is the tagged result of verifying a token. Callers branch on
// Valid; there is deliberately no error and no indication of which
// sub-check failed, so a malformed token cannot be told apart from an
// expired or tampered one.
type Verdict struct {
	Valid bool
	Role  auth.Role
}

// Invalid is the uniform rejection verdict.
var Invalid = Verdict{}

// claims is the signed token payload. Timestamps are Unix milliseconds.
type claims struct {
	Role      string `json:"role"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
	ID        string `json:"jti"`
}

type header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ"`
}

// Codec signs and verifies admin session tokens with HMAC-SHA256.
type Codec struct {
	secret []byte
	ttl    time.Duration

	now func() time.Time // overridable for tests
}

// NewCodec creates a codec from the dedicated signing secret. An empty
// secret is a hard error: there is no fallback secret, so a misconfigured
// deployment cannot issue forgeable sessions.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("session signing secret is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a fresh token asserting the admin role, valid for the
// configured lifetime. Tokens are immutable once issued; renewal means
// re-issuing.
func (c *Codec) Issue() (string, error) {
	now := c.now()

	head, err := json.Marshal(header{Alg: "HS256", Typ: "JWT"})
	if err != nil {
		return "", err
	}
	payload, err := json.Marshal(claims{
		Role:      string(auth.RoleAdmin),
		IssuedAt:  now.UnixMilli(),
		ExpiresAt: now.Add(c.ttl).UnixMilli(),
		ID:        uuid.NewString(),
	})
	if err != nil {
		return "", err
	}

	enc := base64.RawURLEncoding
	signing := enc.EncodeToString(head) + "." + enc.EncodeToString(payload)
	return signing + "." + enc.EncodeToString(c.sign(signing)), nil
}

// Verify checks structure, signature, and expiry. Every failure collapses
// to the same Invalid verdict. It never panics across the boundary.
func (c *Codec) Verify(token string) Verdict {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Invalid
	}

	enc := base64.RawURLEncoding
	sig, err := enc.DecodeString(parts[2])
	if err != nil {
		return Invalid
	}
	if !hmac.Equal(sig, c.sign(parts[0]+"."+parts[1])) {
		return Invalid
	}

	payload, err := enc.DecodeString(parts[1])
	if err != nil {
		return Invalid
	}
	var cl claims
	if err := json.Unmarshal(payload, &cl); err != nil {
		return Invalid
	}

	if cl.Role != string(auth.RoleAdmin) {
		return Invalid
	}
	if !c.now().Before(time.UnixMilli(cl.ExpiresAt)) {
		return Invalid
	}

	return Verdict{Valid: true, Role: auth.Role(cl.Role)}
}

func (c *Codec) sign(data string) []byte {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(data))
	return mac.Sum(nil)
}
