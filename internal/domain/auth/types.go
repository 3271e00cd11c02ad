package auth

// Package auth contains domain-level types and the error taxonomy for the
// admin access-control layer. It is pure and free of framework/adapter
// concerns.

import "errors"

// Role represents an application authorization role. The storefront has a
// single boolean notion of privilege: a caller either is an administrator
// or is not.
type Role string

const (
	RoleAdmin Role = "admin"
)

// IsAdmin reports whether the role grants administrator status.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// Error taxonomy for the access-control core. All of these are terminal for
// the current request; none are retried. Handlers collapse them to a small
// set of generic, low-information messages so that distinct failure modes
// are indistinguishable to a caller.
var (
	// ErrRateLimited signals that the client exhausted its login budget for
	// the current window.
	ErrRateLimited = errors.New("too many attempts")

	// ErrUnauthenticated signals that no credential was presented.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidCredential covers a wrong password, a bad token signature,
	// and an expired token alike.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrMisconfigured signals that a required server secret is not set.
	// Misconfiguration locks the door; it never leaves it open.
	ErrMisconfigured = errors.New("admin auth not configured")

	// ErrUpstreamUnavailable signals that the identity provider could not be
	// reached or timed out. Treated as a verification failure.
	ErrUpstreamUnavailable = errors.New("identity provider unavailable")
)

// Identity is the authenticated principal resolved from an identity-provider
// bearer token. Adapters map provider-specific claims into this shape.
type Identity struct {
	UserID string // stable user identifier (provider "sub")
	Email  string
}

// AdminRecord is the user record consulted by the role resolver. The record
// lives in the document store; this core only reads it. A Role of "admin" is
// the sole authorization signal on the bearer-token path.
type AdminRecord struct {
	UID   string
	Email string
	Role  Role
}

// IsAdmin reports whether the record's role field grants administrator
// status.
func (r AdminRecord) IsAdmin() bool { return r.Role.IsAdmin() }
