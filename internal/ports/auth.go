package ports

// Package ports defines interfaces (hexagonal ports) for access-control
// collaborators. Implementations live in internal/adapters; orchestration
// in internal/service.

import (
	"context"
	"errors"

	"github.com/pinehollow/storefront/internal/domain/auth"
)

// ErrNotFound is returned by directory lookups when no record exists for
// the given identifier.
var ErrNotFound = errors.New("record not found")

// TokenVerifier validates an identity-provider-issued bearer token by
// forwarding it to the provider. The outbound call carries a short timeout;
// a timeout is a verification failure, not retried within the request.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (auth.Identity, error)
}

// AdminDirectory reads user records from the document store for role
// resolution. One call is at most one document read.
type AdminDirectory interface {
	Lookup(ctx context.Context, uid string) (auth.AdminRecord, error)
}
