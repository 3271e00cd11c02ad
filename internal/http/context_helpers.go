package httpx

import (
	"context"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/pinehollow/storefront/internal/domain/auth"
)

// adminRoleKey is an unexported context key type for the authenticated
// admin role.
type adminRoleKey struct{}

// SetAdminRole stores the verified admin role in the context.
func SetAdminRole(ctx context.Context, role auth.Role) context.Context {
	return context.WithValue(ctx, adminRoleKey{}, role)
}

// AdminRoleFromContext returns the verified admin role, if present.
func AdminRoleFromContext(ctx context.Context) (auth.Role, bool) {
	role, ok := ctx.Value(adminRoleKey{}).(auth.Role)
	return role, ok
}

// ClientKey derives the rate-limit key for a request. The first
// X-Forwarded-For hop wins when it parses as an address; otherwise the
// direct peer address is used, and "anonymous" when neither is usable.
func ClientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.SplitN(fwd, ",", 2)[0])
		if _, err := netip.ParseAddr(first); err == nil {
			return first
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "anonymous"
}
