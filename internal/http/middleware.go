package httpx

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/pinehollow/storefront/internal/session"
)

// SessionVerifier validates admin session tokens. *service.AdminAuthService
// satisfies this.
type SessionVerifier interface {
	VerifySession(token string) session.Verdict
}

// Logging returns a middleware that logs HTTP requests and responses. The
// client key is included so throttling and guard events can be correlated
// with the requests that triggered them.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &respWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.String("client", ClientKey(r)),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics, logs them, and
// answers with the standard failure envelope.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered",
						slog.Any("error", err),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("stack", string(debug.Stack())))
					WriteError(w, http.StatusInternalServerError, "internal error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// GuardConfig configures the admin route guard.
type GuardConfig struct {
	Sessions     SessionVerifier
	CookieDomain string
	IsDev        bool
	Logger       *slog.Logger
}

// underAdminPrefix matches the admin subtree on segment boundaries, so a
// sibling path like /administrivia stays outside the guard's jurisdiction.
func underAdminPrefix(path string) bool {
	return path == AdminPrefix || strings.HasPrefix(path, AdminPrefix+"/")
}

// AdminGuard protects everything under the admin prefix. Requests outside
// the prefix, and the login page itself, pass through untouched. A missing
// cookie redirects to the login page; an invalid or expired token
// additionally clears the cookie so the browser stops replaying it. Valid
// sessions proceed with the role attached to the request context.
func AdminGuard(cfg GuardConfig) func(http.Handler) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !underAdminPrefix(r.URL.Path) || r.URL.Path == LoginPath {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			verdict := cfg.Sessions.VerifySession(cookie.Value)
			if !verdict.Valid {
				logger.Warn("rejected admin session",
					slog.String("path", r.URL.Path),
					slog.String("client", ClientKey(r)),
				)
				clearSessionCookie(w, cfg.CookieDomain, !cfg.IsDev)
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}

			ctx := SetAdminRole(r.Context(), verdict.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin verifies the session cookie directly, for API handlers that
// protect a single privileged operation rather than a route subtree. It
// returns false after writing a 401 when no valid admin session is present.
func RequireAdmin(w http.ResponseWriter, r *http.Request, sessions SessionVerifier) bool {
	if role, ok := AdminRoleFromContext(r.Context()); ok && role.IsAdmin() {
		return true
	}

	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		WriteError(w, http.StatusUnauthorized, "admin session required")
		return false
	}
	verdict := sessions.VerifySession(cookie.Value)
	if !verdict.Valid || !verdict.Role.IsAdmin() {
		WriteError(w, http.StatusUnauthorized, "admin session required")
		return false
	}
	return true
}
