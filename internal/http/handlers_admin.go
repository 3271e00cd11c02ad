package httpx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/pinehollow/storefront/internal/domain/auth"
)

// LoginService is the slice of the admin auth service the login handlers
// need.
type LoginService interface {
	Login(ctx context.Context, password, clientKey string) (string, error)
}

// AdminHandlers serves the admin login page, the login and logout
// endpoints, and the dashboard shell behind the guard.
type AdminHandlers struct {
	Svc          LoginService
	CookieDomain string
	SessionTTL   time.Duration
	IsDev        bool
	Logger       *slog.Logger
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /admin/login. Every failure mode collapses to a
// generic message for its status class; the response never says which
// check failed.
func (h *AdminHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	token, err := h.Svc.Login(r.Context(), req.Password, ClientKey(r))
	switch {
	case err == nil:
		h.setSessionCookie(w, token)
		WriteJSON(w, http.StatusOK, Response{Success: true, Message: "logged in"})
	case errors.Is(err, auth.ErrRateLimited):
		WriteError(w, http.StatusTooManyRequests, "too many attempts, try again later")
	case errors.Is(err, auth.ErrMisconfigured):
		h.Logger.Error("admin login unavailable", slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, "login unavailable")
	default:
		WriteError(w, http.StatusUnauthorized, "invalid password")
	}
}

// Logout handles POST /admin/logout. The token is stateless, so logout is
// purely a cookie clear; an already-absent cookie still succeeds.
func (h *AdminHandlers) Logout(w http.ResponseWriter, _ *http.Request) {
	clearSessionCookie(w, h.CookieDomain, !h.IsDev)
	WriteJSON(w, http.StatusOK, Response{Success: true, Message: "logged out"})
}

// LoginPage handles GET /admin/login. The guard exempts this path so a
// signed-out operator can reach the form.
func (h *AdminHandlers) LoginPage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, loginPageHTML)
}

// Dashboard handles GET /admin/. It sits behind the guard; reaching it at
// all means the session was verified.
func (h *AdminHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	role, _ := AdminRoleFromContext(r.Context())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, dashboardHTML, role)
}

// setSessionCookie attaches the session token. Secure is dropped only in
// development mode; it never depends on sniffing the request scheme, so a
// proxy that omits forwarding headers cannot downgrade the cookie.
func (h *AdminHandlers) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   int(h.SessionTTL / time.Second),
		HttpOnly: true,
		Secure:   !h.IsDev,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie. Attributes must match the
// ones used when setting it or browsers keep the stale copy.
func clearSessionCookie(w http.ResponseWriter, domain string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

const loginPageHTML = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Admin Login</title></head>
<body>
<h1>Admin Login</h1>
<form id="login-form">
  <input type="password" id="password" name="password" autocomplete="current-password" required>
  <button type="submit">Sign in</button>
</form>
<p id="status"></p>
<script>
document.getElementById('login-form').addEventListener('submit', async (e) => {
  e.preventDefault();
  const res = await fetch('/admin/login', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({password: document.getElementById('password').value})
  });
  const body = await res.json();
  if (res.ok) { window.location = '/admin/'; return; }
  document.getElementById('status').textContent = body.message;
});
</script>
</body>
</html>
`

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Storefront Admin</title></head>
<body>
<h1>Storefront Admin</h1>
<p>Signed in as %s.</p>
<form method="POST" action="/admin/logout"><button type="submit">Sign out</button></form>
</body>
</html>
`
