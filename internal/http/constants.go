package httpx

const (
	// SessionCookieName carries the admin session token.
	SessionCookieName = "admin_session"

	// AdminPrefix is the path prefix protected by the admin guard.
	AdminPrefix = "/admin"

	// LoginPath is exempt from the guard so operators can reach the form.
	LoginPath = "/admin/login"
)
