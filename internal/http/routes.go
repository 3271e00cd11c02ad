package httpx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pinehollow/storefront/internal/service"
)

// RouterServices groups the services the router depends on.
type RouterServices struct {
	AdminAuth  *service.AdminAuthService
	BearerAuth *service.BearerAuthService
	Notifier   *service.NotificationService
	Content    *service.ContentService
}

// RouterConfig carries the deployment settings the handlers need.
type RouterConfig struct {
	CookieDomain string
	SessionTTL   time.Duration
	IsDev        bool
}

// NewRouter builds the HTTP routing table. Everything under /admin except
// the login page sits behind the admin guard; the /api content mutations
// carry their own per-handler session check.
func NewRouter(svcs RouterServices, cfg RouterConfig, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	admin := &AdminHandlers{
		Svc:          svcs.AdminAuth,
		CookieDomain: cfg.CookieDomain,
		SessionTTL:   cfg.SessionTTL,
		IsDev:        cfg.IsDev,
		Logger:       logger,
	}
	notify := &NotifyHandlers{
		Auth:     svcs.BearerAuth,
		Notifier: svcs.Notifier,
		Logger:   logger,
	}
	content := &ContentHandlers{
		Sessions: svcs.AdminAuth,
		Content:  svcs.Content,
		Logger:   logger,
	}

	mux.HandleFunc("GET /healthz", Health)
	mux.HandleFunc("HEAD /healthz", Health)

	mux.HandleFunc("GET "+LoginPath, admin.LoginPage)
	mux.HandleFunc("POST "+LoginPath, admin.Login)
	mux.HandleFunc("POST /admin/logout", admin.Logout)
	mux.HandleFunc("GET /admin/", admin.Dashboard)

	mux.HandleFunc("POST /api/notify", notify.Send)
	mux.HandleFunc("PUT /api/campaign", content.SaveCampaign)
	mux.HandleFunc("PUT /api/services/{slug}", content.SaveServicePage)

	guard := AdminGuard(GuardConfig{
		Sessions:     svcs.AdminAuth,
		CookieDomain: cfg.CookieDomain,
		IsDev:        cfg.IsDev,
		Logger:       logger,
	})

	return guard(mux)
}
