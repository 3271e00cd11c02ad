package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinehollow/storefront/internal/ratelimit"
	"github.com/pinehollow/storefront/internal/service"
	"github.com/pinehollow/storefront/internal/session"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	codec, err := session.NewCodec("router-secret", time.Hour)
	require.NoError(t, err)

	adminAuth := service.NewAdminAuthService(service.AdminAuthServiceOptions{
		Password: "hunter2",
		Codec:    codec,
		Limiter:  ratelimit.NewMemoryLimiter(10, time.Minute),
		Logger:   slog.Default(),
	})
	svcs := RouterServices{
		AdminAuth:  adminAuth,
		BearerAuth: service.NewBearerAuthService(service.BearerAuthServiceOptions{}),
		Notifier:   service.NewNotificationService(nil, slog.Default()),
		Content:    service.NewContentService(&recordingStore{}),
	}
	return NewRouter(svcs, RouterConfig{SessionTTL: time.Hour, IsDev: true}, slog.Default())
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_LoginPageReachableSignedOut(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, LoginPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_DashboardRedirectsSignedOut(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/", nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
}

func TestRouter_LoginThenDashboard(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, LoginPath,
		strings.NewReader(`{"password":"hunter2"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Storefront Admin")
}

func TestRouter_NotifyWithoutTokenIsUnauthorized(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/notify",
		strings.NewReader(`{"to":"a","subject":"b","body":"c"}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
