package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pinehollow/storefront/internal/domain/model"
	"github.com/pinehollow/storefront/internal/service"
	"github.com/pinehollow/storefront/internal/session"
)

type recordingStore struct {
	campaigns []model.Campaign
	pages     []model.ServicePage
}

func (s *recordingStore) SaveCampaign(_ context.Context, c model.Campaign) error {
	s.campaigns = append(s.campaigns, c)
	return nil
}

func (s *recordingStore) SaveServicePage(_ context.Context, p model.ServicePage) error {
	s.pages = append(s.pages, p)
	return nil
}

func newContentHandlers(t *testing.T) (*ContentHandlers, *recordingStore, string) {
	t.Helper()

	codec, err := session.NewCodec("test-secret", time.Hour)
	require.NoError(t, err)
	token, err := codec.Issue()
	require.NoError(t, err)

	svc := service.NewAdminAuthService(service.AdminAuthServiceOptions{
		Password: "hunter2",
		Codec:    codec,
		Logger:   slog.Default(),
	})

	store := &recordingStore{}
	h := &ContentHandlers{
		Sessions: svc,
		Content:  service.NewContentService(store),
		Logger:   slog.Default(),
	}
	return h, store, token
}

func TestSaveCampaign_RequiresSession(t *testing.T) {
	h, store, _ := newContentHandlers(t)

	req := httptest.NewRequest(http.MethodPut, "/api/campaign",
		strings.NewReader(`{"season":"winter","headline":"Sale"}`))
	rec := httptest.NewRecorder()
	h.SaveCampaign(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, store.campaigns)
}

func TestSaveCampaign_WithSession(t *testing.T) {
	h, store, token := newContentHandlers(t)

	req := httptest.NewRequest(http.MethodPut, "/api/campaign",
		strings.NewReader(`{"season":"winter","headline":"Sale","active":true}`))
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	h.SaveCampaign(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.campaigns, 1)
	assert.Equal(t, "winter", store.campaigns[0].Season)
	assert.True(t, store.campaigns[0].Active)
}

func TestSaveCampaign_ValidationFailure(t *testing.T) {
	h, store, token := newContentHandlers(t)

	req := httptest.NewRequest(http.MethodPut, "/api/campaign",
		strings.NewReader(`{"headline":"no season"}`))
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	h.SaveCampaign(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.campaigns)
}

func TestSaveServicePage_WithSession(t *testing.T) {
	h, store, token := newContentHandlers(t)

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/services/{slug}", h.SaveServicePage)

	req := httptest.NewRequest(http.MethodPut, "/api/services/gift-wrapping",
		strings.NewReader(`{"title":"Gift Wrapping","body":"We wrap."}`))
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.pages, 1)
	assert.Equal(t, "gift-wrapping", store.pages[0].Slug)
	assert.Equal(t, "Gift Wrapping", store.pages[0].Title)
}

func TestSaveServicePage_TamperedCookie(t *testing.T) {
	h, store, token := newContentHandlers(t)

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/services/{slug}", h.SaveServicePage)

	req := httptest.NewRequest(http.MethodPut, "/api/services/gift-wrapping",
		strings.NewReader(`{"title":"Gift Wrapping"}`))
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token + "x"})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, store.pages)
}
