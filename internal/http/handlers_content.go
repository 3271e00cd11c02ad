package httpx

import (
	"log/slog"
	"net/http"

	"github.com/pinehollow/storefront/internal/domain/model"
	"github.com/pinehollow/storefront/internal/service"
)

// ContentHandlers serves the privileged content-mutation endpoints. Each
// handler verifies the admin session itself; these routes live outside the
// guarded admin subtree.
type ContentHandlers struct {
	Sessions SessionVerifier
	Content  *service.ContentService
	Logger   *slog.Logger
}

// SaveCampaign handles PUT /api/campaign.
func (h *ContentHandlers) SaveCampaign(w http.ResponseWriter, r *http.Request) {
	if !RequireAdmin(w, r, h.Sessions) {
		return
	}

	var campaign model.Campaign
	if !DecodeJSON(w, r, &campaign) {
		return
	}

	if err := h.Content.SaveCampaign(r.Context(), campaign); err != nil {
		if service.IsValidation(err) {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("save campaign failed", slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, "campaign not saved")
		return
	}

	WriteJSON(w, http.StatusOK, Response{Success: true, Message: "campaign saved"})
}

// SaveServicePage handles PUT /api/services/{slug}.
func (h *ContentHandlers) SaveServicePage(w http.ResponseWriter, r *http.Request) {
	if !RequireAdmin(w, r, h.Sessions) {
		return
	}

	var page model.ServicePage
	if !DecodeJSON(w, r, &page) {
		return
	}
	page.Slug = r.PathValue("slug")

	if err := h.Content.SaveServicePage(r.Context(), page); err != nil {
		if service.IsValidation(err) {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("save service page failed",
			slog.String("slug", page.Slug),
			slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, "service page not saved")
		return
	}

	WriteJSON(w, http.StatusOK, Response{Success: true, Message: "service page saved"})
}
