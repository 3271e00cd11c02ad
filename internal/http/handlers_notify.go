package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pinehollow/storefront/internal/domain/auth"
	"github.com/pinehollow/storefront/internal/service"
)

// BearerAuth is the slice of the bearer auth service the notify handler
// needs.
type BearerAuth interface {
	Authenticate(ctx context.Context, rawToken string) (auth.Identity, error)
	IsAdmin(ctx context.Context, identity auth.Identity) (bool, error)
}

// Notifier sends validated notification messages.
type Notifier interface {
	Send(ctx context.Context, input service.NotificationInput) error
}

// NotifyHandlers serves the bearer-token protected notification endpoint.
type NotifyHandlers struct {
	Auth     BearerAuth
	Notifier Notifier
	Logger   *slog.Logger
}

// Send handles POST /api/notify. Authentication and authorization are
// checked before the body is read: an unauthenticated caller learns
// nothing about the request schema.
func (h *NotifyHandlers) Send(w http.ResponseWriter, r *http.Request) {
	identity, err := h.Auth.Authenticate(r.Context(), bearerToken(r))
	if err != nil {
		if errors.Is(err, auth.ErrUpstreamUnavailable) {
			h.Logger.Warn("identity provider unavailable", slog.Any("error", err))
		}
		WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	isAdmin, err := h.Auth.IsAdmin(r.Context(), identity)
	if err != nil {
		h.Logger.Error("role resolution failed",
			slog.String("user", identity.UserID),
			slog.Any("error", err))
		WriteError(w, http.StatusForbidden, "admin privileges required")
		return
	}
	if !isAdmin {
		WriteError(w, http.StatusForbidden, "admin privileges required")
		return
	}

	var input service.NotificationInput
	if !DecodeJSON(w, r, &input) {
		return
	}

	if err := h.Notifier.Send(r.Context(), input); err != nil {
		if errors.Is(err, service.ErrInvalidNotification) {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("notification send failed", slog.Any("error", err))
		WriteError(w, http.StatusInternalServerError, "notification not sent")
		return
	}

	WriteJSON(w, http.StatusOK, Response{Success: true, Message: "notification sent"})
}

// bearerToken extracts the token from the Authorization header. Returns ""
// when the header is absent or not a Bearer scheme.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
