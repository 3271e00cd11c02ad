package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pinehollow/storefront/internal/ports"
)

// ErrInvalidNotification signals missing required notification fields.
var ErrInvalidNotification = errors.New("missing required notification fields")

// NotificationInput is the payload of one notification request.
type NotificationInput struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// NotificationService validates and dispatches outbound notification
// emails through the Mailer port.
type NotificationService struct {
	mailer ports.Mailer
	logger *slog.Logger
}

// NewNotificationService constructs a new NotificationService.
func NewNotificationService(mailer ports.Mailer, logger *slog.Logger) *NotificationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationService{mailer: mailer, logger: logger}
}

// Send validates the input and delivers the notification.
func (s *NotificationService) Send(ctx context.Context, in NotificationInput) error {
	if strings.TrimSpace(in.To) == "" ||
		strings.TrimSpace(in.Subject) == "" ||
		strings.TrimSpace(in.Body) == "" {
		return ErrInvalidNotification
	}
	if s.mailer == nil {
		return errors.New("notification delivery not configured")
	}

	if err := s.mailer.Send(ctx, ports.Message{To: in.To, Subject: in.Subject, Body: in.Body}); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	s.logger.InfoContext(ctx, "notification sent", "to", in.To)
	return nil
}
