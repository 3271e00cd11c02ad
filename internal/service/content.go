package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pinehollow/storefront/internal/domain/model"
	"github.com/pinehollow/storefront/internal/ports"
)

// ErrInvalidContent signals a content payload that fails validation.
var ErrInvalidContent = errors.New("invalid content")

// IsValidation reports whether err is a content validation failure rather
// than a storage failure.
func IsValidation(err error) bool { return errors.Is(err, ErrInvalidContent) }

// ContentService persists admin-managed storefront content: the seasonal
// campaign configuration and per-service landing pages. Authorization is
// the caller's job; handlers invoke the privileged action guard before
// reaching this service.
type ContentService struct {
	store ports.ContentStore
}

// NewContentService constructs a new ContentService.
func NewContentService(store ports.ContentStore) *ContentService {
	return &ContentService{store: store}
}

// SaveCampaign validates and upserts the current seasonal campaign.
func (s *ContentService) SaveCampaign(ctx context.Context, c model.Campaign) error {
	if strings.TrimSpace(c.Season) == "" {
		return fmt.Errorf("%w: campaign season is required", ErrInvalidContent)
	}
	if s.store == nil {
		return errors.New("content store not configured")
	}

	c.UpdatedAt = time.Now().UTC()
	if err := s.store.SaveCampaign(ctx, c); err != nil {
		return fmt.Errorf("save campaign: %w", err)
	}
	return nil
}

// SaveServicePage validates and upserts one service landing page.
func (s *ContentService) SaveServicePage(ctx context.Context, p model.ServicePage) error {
	if strings.TrimSpace(p.Slug) == "" || strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: service page slug and title are required", ErrInvalidContent)
	}
	if s.store == nil {
		return errors.New("content store not configured")
	}

	p.UpdatedAt = time.Now().UTC()
	if err := s.store.SaveServicePage(ctx, p); err != nil {
		return fmt.Errorf("save service page: %w", err)
	}
	return nil
}
