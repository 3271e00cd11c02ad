package ports

import (
	"context"

	"github.com/pinehollow/storefront/internal/domain/model"
)

// ContentStore persists admin-managed storefront content documents.
type ContentStore interface {
	SaveCampaign(ctx context.Context, c model.Campaign) error
	SaveServicePage(ctx context.Context, p model.ServicePage) error
}
