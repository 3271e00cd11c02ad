package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/pinehollow/storefront/internal/domain/model"
)

// campaignDocID keys the single current campaign document.
const campaignDocID = "current"

// ContentStore persists admin-managed storefront content documents.
type ContentStore struct {
	campaigns *mongo.Collection
	services  *mongo.Collection
}

// NewContentStore creates a content store over the campaign and service
// page collections.
func NewContentStore(db *mongo.Database) *ContentStore {
	return &ContentStore{
		campaigns: db.Collection("campaigns"),
		services:  db.Collection("service_pages"),
	}
}

// SaveCampaign upserts the current seasonal campaign document.
func (s *ContentStore) SaveCampaign(ctx context.Context, c model.Campaign) error {
	_, err := s.campaigns.UpdateOne(ctx,
		bson.M{"_id": campaignDocID},
		bson.M{"$set": c},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert campaign: %w", err)
	}
	return nil
}

// SaveServicePage upserts one service landing page document, keyed by slug.
func (s *ContentStore) SaveServicePage(ctx context.Context, p model.ServicePage) error {
	_, err := s.services.UpdateOne(ctx,
		bson.M{"_id": p.Slug},
		bson.M{"$set": bson.M{
			"title":      p.Title,
			"body":       p.Body,
			"updated_at": p.UpdatedAt,
		}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("upsert service page: %w", err)
	}
	return nil
}
