package mongostore

// Package mongostore provides MongoDB-backed adapters for the storefront's
// user directory and admin-managed content documents.

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/pinehollow/storefront/internal/domain/auth"
	"github.com/pinehollow/storefront/internal/ports"
)

// Directory reads user records for role resolution. One lookup is one
// document read; the bearer path performs at most one per request.
type Directory struct {
	users *mongo.Collection
}

// NewDirectory creates a directory over the users collection.
func NewDirectory(db *mongo.Database) *Directory {
	return &Directory{users: db.Collection("users")}
}

type userDoc struct {
	UID   string `bson:"_id"`
	Email string `bson:"email"`
	Role  string `bson:"role,omitempty"`
}

// Lookup fetches the user record for uid. Returns ports.ErrNotFound when no
// record exists.
func (d *Directory) Lookup(ctx context.Context, uid string) (auth.AdminRecord, error) {
	if uid == "" {
		return auth.AdminRecord{}, ports.ErrNotFound
	}

	var doc userDoc
	err := d.users.FindOne(ctx, bson.M{"_id": uid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return auth.AdminRecord{}, ports.ErrNotFound
	}
	if err != nil {
		return auth.AdminRecord{}, fmt.Errorf("find user record: %w", err)
	}

	return auth.AdminRecord{
		UID:   doc.UID,
		Email: doc.Email,
		Role:  auth.Role(doc.Role),
	}, nil
}
