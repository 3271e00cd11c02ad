package model

import "time"

// Campaign is the seasonal campaign configuration document. There is a
// single current campaign; updates replace it.
type Campaign struct {
	Season    string    `json:"season" bson:"season"`
	Headline  string    `json:"headline" bson:"headline"`
	Active    bool      `json:"active" bson:"active"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ServicePage is the landing content document for one service, keyed by its
// URL slug.
type ServicePage struct {
	Slug      string    `json:"slug" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	Body      string    `json:"body" bson:"body"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
