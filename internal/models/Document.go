package models

import "time"

// Document is a freeform record with a touch operation that refreshes
// its updated_at stamp without changing the content.
type Document struct {
	Name      string    `json:"name" bson:"name"`
	Content   string    `json:"content" bson:"content"`
	UpdatedAt time.Time `json:"updated_at,omitzero" bson:"updated_at,omitempty"`
}
