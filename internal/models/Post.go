package models

// Post belongs to a single user; the owning user id is a plain string
// field, resolved by the caller rather than enforced by the store.
type Post struct {
	Title   string `json:"title" bson:"title"`
	Content string `json:"content" bson:"content"`
	UserID  string `json:"user_id,omitempty" bson:"user_id,omitempty"`
}
