package models

// User accumulates loyalty points through the increment/decrement
// endpoints. Points defaults to 0 on create.
type User struct {
	Name   string `json:"name" bson:"name"`
	Email  string `json:"email" bson:"email"`
	Points int    `json:"points" bson:"points"`
}

func (u User) Validate() []string {
	var v violations
	v.presence("Name", u.Name)
	v.presence("Email", u.Email)
	return v
}
