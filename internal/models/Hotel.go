package models

import "time"

// HotelGeo is the coordinates block embedded in a Hotel document.
type HotelGeo struct {
	Lat      float64 `json:"lat" bson:"lat"`
	Lon      float64 `json:"lon" bson:"lon"`
	Accuracy string  `json:"accuracy,omitempty" bson:"accuracy,omitempty"`
}

// Review is a guest review embedded in a Hotel document. Ratings is a
// freeform category-to-score map.
type Review struct {
	Content string         `json:"content,omitempty" bson:"content,omitempty"`
	Ratings map[string]int `json:"ratings,omitempty" bson:"ratings,omitempty"`
	Author  string         `json:"author,omitempty" bson:"author,omitempty"`
	Date    string         `json:"date,omitempty" bson:"date,omitempty"`
}

// Hotel is a lodging document. Only name, address and phone are commonly
// present; everything else is optional. The handler maintains the
// created_at/updated_at stamps on every write.
type Hotel struct {
	Title         string    `json:"title,omitempty" bson:"title,omitempty"`
	Name          string    `json:"name,omitempty" bson:"name,omitempty"`
	Address       string    `json:"address,omitempty" bson:"address,omitempty"`
	Directions    string    `json:"directions,omitempty" bson:"directions,omitempty"`
	Phone         string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Tollfree      string    `json:"tollfree,omitempty" bson:"tollfree,omitempty"`
	Email         string    `json:"email,omitempty" bson:"email,omitempty"`
	Fax           string    `json:"fax,omitempty" bson:"fax,omitempty"`
	URL           string    `json:"url,omitempty" bson:"url,omitempty"`
	Checkin       string    `json:"checkin,omitempty" bson:"checkin,omitempty"`
	Checkout      string    `json:"checkout,omitempty" bson:"checkout,omitempty"`
	Price         string    `json:"price,omitempty" bson:"price,omitempty"`
	Geo           *HotelGeo `json:"geo,omitempty" bson:"geo,omitempty"`
	Type          string    `json:"type,omitempty" bson:"type,omitempty"`
	Country       string    `json:"country,omitempty" bson:"country,omitempty"`
	City          string    `json:"city,omitempty" bson:"city,omitempty"`
	State         string    `json:"state,omitempty" bson:"state,omitempty"`
	Reviews       []Review  `json:"reviews,omitempty" bson:"reviews,omitempty"`
	PublicLikes   []string  `json:"public_likes,omitempty" bson:"public_likes,omitempty"`
	Vacancy       bool      `json:"vacancy" bson:"vacancy"`
	Description   string    `json:"description,omitempty" bson:"description,omitempty"`
	Alias         string    `json:"alias,omitempty" bson:"alias,omitempty"`
	PetsOk        bool      `json:"pets_ok,omitempty" bson:"pets_ok,omitempty"`
	FreeBreakfast bool      `json:"free_breakfast,omitempty" bson:"free_breakfast,omitempty"`
	FreeInternet  bool      `json:"free_internet,omitempty" bson:"free_internet,omitempty"`
	FreeParking   bool      `json:"free_parking,omitempty" bson:"free_parking,omitempty"`
	CreatedAt     time.Time `json:"created_at,omitzero" bson:"created_at,omitempty"`
	UpdatedAt     time.Time `json:"updated_at,omitzero" bson:"updated_at,omitempty"`
}
