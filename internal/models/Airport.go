package models

// AirportGeo is the coordinates block embedded in an Airport document.
// It has no identity of its own and only exists inside its parent.
type AirportGeo struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lon float64 `json:"lon" bson:"lon"`
	Alt float64 `json:"alt" bson:"alt"`
}

// Airport is an airfield document keyed by ids such as "airport_1262".
type Airport struct {
	Airportname string      `json:"airportname" bson:"airportname"`
	City        string      `json:"city" bson:"city"`
	Country     string      `json:"country" bson:"country"`
	Faa         string      `json:"faa" bson:"faa"`
	Icao        string      `json:"icao" bson:"icao"`
	Tz          string      `json:"tz" bson:"tz"`
	Geo         *AirportGeo `json:"geo,omitempty" bson:"geo,omitempty"`
}

func (a Airport) Validate() []string {
	var v violations
	v.presence("Airportname", a.Airportname)
	v.presence("City", a.City)
	v.presence("Country", a.Country)
	v.presence("Faa", a.Faa)
	v.exactLength("Faa", a.Faa, 3)
	v.presence("Icao", a.Icao)
	v.exactLength("Icao", a.Icao, 4)
	v.presence("Tz", a.Tz)
	if a.Geo == nil {
		v = append(v, "Geo can't be blank")
	}
	return v
}
