package models

// Airline is a carrier document keyed by a caller-supplied id such as
// "airline_10".
type Airline struct {
	Name     string `json:"name" bson:"name"`
	Callsign string `json:"callsign" bson:"callsign"`
	Iata     string `json:"iata" bson:"iata"`
	Icao     string `json:"icao" bson:"icao"`
	Country  string `json:"country" bson:"country"`
}

// Validate returns every violated rule in declaration order.
func (a Airline) Validate() []string {
	var v violations
	v.presence("Name", a.Name)
	v.presence("Callsign", a.Callsign)
	v.presence("Iata", a.Iata)
	v.exactLength("Iata", a.Iata, 2)
	v.presence("Icao", a.Icao)
	v.exactLength("Icao", a.Icao, 3)
	v.presence("Country", a.Country)
	return v
}
