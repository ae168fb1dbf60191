package models

// ScheduleDetail is one departure slot embedded in a Route's schedule list.
type ScheduleDetail struct {
	Day    int    `json:"day" bson:"day"`
	Utc    string `json:"utc" bson:"utc"`
	Flight string `json:"flight" bson:"flight"`
}

// Route links an airline to a source/destination airport pair. The
// airlineid and airport codes are plain strings resolved at query time;
// nothing enforces them at write time.
type Route struct {
	Airline            string           `json:"airline" bson:"airline"`
	Airlineid          string           `json:"airlineid" bson:"airlineid"`
	Sourceairport      string           `json:"sourceairport" bson:"sourceairport"`
	Destinationairport string           `json:"destinationairport" bson:"destinationairport"`
	Stops              int              `json:"stops" bson:"stops"`
	Equipment          string           `json:"equipment" bson:"equipment"`
	Schedule           []ScheduleDetail `json:"schedule" bson:"schedule"`
	Distance           float64          `json:"distance" bson:"distance"`
}

func (r Route) Validate() []string {
	var v violations
	v.presence("Airline", r.Airline)
	v.presence("Airlineid", r.Airlineid)
	v.presence("Sourceairport", r.Sourceairport)
	v.presence("Destinationairport", r.Destinationairport)
	v.nonNegativeInt("Stops", r.Stops)
	v.presence("Equipment", r.Equipment)
	v.presenceList("Schedule", len(r.Schedule))
	v.nonNegativeFloat("Distance", r.Distance)
	return v
}
