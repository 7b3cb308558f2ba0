package models

// City is a row of the cities table / cities collection.
// Lat and Lon are stored as decimal(7,4).
type City struct {
	ID        int64   `bson:"_id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	Lat       float64 `bson:"lat" json:"lat"`
	Lon       float64 `bson:"lon" json:"lon"`
	CountryID int64   `bson:"country_id" json:"countryId"`
}
