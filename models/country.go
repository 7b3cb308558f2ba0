package models

// Country is a row of the countries table / countries collection.
type Country struct {
	ID   int64  `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
	ISO2 string `bson:"iso2" json:"iso2"`
	ISO3 string `bson:"iso3" json:"iso3"`
}
