package dto

import "world-cities/models"

// CountryDTO is a country with the number of its cities.
type CountryDTO struct {
	ID        int64  `json:"id" bson:"id"`
	Name      string `json:"name" bson:"name"`
	ISO2      string `json:"iso2" bson:"iso2"`
	ISO3      string `json:"iso3" bson:"iso3"`
	TotCities int64  `json:"totCities" bson:"tot_cities"`
}

// CountryInput is the request body of country create and update.
type CountryInput struct {
	ID   int64  `json:"id"`
	Name string `json:"name" binding:"required,max=200" example:"France"`
	ISO2 string `json:"iso2" binding:"required,len=2" example:"FR"`
	ISO3 string `json:"iso3" binding:"required,len=3" example:"FRA"`
}

func (in CountryInput) Model() models.Country {
	return models.Country{ID: in.ID, Name: in.Name, ISO2: in.ISO2, ISO3: in.ISO3}
}

// IsDupeFieldInput asks whether another country already uses FieldValue
// for FieldName (name, iso2 or iso3).
type IsDupeFieldInput struct {
	CountryID  int64  `json:"countryId"`
	FieldName  string `json:"fieldName" binding:"required" example:"iso2"`
	FieldValue string `json:"fieldValue" binding:"required" example:"FR"`
}
