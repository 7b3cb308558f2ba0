package dto

import "world-cities/models"

// CityDTO is a city joined with the name of its country.
type CityDTO struct {
	ID          int64   `json:"id" bson:"id"`
	Name        string  `json:"name" bson:"name"`
	Lat         float64 `json:"lat" bson:"lat"`
	Lon         float64 `json:"lon" bson:"lon"`
	CountryID   int64   `json:"countryId" bson:"country_id"`
	CountryName string  `json:"countryName" bson:"country_name"`
}

// CityInput is the request body of city create and update.
// Lat and Lon are pointers so that 0 passes the required check.
type CityInput struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name" binding:"required,max=200" example:"Paris"`
	Lat       *float64 `json:"lat" binding:"required,gte=-90,lte=90" example:"48.8566"`
	Lon       *float64 `json:"lon" binding:"required,gte=-180,lte=180" example:"2.3522"`
	CountryID int64    `json:"countryId" binding:"required,gt=0" example:"1"`
}

// Model converts the input into a models.City.
func (in CityInput) Model() models.City {
	c := models.City{ID: in.ID, Name: in.Name, CountryID: in.CountryID}
	if in.Lat != nil {
		c.Lat = *in.Lat
	}
	if in.Lon != nil {
		c.Lon = *in.Lon
	}
	return c
}
