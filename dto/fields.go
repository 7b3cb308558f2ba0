package dto

import "world-cities/paging"

// CityFields lists the columns a city listing can be sorted and filtered by.
// Column values double as SQL column names and Mongo document keys.
var CityFields = paging.NewFields(
	paging.IntField("id", "id", func(c CityDTO) int64 { return c.ID }),
	paging.StringField("name", "name", func(c CityDTO) string { return c.Name }),
	paging.FloatField("lat", "lat", func(c CityDTO) float64 { return c.Lat }),
	paging.FloatField("lon", "lon", func(c CityDTO) float64 { return c.Lon }),
	paging.IntField("countryId", "country_id", func(c CityDTO) int64 { return c.CountryID }),
	paging.StringField("countryName", "country_name", func(c CityDTO) string { return c.CountryName }),
)

// CountryFields lists the columns a country listing can be sorted and filtered by.
var CountryFields = paging.NewFields(
	paging.IntField("id", "id", func(c CountryDTO) int64 { return c.ID }),
	paging.StringField("name", "name", func(c CountryDTO) string { return c.Name }),
	paging.StringField("iso2", "iso2", func(c CountryDTO) string { return c.ISO2 }),
	paging.StringField("iso3", "iso3", func(c CountryDTO) string { return c.ISO3 }),
	paging.IntField("totCities", "tot_cities", func(c CountryDTO) int64 { return c.TotCities }),
)
