package dto

// ErrorResponseDTO is the body of every error response.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"paging: property 'foo' does not exist"`
}

// SeedResultDTO reports what a bulk import added.
type SeedResultDTO struct {
	CountriesAdded int `json:"countriesAdded"`
	CitiesAdded    int `json:"citiesAdded"`
}
