package dto

// PaginationCityDTO is a concrete swagger-friendly type for paginated cities response.
// The handlers serialize paging.Page[CityDTO], which has the same shape.
// swagger:model PaginationCityDTO
type PaginationCityDTO struct {
	Data            []CityDTO `json:"data"`
	PageIndex       int       `json:"pageIndex"`
	PageSize        int       `json:"pageSize"`
	TotalCount      int       `json:"totalCount"`
	TotalPages      int       `json:"totalPages"`
	SortColumn      *string   `json:"sortColumn"`
	SortOrder       *string   `json:"sortOrder"`
	FilterColumn    *string   `json:"filterColumn"`
	FilterQuery     *string   `json:"filterQuery"`
	HasPreviousPage bool      `json:"hasPreviousPage"`
	HasNextPage     bool      `json:"hasNextPage"`
}

// PaginationCountryDTO is a concrete swagger-friendly type for paginated countries response
// swagger:model PaginationCountryDTO
type PaginationCountryDTO struct {
	Data            []CountryDTO `json:"data"`
	PageIndex       int          `json:"pageIndex"`
	PageSize        int          `json:"pageSize"`
	TotalCount      int          `json:"totalCount"`
	TotalPages      int          `json:"totalPages"`
	SortColumn      *string      `json:"sortColumn"`
	SortOrder       *string      `json:"sortOrder"`
	FilterColumn    *string      `json:"filterColumn"`
	FilterQuery     *string      `json:"filterQuery"`
	HasPreviousPage bool         `json:"hasPreviousPage"`
	HasNextPage     bool         `json:"hasNextPage"`
}
