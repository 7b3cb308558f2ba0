package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"world-cities/config"
	"world-cities/dto"
	"world-cities/services"
)

// ListCountriesHandler godoc
// @Summary      List countries
// @Description  One page of countries with their city counts
// @Tags         countries
// @Param        pageIndex     query  int     false  "Zero-based page index"
// @Param        pageSize      query  int     false  "Page size (clamped to the configured maximum)"
// @Param        sortColumn    query  string  false  "id, name, iso2, iso3 or totCities"
// @Param        sortOrder     query  string  false  "ASC or DESC (default DESC)"
// @Param        filterColumn  query  string  false  "Column the prefix filter applies to"
// @Param        filterQuery   query  string  false  "Prefix to match"
// @Produce      json
// @Success      200  {object}  dto.PaginationCountryDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      503  {object}  dto.ErrorResponseDTO
// @Router       /countries [get]
func ListCountriesHandler(svc *services.CountryService, pc config.PagingConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, err := bindListQuery(c, pc)
		if err != nil {
			badRequest(c, err)
			return
		}
		page, err := svc.List(c.Request.Context(), q)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetCountryHandler godoc
// @Summary      Get country by id
// @Tags         countries
// @Param        id  path  int  true  "Country id"
// @Produce      json
// @Success      200  {object}  dto.CountryDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /countries/{id} [get]
func GetCountryHandler(svc *services.CountryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		country, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, country)
	}
}

// CreateCountryHandler godoc
// @Summary      Create country
// @Tags         countries
// @Accept       json
// @Param        country  body  dto.CountryInput  true  "Country"
// @Produce      json
// @Success      201  {object}  dto.CountryDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /countries [post]
func CreateCountryHandler(svc *services.CountryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.CountryInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		country, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, country)
	}
}

// UpdateCountryHandler godoc
// @Summary      Update country
// @Description  The body id must equal the path id
// @Tags         countries
// @Accept       json
// @Param        id       path  int               true  "Country id"
// @Param        country  body  dto.CountryInput  true  "Country"
// @Produce      json
// @Success      200  {object}  dto.CountryDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /countries/{id} [put]
func UpdateCountryHandler(svc *services.CountryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var in dto.CountryInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		country, err := svc.Update(c.Request.Context(), id, in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, country)
	}
}

// DeleteCountryHandler godoc
// @Summary      Delete country
// @Description  Deletes the country and all of its cities
// @Tags         countries
// @Param        id  path  int  true  "Country id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /countries/{id} [delete]
func DeleteCountryHandler(svc *services.CountryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// IsDupeCountryFieldHandler godoc
// @Summary      Check for a duplicate country field
// @Description  true when another country already has fieldValue in fieldName (name, iso2 or iso3)
// @Tags         countries
// @Accept       json
// @Param        check  body  dto.IsDupeFieldInput  true  "Field check"
// @Produce      json
// @Success      200  {boolean}  boolean
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /countries/is-dupe-field [post]
func IsDupeCountryFieldHandler(svc *services.CountryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.IsDupeFieldInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		dupe, err := svc.IsDupeField(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dupe)
	}
}
