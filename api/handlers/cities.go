package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"world-cities/config"
	"world-cities/dto"
	"world-cities/services"
)

// ListCitiesHandler godoc
// @Summary      List cities
// @Description  One page of cities, optionally sorted and filtered by a case-sensitive prefix
// @Tags         cities
// @Param        pageIndex     query  int     false  "Zero-based page index"
// @Param        pageSize      query  int     false  "Page size (clamped to the configured maximum)"
// @Param        sortColumn    query  string  false  "id, name, lat, lon, countryId or countryName"
// @Param        sortOrder     query  string  false  "ASC or DESC (default DESC)"
// @Param        filterColumn  query  string  false  "Column the prefix filter applies to"
// @Param        filterQuery   query  string  false  "Prefix to match"
// @Produce      json
// @Success      200  {object}  dto.PaginationCityDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      503  {object}  dto.ErrorResponseDTO
// @Router       /cities [get]
func ListCitiesHandler(svc *services.CityService, pc config.PagingConfig) gin.HandlerFunc {
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

// GetCityHandler godoc
// @Summary      Get city by id
// @Tags         cities
// @Param        id   path  int  true  "City id"
// @Produce      json
// @Success      200  {object}  dto.CityDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /cities/{id} [get]
func GetCityHandler(svc *services.CityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		city, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, city)
	}
}

// CreateCityHandler godoc
// @Summary      Create city
// @Tags         cities
// @Accept       json
// @Param        city  body  dto.CityInput  true  "City"
// @Produce      json
// @Success      201  {object}  dto.CityDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /cities [post]
func CreateCityHandler(svc *services.CityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.CityInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		city, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, city)
	}
}

// UpdateCityHandler godoc
// @Summary      Update city
// @Description  The body id must equal the path id
// @Tags         cities
// @Accept       json
// @Param        id    path  int            true  "City id"
// @Param        city  body  dto.CityInput  true  "City"
// @Produce      json
// @Success      200  {object}  dto.CityDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /cities/{id} [put]
func UpdateCityHandler(svc *services.CityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var in dto.CityInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		city, err := svc.Update(c.Request.Context(), id, in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, city)
	}
}

// DeleteCityHandler godoc
// @Summary      Delete city
// @Tags         cities
// @Param        id  path  int  true  "City id"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /cities/{id} [delete]
func DeleteCityHandler(svc *services.CityService) gin.HandlerFunc {
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

// IsDupeCityHandler godoc
// @Summary      Check for a duplicate city
// @Description  true when another city has the same name, coordinates and country
// @Tags         cities
// @Accept       json
// @Param        city  body  dto.CityInput  true  "City"
// @Produce      json
// @Success      200  {boolean}  boolean
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /cities/is-dupe [post]
func IsDupeCityHandler(svc *services.CityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.CityInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badRequest(c, err)
			return
		}
		dupe, err := svc.IsDupe(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, dupe)
	}
}
