package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"world-cities/api/middleware"
	"world-cities/config"
	"world-cities/dto"
	"world-cities/logger"
	"world-cities/paging"
	"world-cities/repositories"
	"world-cities/services"
)

// listQuery is the query string of the paged listings.
type listQuery struct {
	PageIndex    int    `form:"pageIndex"`
	PageSize     *int   `form:"pageSize"`
	SortColumn   string `form:"sortColumn"`
	SortOrder    string `form:"sortOrder"`
	FilterColumn string `form:"filterColumn"`
	FilterQuery  string `form:"filterQuery"`
}

// bindListQuery reads the paging parameters. A missing pageSize takes the
// configured default and a larger one than allowed is clamped; zero or a
// negative value is left for paging.Build to reject.
func bindListQuery(c *gin.Context, pc config.PagingConfig) (paging.Query, error) {
	var in listQuery
	if err := c.ShouldBindQuery(&in); err != nil {
		return paging.Query{}, err
	}
	size := pc.DefaultPageSize
	if in.PageSize != nil {
		size = min(*in.PageSize, pc.MaxPageSize)
	}
	return paging.Query{
		PageIndex:    in.PageIndex,
		PageSize:     size,
		SortColumn:   in.SortColumn,
		SortOrder:    in.SortOrder,
		FilterColumn: in.FilterColumn,
		FilterQuery:  in.FilterQuery,
	}, nil
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid id"})
		return 0, false
	}
	return id, true
}

// badRequest answers a request whose body or query could not be bound.
func badRequest(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: strings.Join(msgs, "; ")})
		return
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
}

// writeError maps service errors to HTTP responses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, paging.ErrInvalidField),
		errors.Is(err, paging.ErrInvalidArgument),
		errors.Is(err, services.ErrUnknownCountry),
		errors.Is(err, services.ErrIDMismatch):
		c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "not found"})
	case errors.Is(err, context.Canceled):
		// client went away
		c.Abort()
	case errors.Is(err, paging.ErrSourceUnavailable), errors.Is(err, context.DeadlineExceeded):
		logFailure(c, err)
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponseDTO{Error: "storage unavailable"})
	default:
		logFailure(c, err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal error"})
	}
}

func logFailure(c *gin.Context, err error) {
	_ = c.Error(err)
	logger.ErrorWithFields("request failed", logger.Fields{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"request_id": middleware.RequestIDFromContext(c.Request.Context()),
		"error":      err.Error(),
	})
}
