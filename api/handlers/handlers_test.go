package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"world-cities/config"
	"world-cities/db"
	"world-cities/dto"
	"world-cities/models"
	"world-cities/paging"
	"world-cities/repositories"
	"world-cities/services"
)

var testPaging = config.PagingConfig{DefaultPageSize: 10, MaxPageSize: 50}

type testServer struct {
	engine *gin.Engine
	store  *repositories.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn, err := db.OpenSQL(context.Background(), db.SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	store := repositories.NewSQLStore(conn, db.SQLite)

	citySvc := services.NewCityService(store.Cities, store.Countries)
	countrySvc := services.NewCountryService(store.Countries)

	r := gin.New()
	r.GET("/cities", ListCitiesHandler(citySvc, testPaging))
	r.GET("/cities/:id", GetCityHandler(citySvc))
	r.POST("/cities", CreateCityHandler(citySvc))
	r.PUT("/cities/:id", UpdateCityHandler(citySvc))
	r.DELETE("/cities/:id", DeleteCityHandler(citySvc))
	r.POST("/cities/is-dupe", IsDupeCityHandler(citySvc))
	r.GET("/countries", ListCountriesHandler(countrySvc, testPaging))
	r.GET("/countries/:id", GetCountryHandler(countrySvc))
	r.POST("/countries", CreateCountryHandler(countrySvc))
	r.PUT("/countries/:id", UpdateCountryHandler(countrySvc))
	r.DELETE("/countries/:id", DeleteCountryHandler(countrySvc))
	r.POST("/countries/is-dupe-field", IsDupeCountryFieldHandler(countrySvc))

	return &testServer{engine: r, store: store}
}

func (s *testServer) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) country(t *testing.T, name, iso2, iso3 string) models.Country {
	t.Helper()
	c := models.Country{Name: name, ISO2: iso2, ISO3: iso3}
	require.NoError(t, s.store.Countries.Insert(context.Background(), &c))
	return c
}

func (s *testServer) city(t *testing.T, name string, countryID int64) models.City {
	t.Helper()
	c := models.City{Name: name, Lat: 10, Lon: 20, CountryID: countryID}
	require.NoError(t, s.store.Cities.Insert(context.Background(), &c))
	return c
}

func TestListCitiesHandler(t *testing.T) {
	s := newTestServer(t)
	fr := s.country(t, "France", "FR", "FRA")
	for i := 0; i < 25; i++ {
		s.city(t, fmt.Sprintf("City-%02d", i), fr.ID)
	}

	w := s.do(t, http.MethodGet, "/cities?pageIndex=1&pageSize=10&sortColumn=name&sortOrder=asc", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got dto.PaginationCityDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Data, 10)
	assert.Equal(t, "City-10", got.Data[0].Name)
	assert.Equal(t, "France", got.Data[0].CountryName)
	assert.Equal(t, 25, got.TotalCount)
	assert.Equal(t, 3, got.TotalPages)
	assert.Equal(t, 1, got.PageIndex)
	assert.True(t, got.HasPreviousPage)
	assert.True(t, got.HasNextPage)
	require.NotNil(t, got.SortOrder)
	assert.Equal(t, "ASC", *got.SortOrder)
	assert.Nil(t, got.FilterColumn)
}

func TestListCitiesHandler_PageSize(t *testing.T) {
	s := newTestServer(t)
	fr := s.country(t, "France", "FR", "FRA")
	for i := 0; i < 60; i++ {
		s.city(t, fmt.Sprintf("City-%02d", i), fr.ID)
	}

	testCases := []struct {
		name     string
		query    string
		wantCode int
		wantSize int
	}{
		{name: "default", query: "", wantCode: http.StatusOK, wantSize: 10},
		{name: "clamped", query: "?pageSize=500", wantCode: http.StatusOK, wantSize: 50},
		{name: "zero", query: "?pageSize=0", wantCode: http.StatusBadRequest},
		{name: "negative index", query: "?pageIndex=-1", wantCode: http.StatusBadRequest},
		{name: "not a number", query: "?pageIndex=abc", wantCode: http.StatusBadRequest},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			w := s.do(t, http.MethodGet, "/cities"+testCase.query, nil)
			require.Equal(t, testCase.wantCode, w.Code, w.Body.String())
			if testCase.wantCode != http.StatusOK {
				return
			}
			var got dto.PaginationCityDTO
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, testCase.wantSize, got.PageSize)
			assert.Len(t, got.Data, testCase.wantSize)
		})
	}
}

func TestListCitiesHandler_UnknownColumn(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/cities?sortColumn=population", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"paging: property 'population' does not exist"}`, w.Body.String())

	w = s.do(t, http.MethodGet, "/cities?filterColumn=population", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCountriesHandler_Filter(t *testing.T) {
	s := newTestServer(t)
	fr := s.country(t, "France", "FR", "FRA")
	s.country(t, "Finland", "FI", "FIN")
	s.country(t, "Spain", "ES", "ESP")
	s.city(t, "Paris", fr.ID)

	w := s.do(t, http.MethodGet, "/countries?filterColumn=name&filterQuery=F&sortColumn=name", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got dto.PaginationCountryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Data, 2)
	assert.Equal(t, "France", got.Data[0].Name)
	assert.EqualValues(t, 1, got.Data[0].TotCities)
	assert.Equal(t, "Finland", got.Data[1].Name)
	assert.Equal(t, 2, got.TotalCount)
	require.NotNil(t, got.SortOrder)
	assert.Equal(t, "DESC", *got.SortOrder)
	require.NotNil(t, got.FilterQuery)
	assert.Equal(t, "F", *got.FilterQuery)
}

func TestCityHandlers_CRUD(t *testing.T) {
	s := newTestServer(t)
	fr := s.country(t, "France", "FR", "FRA")

	w := s.do(t, http.MethodPost, "/cities", map[string]any{"name": "Paris", "lat": 48.8566, "lon": 2.3522, "countryId": fr.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created dto.CityDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "France", created.CountryName)

	target := fmt.Sprintf("/cities/%d", created.ID)
	w = s.do(t, http.MethodGet, target, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodPut, target, map[string]any{"id": created.ID + 1, "name": "Paris", "lat": 1, "lon": 1, "countryId": fr.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPut, target, map[string]any{"id": created.ID, "name": "Lutetia", "lat": 0, "lon": 0, "countryId": fr.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated dto.CityDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Lutetia", updated.Name)
	assert.Zero(t, updated.Lat)

	w = s.do(t, http.MethodDelete, target, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = s.do(t, http.MethodGet, target, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = s.do(t, http.MethodDelete, target, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCityHandler_Validation(t *testing.T) {
	s := newTestServer(t)
	fr := s.country(t, "France", "FR", "FRA")

	testCases := []struct {
		name string
		body map[string]any
	}{
		{name: "missing name", body: map[string]any{"lat": 1, "lon": 1, "countryId": fr.ID}},
		{name: "missing lat", body: map[string]any{"name": "X", "lon": 1, "countryId": fr.ID}},
		{name: "lat out of range", body: map[string]any{"name": "X", "lat": 91, "lon": 1, "countryId": fr.ID}},
		{name: "unknown country", body: map[string]any{"name": "X", "lat": 1, "lon": 1, "countryId": 999}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/cities", testCase.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}

	w := s.do(t, http.MethodGet, "/cities/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIsDupeCityHandler(t *testing.T) {
	s := newTestServer(t)
	fr := s.country(t, "France", "FR", "FRA")
	paris := s.city(t, "Paris", fr.ID)

	w := s.do(t, http.MethodPost, "/cities/is-dupe", map[string]any{"name": "Paris", "lat": 10, "lon": 20, "countryId": fr.ID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Body.String())

	w = s.do(t, http.MethodPost, "/cities/is-dupe", map[string]any{"id": paris.ID, "name": "Paris", "lat": 10, "lon": 20, "countryId": fr.ID})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "false", w.Body.String())
}

func TestCountryHandlers(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/countries", map[string]any{"name": "France", "iso2": "FR", "iso3": "FRA"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var fr dto.CountryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fr))
	s.city(t, "Paris", fr.ID)

	w = s.do(t, http.MethodPost, "/countries", map[string]any{"name": "Spain", "iso2": "ESP", "iso3": "ESP"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/countries/is-dupe-field", map[string]any{"countryId": 0, "fieldName": "iso3", "fieldValue": "FRA"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "true", w.Body.String())

	w = s.do(t, http.MethodPost, "/countries/is-dupe-field", map[string]any{"countryId": fr.ID, "fieldName": "iso3", "fieldValue": "FRA"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "false", w.Body.String())

	w = s.do(t, http.MethodPost, "/countries/is-dupe-field", map[string]any{"fieldName": "capital", "fieldValue": "Paris"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	target := fmt.Sprintf("/countries/%d", fr.ID)
	w = s.do(t, http.MethodPut, target, map[string]any{"id": fr.ID, "name": "France", "iso2": "FR", "iso3": "FRX"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodDelete, target, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = s.do(t, http.MethodGet, "/cities", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalCount":0`)
}

type failingCities struct {
	repositories.CityRepository
}

func (failingCities) Query() paging.Source[dto.CityDTO] {
	return failingSource{}
}

type failingSource struct{}

func (s failingSource) WhereStartsWith(paging.Field[dto.CityDTO], string) paging.Source[dto.CityDTO] {
	return s
}
func (s failingSource) OrderBy(paging.Field[dto.CityDTO], paging.Direction) paging.Source[dto.CityDTO] {
	return s
}
func (s failingSource) Skip(int) paging.Source[dto.CityDTO] { return s }
func (s failingSource) Take(int) paging.Source[dto.CityDTO] { return s }
func (failingSource) Count(context.Context) (int, error) {
	return 0, errors.New("connection refused")
}
func (failingSource) List(context.Context) ([]dto.CityDTO, error) {
	return nil, errors.New("connection refused")
}

func TestListCitiesHandler_StoreDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/cities", ListCitiesHandler(services.NewCityService(failingCities{}, nil), testPaging))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cities", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"storage unavailable"}`, w.Body.String())
}
