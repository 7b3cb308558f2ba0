package services

import (
	"context"
	"errors"
	"math"

	"world-cities/dto"
	"world-cities/models"
	"world-cities/paging"
	"world-cities/repositories"
)

// CityService runs city CRUD and paged listings.
type CityService struct {
	cities    repositories.CityRepository
	countries repositories.CountryRepository
}

func NewCityService(cities repositories.CityRepository, countries repositories.CountryRepository) *CityService {
	return &CityService{cities: cities, countries: countries}
}

// List returns one page of cities joined with their country names.
func (s *CityService) List(ctx context.Context, q paging.Query) (paging.Page[dto.CityDTO], error) {
	return paging.Build(ctx, s.cities.Query(), dto.CityFields, q)
}

func (s *CityService) Get(ctx context.Context, id int64) (*dto.CityDTO, error) {
	return s.cities.FindByID(ctx, id)
}

// Create inserts a new city. Any id in the input is ignored.
func (s *CityService) Create(ctx context.Context, in dto.CityInput) (*dto.CityDTO, error) {
	c := normalizeCity(in.Model())
	c.ID = 0
	if err := s.ensureCountry(ctx, c.CountryID); err != nil {
		return nil, err
	}
	if err := s.cities.Insert(ctx, &c); err != nil {
		return nil, err
	}
	return s.cities.FindByID(ctx, c.ID)
}

// Update replaces the city stored under id. The input must carry the same id.
func (s *CityService) Update(ctx context.Context, id int64, in dto.CityInput) (*dto.CityDTO, error) {
	if in.ID != id {
		return nil, ErrIDMismatch
	}
	c := normalizeCity(in.Model())
	if err := s.ensureCountry(ctx, c.CountryID); err != nil {
		return nil, err
	}
	if err := s.cities.Update(ctx, c); err != nil {
		return nil, err
	}
	return s.cities.FindByID(ctx, id)
}

func (s *CityService) Delete(ctx context.Context, id int64) error {
	return s.cities.Delete(ctx, id)
}

// IsDupe reports whether another city has the same name, coordinates and country.
func (s *CityService) IsDupe(ctx context.Context, in dto.CityInput) (bool, error) {
	return s.cities.IsDupe(ctx, normalizeCity(in.Model()))
}

func (s *CityService) ensureCountry(ctx context.Context, id int64) error {
	_, err := s.countries.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUnknownCountry
	}
	return err
}

// normalizeCity rounds coordinates to the four decimals the store keeps, so
// that duplicate checks compare what is actually stored.
func normalizeCity(c models.City) models.City {
	c.Lat = roundCoord(c.Lat)
	c.Lon = roundCoord(c.Lon)
	return c
}

func roundCoord(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
