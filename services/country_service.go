package services

import (
	"context"

	"world-cities/dto"
	"world-cities/paging"
	"world-cities/repositories"
)

// dupeColumns are the country columns a duplicate check may target.
var dupeColumns = map[string]bool{"name": true, "iso2": true, "iso3": true}

// CountryService runs country CRUD, paged listings and duplicate checks.
type CountryService struct {
	countries repositories.CountryRepository
}

func NewCountryService(countries repositories.CountryRepository) *CountryService {
	return &CountryService{countries: countries}
}

// List returns one page of countries with their city counts.
func (s *CountryService) List(ctx context.Context, q paging.Query) (paging.Page[dto.CountryDTO], error) {
	return paging.Build(ctx, s.countries.Query(), dto.CountryFields, q)
}

func (s *CountryService) Get(ctx context.Context, id int64) (*dto.CountryDTO, error) {
	return s.countries.FindByID(ctx, id)
}

func (s *CountryService) Create(ctx context.Context, in dto.CountryInput) (*dto.CountryDTO, error) {
	c := in.Model()
	c.ID = 0
	if err := s.countries.Insert(ctx, &c); err != nil {
		return nil, err
	}
	return s.countries.FindByID(ctx, c.ID)
}

func (s *CountryService) Update(ctx context.Context, id int64, in dto.CountryInput) (*dto.CountryDTO, error) {
	if in.ID != id {
		return nil, ErrIDMismatch
	}
	if err := s.countries.Update(ctx, in.Model()); err != nil {
		return nil, err
	}
	return s.countries.FindByID(ctx, id)
}

// Delete removes the country together with its cities.
func (s *CountryService) Delete(ctx context.Context, id int64) error {
	return s.countries.Delete(ctx, id)
}

// IsDupeField reports whether a country other than in.CountryID already has
// in.FieldValue in in.FieldName. The field name is matched ignoring case and
// must be one of name, iso2 or iso3; anything else fails with
// *paging.InvalidFieldError.
func (s *CountryService) IsDupeField(ctx context.Context, in dto.IsDupeFieldInput) (bool, error) {
	f, err := dto.CountryFields.Lookup(in.FieldName)
	if err != nil {
		return false, err
	}
	if !dupeColumns[f.Column] {
		return false, &paging.InvalidFieldError{Field: in.FieldName}
	}
	return s.countries.ExistsByField(ctx, f.Column, in.FieldValue, in.CountryID)
}
