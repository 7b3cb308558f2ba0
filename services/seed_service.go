package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"world-cities/dto"
	"world-cities/logger"
	"world-cities/models"
	"world-cities/repositories"
)

// LoadSeedFile reads a YAML seed file.
func LoadSeedFile(path string) (*models.SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f models.SeedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &f, nil
}

// SeedService adds the countries and cities of a seed file that are not stored yet.
type SeedService struct {
	cities    repositories.CityRepository
	countries repositories.CountryRepository
}

func NewSeedService(cities repositories.CityRepository, countries repositories.CountryRepository) *SeedService {
	return &SeedService{cities: cities, countries: countries}
}

// Import adds every country not yet present by name and every city not yet
// present by name, coordinates and country. It can be run repeatedly; a
// second run over the same file adds nothing.
func (s *SeedService) Import(ctx context.Context, f *models.SeedFile) (dto.SeedResultDTO, error) {
	var res dto.SeedResultDTO
	for _, sc := range f.Countries {
		if sc.Name == "" {
			continue
		}
		country, err := s.countries.FindByName(ctx, sc.Name)
		if errors.Is(err, repositories.ErrNotFound) {
			country = &models.Country{Name: sc.Name, ISO2: sc.ISO2, ISO3: sc.ISO3}
			if err = s.countries.Insert(ctx, country); err != nil {
				return res, err
			}
			res.CountriesAdded++
		} else if err != nil {
			return res, err
		}

		added, err := s.importCities(ctx, country.ID, sc.Cities)
		res.CitiesAdded += added
		if err != nil {
			return res, err
		}
	}

	logger.InfoWithFields("seed import finished", logger.Fields{
		"countries_added": res.CountriesAdded,
		"cities_added":    res.CitiesAdded,
	})
	return res, nil
}

func (s *SeedService) importCities(ctx context.Context, countryID int64, cities []models.SeedCity) (int, error) {
	added := 0
	for _, sc := range cities {
		if sc.Name == "" {
			continue
		}
		c := normalizeCity(models.City{Name: sc.Name, Lat: sc.Lat, Lon: sc.Lon, CountryID: countryID})
		dupe, err := s.cities.IsDupe(ctx, c)
		if err != nil {
			return added, err
		}
		if dupe {
			continue
		}
		if err := s.cities.Insert(ctx, &c); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
