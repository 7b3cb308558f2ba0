package models

// SeedFile is the layout of the bulk import file.
type SeedFile struct {
	Countries []SeedCountry `yaml:"countries"`
}

// SeedCountry is a country with its cities as listed in the seed file.
type SeedCountry struct {
	Name   string     `yaml:"name"`
	ISO2   string     `yaml:"iso2"`
	ISO3   string     `yaml:"iso3"`
	Cities []SeedCity `yaml:"cities"`
}

type SeedCity struct {
	Name string  `yaml:"name"`
	Lat  float64 `yaml:"lat"`
	Lon  float64 `yaml:"lon"`
}
