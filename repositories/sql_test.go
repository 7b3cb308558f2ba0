package repositories

import (
	"context"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"world-cities/db"
	"world-cities/dto"
	"world-cities/models"
	"world-cities/paging"
)

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()
	conn, err := db.OpenSQL(context.Background(), db.SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewSQLStore(conn, db.SQLite)
}

func insertCountry(t *testing.T, s *Store, name, iso2, iso3 string) models.Country {
	t.Helper()
	c := models.Country{Name: name, ISO2: iso2, ISO3: iso3}
	require.NoError(t, s.Countries.Insert(context.Background(), &c))
	return c
}

func insertCity(t *testing.T, s *Store, name string, lat, lon float64, countryID int64) models.City {
	t.Helper()
	c := models.City{Name: name, Lat: lat, Lon: lon, CountryID: countryID}
	require.NoError(t, s.Cities.Insert(context.Background(), &c))
	return c
}

func cityNames(items []dto.CityDTO) []string {
	out := make([]string, 0, len(items))
	for _, c := range items {
		out = append(out, c.Name)
	}
	return out
}

func TestSQLCities_SortedSecondPage(t *testing.T) {
	s := newSQLiteStore(t)
	country := insertCountry(t, s, "Testland", "TL", "TLD")
	var all []string
	for i := 0; i < 25; i++ {
		name := fmt.Sprintf("City-%d", i)
		all = append(all, name)
		insertCity(t, s, name, float64(i), float64(-i), country.ID)
	}

	page, err := paging.Build(context.Background(), s.Cities.Query(), dto.CityFields, paging.Query{
		PageIndex:  1,
		PageSize:   10,
		SortColumn: "Name",
		SortOrder:  "ASC",
	})
	require.NoError(t, err)

	slices.Sort(all)
	assert.Equal(t, all[10:20], cityNames(page.Data()))
	assert.Equal(t, 25, page.TotalCount())
	assert.Equal(t, 3, page.TotalPages())
	assert.True(t, page.HasPreviousPage())
	assert.True(t, page.HasNextPage())
	for _, c := range page.Data() {
		assert.Equal(t, "Testland", c.CountryName)
	}
}

func TestSQLCities_PrefixFilter(t *testing.T) {
	s := newSQLiteStore(t)
	fr := insertCountry(t, s, "France", "FR", "FRA")
	uk := insertCountry(t, s, "United Kingdom", "GB", "GBR")
	insertCity(t, s, "Paris", 48.8566, 2.3522, fr.ID)
	insertCity(t, s, "Paraguay", 1.5, 2.5, fr.ID)
	insertCity(t, s, "London", 51.5072, -0.1276, uk.ID)

	testCases := []struct {
		name string
		q    paging.Query
		want []string
	}{
		{name: "name prefix", q: paging.Query{FilterColumn: "name", FilterQuery: "Par", SortColumn: "name", SortOrder: "desc"}, want: []string{"Paris", "Paraguay"}},
		{name: "case sensitive", q: paging.Query{FilterColumn: "name", FilterQuery: "par"}, want: []string{}},
		{name: "joined column", q: paging.Query{FilterColumn: "countryName", FilterQuery: "United", SortColumn: "name", SortOrder: "asc"}, want: []string{"London"}},
		{name: "numeric column", q: paging.Query{FilterColumn: "lat", FilterQuery: "51.5", SortColumn: "name", SortOrder: "asc"}, want: []string{"London"}},
		{name: "like wildcards are literal", q: paging.Query{FilterColumn: "name", FilterQuery: "%"}, want: []string{}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.q.PageSize = 10
			page, err := paging.Build(context.Background(), s.Cities.Query(), dto.CityFields, testCase.q)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, cityNames(page.Data()))
			assert.Equal(t, len(testCase.want), page.TotalCount())
		})
	}
}

func TestSQLSource_NarrowAfterWindow(t *testing.T) {
	s := newSQLiteStore(t)
	country := insertCountry(t, s, "Testland", "TL", "TLD")
	for _, name := range []string{"Alpha", "Beta", "Able", "Gamma", "Axe"} {
		insertCity(t, s, name, 0, 0, country.ID)
	}
	name, err := dto.CityFields.Lookup("name")
	require.NoError(t, err)
	id, err := dto.CityFields.Lookup("id")
	require.NoError(t, err)

	// the first three by id are Alpha, Beta, Able; of those only two start with "A"
	src := s.Cities.Query().OrderBy(id, paging.Ascending).Take(3).WhereStartsWith(name, "A").OrderBy(name, paging.Descending)
	items, err := src.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Able"}, cityNames(items))

	n, err := src.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	skipped, err := s.Cities.Query().OrderBy(id, paging.Ascending).Skip(3).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Gamma", "Axe"}, cityNames(skipped))
}

func TestSQLCities_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)
	fr := insertCountry(t, s, "France", "FR", "FRA")
	it := insertCountry(t, s, "Italy", "IT", "ITA")
	paris := insertCity(t, s, "Paris", 48.8566, 2.3522, fr.ID)
	assert.NotZero(t, paris.ID)

	got, err := s.Cities.FindByID(ctx, paris.ID)
	require.NoError(t, err)
	assert.Equal(t, dto.CityDTO{ID: paris.ID, Name: "Paris", Lat: 48.8566, Lon: 2.3522, CountryID: fr.ID, CountryName: "France"}, *got)

	moved := paris
	moved.Name = "Rome"
	moved.CountryID = it.ID
	require.NoError(t, s.Cities.Update(ctx, moved))
	got, err = s.Cities.FindByID(ctx, paris.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rome", got.Name)
	assert.Equal(t, "Italy", got.CountryName)

	require.NoError(t, s.Cities.Delete(ctx, paris.ID))
	_, err = s.Cities.FindByID(ctx, paris.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Cities.Delete(ctx, paris.ID), ErrNotFound)
	assert.ErrorIs(t, s.Cities.Update(ctx, moved), ErrNotFound)
}

func TestSQLCities_IsDupe(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)
	fr := insertCountry(t, s, "France", "FR", "FRA")
	paris := insertCity(t, s, "Paris", 48.8566, 2.3522, fr.ID)

	dupe, err := s.Cities.IsDupe(ctx, models.City{Name: "Paris", Lat: 48.8566, Lon: 2.3522, CountryID: fr.ID})
	require.NoError(t, err)
	assert.True(t, dupe)

	dupe, err = s.Cities.IsDupe(ctx, paris)
	require.NoError(t, err)
	assert.False(t, dupe, "a city is not a duplicate of itself")

	dupe, err = s.Cities.IsDupe(ctx, models.City{Name: "Paris", Lat: 33.66, Lon: -95.55, CountryID: fr.ID})
	require.NoError(t, err)
	assert.False(t, dupe)
}

func TestSQLCountries_QueryCountsCities(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)
	fr := insertCountry(t, s, "France", "FR", "FRA")
	insertCountry(t, s, "Finland", "FI", "FIN")
	insertCity(t, s, "Paris", 48.8566, 2.3522, fr.ID)
	insertCity(t, s, "Lyon", 45.764, 4.8357, fr.ID)

	page, err := paging.Build(ctx, s.Countries.Query(), dto.CountryFields, paging.Query{
		PageSize:     10,
		SortColumn:   "totCities",
		FilterColumn: "iso2",
		FilterQuery:  "F",
	})
	require.NoError(t, err)

	require.Equal(t, 2, page.Len())
	data := page.Data()
	assert.Equal(t, "France", data[0].Name)
	assert.EqualValues(t, 2, data[0].TotCities)
	assert.Equal(t, "Finland", data[1].Name)
	assert.EqualValues(t, 0, data[1].TotCities)
	assert.Equal(t, "DESC", page.SortOrder())
}

func TestSQLCountries_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)
	fr := insertCountry(t, s, "France", "FR", "FRA")
	insertCity(t, s, "Paris", 48.8566, 2.3522, fr.ID)

	found, err := s.Countries.FindByName(ctx, "France")
	require.NoError(t, err)
	assert.Equal(t, fr, *found)
	_, err = s.Countries.FindByName(ctx, "france")
	assert.ErrorIs(t, err, ErrNotFound)

	fr.ISO3 = "FRX"
	require.NoError(t, s.Countries.Update(ctx, fr))
	got, err := s.Countries.FindByID(ctx, fr.ID)
	require.NoError(t, err)
	assert.Equal(t, "FRX", got.ISO3)
	assert.EqualValues(t, 1, got.TotCities)

	require.NoError(t, s.Countries.Delete(ctx, fr.ID))
	_, err = s.Countries.FindByID(ctx, fr.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	n, err := s.Cities.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "cities are deleted with their country")

	assert.ErrorIs(t, s.Countries.Delete(ctx, fr.ID), ErrNotFound)
}

func TestSQLCountries_ExistsByField(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)
	fr := insertCountry(t, s, "France", "FR", "FRA")

	exists, err := s.Countries.ExistsByField(ctx, "iso2", "FR", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.Countries.ExistsByField(ctx, "iso2", "FR", fr.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = s.Countries.ExistsByField(ctx, "name", "Germany", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}
