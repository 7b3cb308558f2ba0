package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"world-cities/db"
	"world-cities/dto"
	"world-cities/models"
	"world-cities/paging"
)

const cityView = `(SELECT ci.id AS id, ci.name AS name, ci.lat AS lat, ci.lon AS lon,
	ci.country_id AS country_id, co.name AS country_name
	FROM cities ci JOIN countries co ON co.id = ci.country_id) AS city_view`

var cityColumns = []string{"id", "name", "lat", "lon", "country_id", "country_name"}

type SQLCityRepository struct {
	conn    *sql.DB
	dialect db.Dialect
}

func NewSQLCityRepository(conn *sql.DB, d db.Dialect) *SQLCityRepository {
	return &SQLCityRepository{conn: conn, dialect: d}
}

func scanCity(row scanner) (dto.CityDTO, error) {
	var c dto.CityDTO
	err := row.Scan(&c.ID, &c.Name, &c.Lat, &c.Lon, &c.CountryID, &c.CountryName)
	return c, err
}

// Query returns the city listing source.
func (r *SQLCityRepository) Query() paging.Source[dto.CityDTO] {
	return newSQLSource(r.conn, r.dialect, cityView, cityColumns, scanCity)
}

// FindByID returns a city with its country name.
func (r *SQLCityRepository) FindByID(ctx context.Context, id int64) (*dto.CityDTO, error) {
	const q = `SELECT id, name, lat, lon, country_id, country_name FROM ` + cityView + ` WHERE id = ?`
	c, err := scanCity(r.conn.QueryRowContext(ctx, r.dialect.Rebind(q), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find city %d: %w", id, err)
	}
	return &c, nil
}

func (r *SQLCityRepository) Insert(ctx context.Context, c *models.City) error {
	const q = `INSERT INTO cities (name, lat, lon, country_id) VALUES (?, ?, ?, ?) RETURNING id`
	if err := r.conn.QueryRowContext(ctx, r.dialect.Rebind(q), c.Name, c.Lat, c.Lon, c.CountryID).Scan(&c.ID); err != nil {
		return fmt.Errorf("insert city: %w", err)
	}
	return nil
}

func (r *SQLCityRepository) Update(ctx context.Context, c models.City) error {
	const q = `UPDATE cities SET name = ?, lat = ?, lon = ?, country_id = ? WHERE id = ?`
	res, err := r.conn.ExecContext(ctx, r.dialect.Rebind(q), c.Name, c.Lat, c.Lon, c.CountryID, c.ID)
	if err != nil {
		return fmt.Errorf("update city %d: %w", c.ID, err)
	}
	return expectAffected(res)
}

func (r *SQLCityRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.conn.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM cities WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete city %d: %w", id, err)
	}
	return expectAffected(res)
}

func (r *SQLCityRepository) IsDupe(ctx context.Context, c models.City) (bool, error) {
	const q = `SELECT COUNT(*) FROM cities WHERE name = ? AND lat = ? AND lon = ? AND country_id = ? AND id <> ?`
	var n int
	if err := r.conn.QueryRowContext(ctx, r.dialect.Rebind(q), c.Name, c.Lat, c.Lon, c.CountryID, c.ID).Scan(&n); err != nil {
		return false, fmt.Errorf("check duplicate city: %w", err)
	}
	return n > 0, nil
}

func expectAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
