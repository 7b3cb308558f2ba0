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

const countryView = `(SELECT co.id AS id, co.name AS name, co.iso2 AS iso2, co.iso3 AS iso3,
	(SELECT COUNT(*) FROM cities ci WHERE ci.country_id = co.id) AS tot_cities
	FROM countries co) AS country_view`

var countryColumns = []string{"id", "name", "iso2", "iso3", "tot_cities"}

type SQLCountryRepository struct {
	conn    *sql.DB
	dialect db.Dialect
}

func NewSQLCountryRepository(conn *sql.DB, d db.Dialect) *SQLCountryRepository {
	return &SQLCountryRepository{conn: conn, dialect: d}
}

func scanCountry(row scanner) (dto.CountryDTO, error) {
	var c dto.CountryDTO
	err := row.Scan(&c.ID, &c.Name, &c.ISO2, &c.ISO3, &c.TotCities)
	return c, err
}

// Query returns the country listing source.
func (r *SQLCountryRepository) Query() paging.Source[dto.CountryDTO] {
	return newSQLSource(r.conn, r.dialect, countryView, countryColumns, scanCountry)
}

func (r *SQLCountryRepository) FindByID(ctx context.Context, id int64) (*dto.CountryDTO, error) {
	const q = `SELECT id, name, iso2, iso3, tot_cities FROM ` + countryView + ` WHERE id = ?`
	c, err := scanCountry(r.conn.QueryRowContext(ctx, r.dialect.Rebind(q), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find country %d: %w", id, err)
	}
	return &c, nil
}

// FindByName returns the first country with exactly this name.
func (r *SQLCountryRepository) FindByName(ctx context.Context, name string) (*models.Country, error) {
	const q = `SELECT id, name, iso2, iso3 FROM countries WHERE name = ? ORDER BY id LIMIT 1`
	var c models.Country
	err := r.conn.QueryRowContext(ctx, r.dialect.Rebind(q), name).Scan(&c.ID, &c.Name, &c.ISO2, &c.ISO3)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find country %q: %w", name, err)
	}
	return &c, nil
}

func (r *SQLCountryRepository) Insert(ctx context.Context, c *models.Country) error {
	const q = `INSERT INTO countries (name, iso2, iso3) VALUES (?, ?, ?) RETURNING id`
	if err := r.conn.QueryRowContext(ctx, r.dialect.Rebind(q), c.Name, c.ISO2, c.ISO3).Scan(&c.ID); err != nil {
		return fmt.Errorf("insert country: %w", err)
	}
	return nil
}

func (r *SQLCountryRepository) Update(ctx context.Context, c models.Country) error {
	const q = `UPDATE countries SET name = ?, iso2 = ?, iso3 = ? WHERE id = ?`
	res, err := r.conn.ExecContext(ctx, r.dialect.Rebind(q), c.Name, c.ISO2, c.ISO3, c.ID)
	if err != nil {
		return fmt.Errorf("update country %d: %w", c.ID, err)
	}
	return expectAffected(res)
}

// Delete removes the country and its cities in one transaction.
func (r *SQLCountryRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete country %d: %w", id, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM cities WHERE country_id = ?`), id); err != nil {
		return fmt.Errorf("delete cities of country %d: %w", id, err)
	}
	res, err := tx.ExecContext(ctx, r.dialect.Rebind(`DELETE FROM countries WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete country %d: %w", id, err)
	}
	if err := expectAffected(res); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *SQLCountryRepository) ExistsByField(ctx context.Context, column, value string, excludeID int64) (bool, error) {
	q := `SELECT COUNT(*) FROM countries WHERE ` + db.QuoteIdent(column) + ` = ? AND id <> ?`
	var n int
	if err := r.conn.QueryRowContext(ctx, r.dialect.Rebind(q), value, excludeID).Scan(&n); err != nil {
		return false, fmt.Errorf("check duplicate country %s: %w", column, err)
	}
	return n > 0, nil
}
