package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// OpenSQL opens a database for the given dialect, verifies the connection
// and creates the schema when it is missing.
func OpenSQL(ctx context.Context, d Dialect, dsn string) (*sql.DB, error) {
	if d == SQLite {
		dsn = withForeignKeys(dsn)
	}
	conn, err := sql.Open(d.Name, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.Name, err)
	}
	if d == SQLite {
		// Every connection to ":memory:" is a separate database.
		if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
			conn.SetMaxOpenConns(1)
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping %s: %w", d.Name, err)
	}
	if err := Migrate(ctx, conn, d); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// Migrate creates tables and indexes if they do not exist yet.
func Migrate(ctx context.Context, conn *sql.DB, d Dialect) error {
	idType := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if d == Postgres {
		idType = "BIGSERIAL PRIMARY KEY"
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS countries (
			id ` + idType + `,
			name VARCHAR(200) NOT NULL,
			iso2 CHAR(2) NOT NULL,
			iso3 CHAR(3) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS cities (
			id ` + idType + `,
			name VARCHAR(200) NOT NULL,
			lat NUMERIC(7,4) NOT NULL,
			lon NUMERIC(7,4) NOT NULL,
			country_id BIGINT NOT NULL REFERENCES countries(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_countries_name ON countries(name)`,
		`CREATE INDEX IF NOT EXISTS idx_countries_iso2 ON countries(iso2)`,
		`CREATE INDEX IF NOT EXISTS idx_countries_iso3 ON countries(iso3)`,
		`CREATE INDEX IF NOT EXISTS idx_cities_name ON cities(name)`,
		`CREATE INDEX IF NOT EXISTS idx_cities_lat ON cities(lat)`,
		`CREATE INDEX IF NOT EXISTS idx_cities_lon ON cities(lon)`,
		`CREATE INDEX IF NOT EXISTS idx_cities_country_id ON cities(country_id)`,
	}
	for _, stmt := range stmts {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// withForeignKeys turns on foreign key enforcement for every pooled SQLite
// connection, which a one-off PRAGMA would not do.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}
