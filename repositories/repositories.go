package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"world-cities/config"
	"world-cities/db"
	"world-cities/dto"
	"world-cities/models"
	"world-cities/paging"
)

// ErrNotFound is returned when the addressed row does not exist.
var ErrNotFound = errors.New("not found")

// CityRepository stores cities. Query returns the listing source joined with
// country names.
type CityRepository interface {
	Query() paging.Source[dto.CityDTO]
	FindByID(ctx context.Context, id int64) (*dto.CityDTO, error)
	// Insert assigns c.ID.
	Insert(ctx context.Context, c *models.City) error
	Update(ctx context.Context, c models.City) error
	Delete(ctx context.Context, id int64) error
	// IsDupe reports whether a city other than c.ID has the same name,
	// coordinates and country.
	IsDupe(ctx context.Context, c models.City) (bool, error)
}

// CountryRepository stores countries. Query returns the listing source with
// per-country city counts.
type CountryRepository interface {
	Query() paging.Source[dto.CountryDTO]
	FindByID(ctx context.Context, id int64) (*dto.CountryDTO, error)
	FindByName(ctx context.Context, name string) (*models.Country, error)
	// Insert assigns c.ID.
	Insert(ctx context.Context, c *models.Country) error
	Update(ctx context.Context, c models.Country) error
	// Delete removes the country and its cities.
	Delete(ctx context.Context, id int64) error
	// ExistsByField reports whether a country other than excludeID has value
	// in column.
	ExistsByField(ctx context.Context, column, value string, excludeID int64) (bool, error)
}

// Store bundles the repositories of one backend.
type Store struct {
	Cities    CityRepository
	Countries CountryRepository
	ping      func(ctx context.Context) error
	close     func(ctx context.Context) error
}

func (s *Store) Ping(ctx context.Context) error { return s.ping(ctx) }

func (s *Store) Close(ctx context.Context) error { return s.close(ctx) }

// NewSQLStore builds a Store over an open database.
func NewSQLStore(conn *sql.DB, d db.Dialect) *Store {
	return &Store{
		Cities:    NewSQLCityRepository(conn, d),
		Countries: NewSQLCountryRepository(conn, d),
		ping:      conn.PingContext,
		close:     func(context.Context) error { return conn.Close() },
	}
}

// NewMongoStore builds a Store over a Mongo database.
func NewMongoStore(d *mongo.Database) *Store {
	return &Store{
		Cities:    NewMongoCityRepository(d),
		Countries: NewMongoCountryRepository(d),
		ping:      func(ctx context.Context) error { return db.PingMongo(ctx, d) },
		close:     func(ctx context.Context) error { return d.Client().Disconnect(ctx) },
	}
}

// Open connects the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		conn, err := db.OpenSQL(ctx, db.SQLite, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return NewSQLStore(conn, db.SQLite), nil
	case config.DriverPostgres:
		conn, err := db.OpenSQL(ctx, db.Postgres, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return NewSQLStore(conn, db.Postgres), nil
	case config.DriverMongo:
		d, err := db.InitMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		return NewMongoStore(d), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
