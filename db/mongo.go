package db

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"world-cities/logger"
)

const (
	CitiesCollection    = "cities"
	CountriesCollection = "countries"
	CountersCollection  = "counters"
)

var (
	clientOnce sync.Once
	database   *mongo.Database
)

// InitMongo connects the global Mongo client, pings it and ensures indexes.
// Subsequent calls return the result of the first one.
func InitMongo(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	var initErr error
	clientOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		cl, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			initErr = fmt.Errorf("connect mongo: %w", err)
			return
		}
		// Ping to verify connection
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			_ = cl.Disconnect(context.Background())
			initErr = fmt.Errorf("ping mongo: %w", err)
			return
		}
		d := cl.Database(dbName)
		if err := ensureIndexes(ctx, d); err != nil {
			_ = cl.Disconnect(context.Background())
			initErr = err
			return
		}
		database = d
		logger.Log.Infof("MongoDB connected and indexes ensured db=%s", dbName)
	})
	if initErr != nil {
		return nil, initErr
	}
	if database == nil {
		return nil, fmt.Errorf("mongo: not initialized")
	}
	return database, nil
}

// PingMongo reports whether the database answers a ping command.
func PingMongo(ctx context.Context, d *mongo.Database) error {
	return d.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// countries: name, iso2, iso3
	for _, key := range []string{"name", "iso2", "iso3"} {
		if _, err := d.Collection(CountriesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: key, Value: 1}},
			Options: options.Index().SetName("idx_" + key),
		}); err != nil {
			return fmt.Errorf("ensure countries index %s: %w", key, err)
		}
	}

	// cities: name, lat, lon, country_id
	for _, key := range []string{"name", "lat", "lon", "country_id"} {
		if _, err := d.Collection(CitiesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: key, Value: 1}},
			Options: options.Index().SetName("idx_" + key),
		}); err != nil {
			return fmt.Errorf("ensure cities index %s: %w", key, err)
		}
	}
	return nil
}
