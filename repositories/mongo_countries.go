package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"world-cities/db"
	"world-cities/dto"
	"world-cities/models"
	"world-cities/paging"
)

type MongoCountryRepository struct {
	d      *mongo.Database
	col    *mongo.Collection
	cities *mongo.Collection
}

func NewMongoCountryRepository(d *mongo.Database) *MongoCountryRepository {
	return &MongoCountryRepository{
		d:      d,
		col:    d.Collection(db.CountriesCollection),
		cities: d.Collection(db.CitiesCollection),
	}
}

// countryPipeline counts each country's cities and renames keys to match
// dto.CountryFields.
func countryPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: db.CitiesCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "country_id"},
			{Key: "as", Value: "cities"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "id", Value: "$_id"},
			{Key: "name", Value: 1},
			{Key: "iso2", Value: 1},
			{Key: "iso3", Value: 1},
			{Key: "tot_cities", Value: bson.D{{Key: "$size", Value: "$cities"}}},
		}}},
	}
}

func (r *MongoCountryRepository) Query() paging.Source[dto.CountryDTO] {
	return newMongoSource[dto.CountryDTO](r.col, countryPipeline())
}

func (r *MongoCountryRepository) FindByID(ctx context.Context, id int64) (*dto.CountryDTO, error) {
	p := append(mongo.Pipeline{{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}}}, countryPipeline()...)
	cur, err := r.col.Aggregate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("find country %d: %w", id, err)
	}
	var out []dto.CountryDTO
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("find country %d: %w", id, err)
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}

func (r *MongoCountryRepository) FindByName(ctx context.Context, name string) (*models.Country, error) {
	var c models.Country
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find country %q: %w", name, err)
	}
	return &c, nil
}

func (r *MongoCountryRepository) Insert(ctx context.Context, c *models.Country) error {
	id, err := nextID(ctx, r.d, db.CountriesCollection)
	if err != nil {
		return err
	}
	c.ID = id
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert country: %w", err)
	}
	return nil
}

func (r *MongoCountryRepository) Update(ctx context.Context, c models.Country) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return fmt.Errorf("update country %d: %w", c.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete is not transactional: the cities are removed after the country.
func (r *MongoCountryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete country %d: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	if _, err := r.cities.DeleteMany(ctx, bson.M{"country_id": id}); err != nil {
		return fmt.Errorf("delete cities of country %d: %w", id, err)
	}
	return nil
}

func (r *MongoCountryRepository) ExistsByField(ctx context.Context, column, value string, excludeID int64) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{column: value, "_id": bson.M{"$ne": excludeID}})
	if err != nil {
		return false, fmt.Errorf("check duplicate country %s: %w", column, err)
	}
	return n > 0, nil
}
