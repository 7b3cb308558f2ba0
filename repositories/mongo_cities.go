package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"world-cities/db"
	"world-cities/dto"
	"world-cities/models"
	"world-cities/paging"
)

type MongoCityRepository struct {
	d   *mongo.Database
	col *mongo.Collection
}

func NewMongoCityRepository(d *mongo.Database) *MongoCityRepository {
	return &MongoCityRepository{d: d, col: d.Collection(db.CitiesCollection)}
}

// cityPipeline joins the country name and renames keys to match dto.CityFields.
func cityPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: db.CountriesCollection},
			{Key: "localField", Value: "country_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "country"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "id", Value: "$_id"},
			{Key: "name", Value: 1},
			{Key: "lat", Value: 1},
			{Key: "lon", Value: 1},
			{Key: "country_id", Value: 1},
			{Key: "country_name", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{"$country.name", 0}}}},
		}}},
	}
}

func (r *MongoCityRepository) Query() paging.Source[dto.CityDTO] {
	return newMongoSource[dto.CityDTO](r.col, cityPipeline())
}

func (r *MongoCityRepository) FindByID(ctx context.Context, id int64) (*dto.CityDTO, error) {
	p := append(mongo.Pipeline{{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}}}, cityPipeline()...)
	cur, err := r.col.Aggregate(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("find city %d: %w", id, err)
	}
	var out []dto.CityDTO
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("find city %d: %w", id, err)
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return &out[0], nil
}

func (r *MongoCityRepository) Insert(ctx context.Context, c *models.City) error {
	id, err := nextID(ctx, r.d, db.CitiesCollection)
	if err != nil {
		return err
	}
	c.ID = id
	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("insert city: %w", err)
	}
	return nil
}

func (r *MongoCityRepository) Update(ctx context.Context, c models.City) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return fmt.Errorf("update city %d: %w", c.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCityRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete city %d: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoCityRepository) IsDupe(ctx context.Context, c models.City) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{
		"name":       c.Name,
		"lat":        c.Lat,
		"lon":        c.Lon,
		"country_id": c.CountryID,
		"_id":        bson.M{"$ne": c.ID},
	})
	if err != nil {
		return false, fmt.Errorf("check duplicate city: %w", err)
	}
	return n > 0, nil
}

// nextID allocates sequential integer ids from the counters collection so
// that both backends expose the same id space.
func nextID(ctx context.Context, d *mongo.Database, name string) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := d.Collection(db.CountersCollection).FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("allocate %s id: %w", name, err)
	}
	return doc.Seq, nil
}
