package repositories

import (
	"context"
	"regexp"
	"slices"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"world-cities/paging"
)

// mongoSource renders a paging.Source as an aggregation pipeline: the base
// stages shape documents into T, each narrowing call appends one stage.
type mongoSource[T any] struct {
	col    *mongo.Collection
	base   mongo.Pipeline
	stages mongo.Pipeline
	empty  bool
}

func newMongoSource[T any](col *mongo.Collection, base mongo.Pipeline) *mongoSource[T] {
	return &mongoSource[T]{col: col, base: base}
}

func (s *mongoSource[T]) with(stage bson.D) *mongoSource[T] {
	c := *s
	c.stages = append(slices.Clip(s.stages), stage)
	return &c
}

func (s *mongoSource[T]) WhereStartsWith(f paging.Field[T], prefix string) paging.Source[T] {
	pattern := "^" + regexp.QuoteMeta(prefix)
	if f.Kind == paging.KindNumber {
		return s.with(bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{{Key: "$regexMatch", Value: bson.D{
			{Key: "input", Value: bson.D{{Key: "$toString", Value: "$" + f.Column}}},
			{Key: "regex", Value: pattern},
		}}}}}}})
	}
	return s.with(bson.D{{Key: "$match", Value: bson.D{{Key: f.Column, Value: primitive.Regex{Pattern: pattern}}}}})
}

func (s *mongoSource[T]) OrderBy(f paging.Field[T], dir paging.Direction) paging.Source[T] {
	order := -1
	if dir == paging.Ascending {
		order = 1
	}
	return s.with(bson.D{{Key: "$sort", Value: bson.D{{Key: f.Column, Value: order}}}})
}

func (s *mongoSource[T]) Skip(n int) paging.Source[T] {
	if n <= 0 {
		return s
	}
	return s.with(bson.D{{Key: "$skip", Value: int64(n)}})
}

// Take(0) cannot be expressed as a $limit stage, so it short-circuits.
func (s *mongoSource[T]) Take(n int) paging.Source[T] {
	if n <= 0 {
		c := *s
		c.empty = true
		return &c
	}
	return s.with(bson.D{{Key: "$limit", Value: int64(n)}})
}

func (s *mongoSource[T]) pipeline() mongo.Pipeline {
	p := make(mongo.Pipeline, 0, len(s.base)+len(s.stages)+1)
	p = append(p, s.base...)
	return append(p, s.stages...)
}

func (s *mongoSource[T]) Count(ctx context.Context) (int, error) {
	if s.empty {
		return 0, ctx.Err()
	}
	p := append(s.pipeline(), bson.D{{Key: "$count", Value: "n"}})
	cur, err := s.col.Aggregate(ctx, p)
	if err != nil {
		return 0, err
	}
	var res []struct {
		N int `bson:"n"`
	}
	if err := cur.All(ctx, &res); err != nil {
		return 0, err
	}
	if len(res) == 0 {
		return 0, nil
	}
	return res[0].N, nil
}

func (s *mongoSource[T]) List(ctx context.Context) ([]T, error) {
	if s.empty {
		return []T{}, ctx.Err()
	}
	cur, err := s.col.Aggregate(ctx, s.pipeline())
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
