package paging

import (
	"context"
	"strings"
)

// Direction is a sort direction.
type Direction int

const (
	Descending Direction = iota
	Ascending
)

// ParseDirection maps "ASC" in any case to Ascending and everything else,
// including the empty string, to Descending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, "ASC") {
		return Ascending
	}
	return Descending
}

func (d Direction) String() string {
	if d == Ascending {
		return "ASC"
	}
	return "DESC"
}

// Source is a lazily evaluated query over items of type T. Narrowing methods
// never modify the receiver; they return a new Source. Only Count and List
// touch the underlying store.
type Source[T any] interface {
	// WhereStartsWith keeps items whose field value starts with prefix.
	// The match is case-sensitive.
	WhereStartsWith(f Field[T], prefix string) Source[T]
	OrderBy(f Field[T], dir Direction) Source[T]
	Skip(n int) Source[T]
	Take(n int) Source[T]
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]T, error)
}
