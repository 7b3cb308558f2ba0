package paging

import (
	"context"
	"math"
)

// Query carries the paging, sorting and filtering parameters of one request.
type Query struct {
	PageIndex    int
	PageSize     int
	SortColumn   string
	SortOrder    string
	FilterColumn string
	FilterQuery  string
}

// Build filters src, counts the remaining rows, orders and windows them, and
// materializes the requested page.
//
// Without a SortColumn no ordering is applied and the row order is whatever
// the source yields, which is not deterministic for database backed sources.
// SortOrder "ASC" (any case) sorts ascending; every other value sorts
// descending and is reported as "DESC".
//
// Build never returns a partial page. Unknown columns fail with
// *InvalidFieldError, store failures with *SourceUnavailableError, and a
// cancelled ctx with the context's error.
func Build[T any](ctx context.Context, src Source[T], fields *Fields[T], q Query) (Page[T], error) {
	if q.PageSize <= 0 {
		return Page[T]{}, &InvalidArgumentError{Name: "pageSize", Value: q.PageSize}
	}
	if q.PageIndex < 0 || q.PageIndex > math.MaxInt/q.PageSize {
		return Page[T]{}, &InvalidArgumentError{Name: "pageIndex", Value: q.PageIndex}
	}

	if q.FilterColumn != "" {
		f, err := fields.Lookup(q.FilterColumn)
		if err != nil {
			return Page[T]{}, err
		}
		if q.FilterQuery != "" {
			src = src.WhereStartsWith(f, q.FilterQuery)
		}
	}

	count, err := src.Count(ctx)
	if err != nil {
		return Page[T]{}, sourceError("count", err)
	}

	if q.SortColumn != "" {
		f, err := fields.Lookup(q.SortColumn)
		if err != nil {
			return Page[T]{}, err
		}
		dir := ParseDirection(q.SortOrder)
		q.SortOrder = dir.String()
		src = src.OrderBy(f, dir)
	}

	src = src.Skip(q.PageIndex * q.PageSize).Take(q.PageSize)

	items, err := src.List(ctx)
	if err != nil {
		return Page[T]{}, sourceError("list", err)
	}
	return newPage(items, count, q), nil
}
