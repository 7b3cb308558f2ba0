package paging

import (
	"encoding/json"
	"slices"
)

// Page is one window of a filtered and sorted result set plus the metadata
// describing where it sits. A Page is immutable once built.
type Page[T any] struct {
	data         []T
	pageIndex    int
	pageSize     int
	totalCount   int
	totalPages   int
	sortColumn   string
	sortOrder    string
	filterColumn string
	filterQuery  string
}

func newPage[T any](data []T, count int, q Query) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		data:         data,
		pageIndex:    q.PageIndex,
		pageSize:     q.PageSize,
		totalCount:   count,
		totalPages:   (count + q.PageSize - 1) / q.PageSize,
		sortColumn:   q.SortColumn,
		sortOrder:    q.SortOrder,
		filterColumn: q.FilterColumn,
		filterQuery:  q.FilterQuery,
	}
}

// Data returns a copy of the page items.
func (p Page[T]) Data() []T { return slices.Clone(p.data) }

func (p Page[T]) Len() int { return len(p.data) }
func (p Page[T]) PageIndex() int { return p.pageIndex }
func (p Page[T]) PageSize() int { return p.pageSize }
func (p Page[T]) TotalCount() int { return p.totalCount }
func (p Page[T]) TotalPages() int { return p.totalPages }
func (p Page[T]) SortColumn() string { return p.sortColumn }
func (p Page[T]) SortOrder() string { return p.sortOrder }
func (p Page[T]) FilterColumn() string { return p.filterColumn }
func (p Page[T]) FilterQuery() string { return p.filterQuery }

func (p Page[T]) HasPreviousPage() bool { return p.pageIndex > 0 }
func (p Page[T]) HasNextPage() bool { return p.pageIndex+1 < p.totalPages }

type pageJSON[T any] struct {
	Data            []T     `json:"data"`
	PageIndex       int     `json:"pageIndex"`
	PageSize        int     `json:"pageSize"`
	TotalCount      int     `json:"totalCount"`
	TotalPages      int     `json:"totalPages"`
	SortColumn      *string `json:"sortColumn"`
	SortOrder       *string `json:"sortOrder"`
	FilterColumn    *string `json:"filterColumn"`
	FilterQuery     *string `json:"filterQuery"`
	HasPreviousPage bool    `json:"hasPreviousPage"`
	HasNextPage     bool    `json:"hasNextPage"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// MarshalJSON writes absent sort and filter settings as null.
func (p Page[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(pageJSON[T]{
		Data:            p.data,
		PageIndex:       p.pageIndex,
		PageSize:        p.pageSize,
		TotalCount:      p.totalCount,
		TotalPages:      p.totalPages,
		SortColumn:      optional(p.sortColumn),
		SortOrder:       optional(p.sortOrder),
		FilterColumn:    optional(p.filterColumn),
		FilterQuery:     optional(p.filterQuery),
		HasPreviousPage: p.HasPreviousPage(),
		HasNextPage:     p.HasNextPage(),
	})
}
