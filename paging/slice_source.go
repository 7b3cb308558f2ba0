package paging

import (
	"context"
	"slices"
	"strings"
)

// SliceSource is an in-memory Source. Operations are recorded and replayed
// in call order against a copy of the items on Count and List.
type SliceSource[T any] struct {
	items []T
	ops   []func([]T) []T
}

// FromSlice wraps items without copying them; the slice must not be modified
// while the source is in use.
func FromSlice[T any](items []T) *SliceSource[T] {
	return &SliceSource[T]{items: items}
}

func (s *SliceSource[T]) with(op func([]T) []T) *SliceSource[T] {
	return &SliceSource[T]{items: s.items, ops: append(slices.Clip(s.ops), op)}
}

func (s *SliceSource[T]) WhereStartsWith(f Field[T], prefix string) Source[T] {
	return s.with(func(in []T) []T {
		return slices.DeleteFunc(in, func(v T) bool {
			return !strings.HasPrefix(f.Text(v), prefix)
		})
	})
}

func (s *SliceSource[T]) OrderBy(f Field[T], dir Direction) Source[T] {
	return s.with(func(in []T) []T {
		slices.SortStableFunc(in, func(a, b T) int {
			if dir == Descending {
				return f.Compare(b, a)
			}
			return f.Compare(a, b)
		})
		return in
	})
}

func (s *SliceSource[T]) Skip(n int) Source[T] {
	return s.with(func(in []T) []T {
		if n <= 0 {
			return in
		}
		if n >= len(in) {
			return in[:0]
		}
		return in[n:]
	})
}

func (s *SliceSource[T]) Take(n int) Source[T] {
	n = max(n, 0)
	return s.with(func(in []T) []T {
		if n < len(in) {
			return in[:n]
		}
		return in
	})
}

func (s *SliceSource[T]) run(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := slices.Clone(s.items)
	for _, op := range s.ops {
		out = op(out)
	}
	return out, nil
}

func (s *SliceSource[T]) Count(ctx context.Context) (int, error) {
	out, err := s.run(ctx)
	if err != nil {
		return 0, err
	}
	return len(out), nil
}

func (s *SliceSource[T]) List(ctx context.Context) ([]T, error) {
	return s.run(ctx)
}
