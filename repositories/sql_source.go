package repositories

import (
	"context"
	"database/sql"
	"slices"
	"strings"
	"unicode/utf8"

	"world-cities/db"
	"world-cities/paging"
)

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

// sqlSource renders a paging.Source as a single SELECT over a table
// expression. Column names only ever come from field descriptors and are
// quoted; values are always bound parameters.
type sqlSource[T any] struct {
	conn     queryer
	dialect  db.Dialect
	from     string
	fromArgs []any
	columns  []string
	where    []string
	args     []any
	orderBy  string
	offset   int
	limit    int
	scan     func(scanner) (T, error)
}

func newSQLSource[T any](conn queryer, d db.Dialect, from string, columns []string, scan func(scanner) (T, error)) *sqlSource[T] {
	return &sqlSource[T]{conn: conn, dialect: d, from: from, columns: columns, scan: scan, limit: -1}
}

func (s *sqlSource[T]) clone() *sqlSource[T] {
	c := *s
	c.where = slices.Clip(s.where)
	c.args = slices.Clip(s.args)
	return &c
}

func (s *sqlSource[T]) windowed() bool { return s.offset > 0 || s.limit >= 0 }

// narrow returns a copy ready for another filter or ordering. Once a window
// is set the current query becomes a subquery, so the new clause applies to
// the window only.
func (s *sqlSource[T]) narrow() *sqlSource[T] {
	if !s.windowed() {
		return s.clone()
	}
	query, args := s.selectSQL()
	return &sqlSource[T]{
		conn:     s.conn,
		dialect:  s.dialect,
		from:     "(" + query + ") AS w",
		fromArgs: args,
		columns:  s.columns,
		scan:     s.scan,
		limit:    -1,
	}
}

func (s *sqlSource[T]) WhereStartsWith(f paging.Field[T], prefix string) paging.Source[T] {
	c := s.narrow()
	col := db.QuoteIdent(f.Column)
	if f.Kind == paging.KindNumber {
		col = "CAST(" + col + " AS TEXT)"
	}
	c.where = append(c.where, "substr("+col+", 1, ?) = ?")
	c.args = append(c.args, utf8.RuneCountInString(prefix), prefix)
	return c
}

func (s *sqlSource[T]) OrderBy(f paging.Field[T], dir paging.Direction) paging.Source[T] {
	c := s.narrow()
	c.orderBy = db.QuoteIdent(f.Column) + " " + dir.String()
	return c
}

func (s *sqlSource[T]) Skip(n int) paging.Source[T] {
	c := s.clone()
	if n <= 0 {
		return c
	}
	c.offset += n
	if c.limit >= 0 {
		c.limit = max(0, c.limit-n)
	}
	return c
}

func (s *sqlSource[T]) Take(n int) paging.Source[T] {
	c := s.clone()
	n = max(n, 0)
	if c.limit < 0 || n < c.limit {
		c.limit = n
	}
	return c
}

func (s *sqlSource[T]) filterSQL(b *strings.Builder) []any {
	args := append([]any(nil), s.fromArgs...)
	b.WriteString(" FROM ")
	b.WriteString(s.from)
	if len(s.where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(s.where, " AND "))
		args = append(args, s.args...)
	}
	return args
}

func (s *sqlSource[T]) selectSQL() (string, []any) {
	var b strings.Builder
	b.WriteString("SELECT ")
	for i, col := range s.columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(db.QuoteIdent(col))
	}
	args := s.filterSQL(&b)
	if s.orderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(s.orderBy)
	}
	if s.limit >= 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, s.limit)
	} else if s.offset > 0 {
		b.WriteString(" LIMIT " + s.dialect.NoLimit())
	}
	if s.offset > 0 {
		b.WriteString(" OFFSET ?")
		args = append(args, s.offset)
	}
	return b.String(), args
}

func (s *sqlSource[T]) countSQL() (string, []any) {
	if s.windowed() {
		query, args := s.selectSQL()
		return "SELECT COUNT(*) FROM (" + query + ") AS counted", args
	}
	var b strings.Builder
	b.WriteString("SELECT COUNT(*)")
	args := s.filterSQL(&b)
	return b.String(), args
}

func (s *sqlSource[T]) Count(ctx context.Context) (int, error) {
	query, args := s.countSQL()
	var n int
	if err := s.conn.QueryRowContext(ctx, s.dialect.Rebind(query), args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *sqlSource[T]) List(ctx context.Context) ([]T, error) {
	query, args := s.selectSQL()
	rows, err := s.conn.QueryContext(ctx, s.dialect.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := s.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
