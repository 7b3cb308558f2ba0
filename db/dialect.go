package db

import (
	"strconv"
	"strings"
)

// Dialect smooths over the few SQL differences between SQLite and Postgres.
// Queries are written with '?' placeholders and rebound per dialect.
type Dialect struct {
	Name string
}

var (
	SQLite   = Dialect{Name: "sqlite3"}
	Postgres = Dialect{Name: "postgres"}
)

// Rebind rewrites '?' placeholders into $1, $2, ... for Postgres.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// NoLimit is the LIMIT operand meaning "all rows", needed when only an
// OFFSET is wanted.
func (d Dialect) NoLimit() string {
	if d == Postgres {
		return "ALL"
	}
	return "-1"
}

// QuoteIdent quotes a column or table name.
func QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
