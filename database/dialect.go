package database

import (
	"strconv"
	"strings"

	"financetracker/backend/config"
)

// Dialect captures the SQL differences between the supported drivers.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// DialectFor returns the dialect for a configured driver name.
func DialectFor(driver string) Dialect {
	if driver == config.DriverPostgres {
		return Postgres
	}
	return SQLite
}

func (d Dialect) String() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite"
}

// Rebind rewrites ? placeholders into the dialect's bind syntax. Queries are
// written with ? throughout.
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

// Placeholders returns n comma separated ? placeholders.
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
