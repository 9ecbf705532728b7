package storage

import "regexp"

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

var positional = regexp.MustCompile(`\$\d+`)

// Rebind rewrites $N placeholders for drivers that only understand "?".
func (d Dialect) Rebind(query string) string {
	if d == DialectSQLite {
		return positional.ReplaceAllString(query, "?")
	}

	return query
}
