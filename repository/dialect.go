// Package repository provides relational storage for tasks and the
// read-only reference lists (categories, users) tasks point at.
//
// All statements are parameterized. The same SQL runs against MySQL,
// SQLite and PostgreSQL; a Dialect only decides the placeholder syntax and
// how a generated id is read back.
package repository

import "fmt"

// Dialect describes the SQL flavour of a database/sql driver.
type Dialect struct {
	// Driver is the name registered with database/sql.
	Driver string
	// numbered placeholders ($1, $2, ...) instead of ?.
	numbered bool
	// returning reads generated ids with INSERT ... RETURNING id.
	returning bool
}

var (
	MySQL    = Dialect{Driver: "mysql"}
	SQLite   = Dialect{Driver: "sqlite3"}
	Postgres = Dialect{Driver: "pgx", numbered: true, returning: true}
)

// DialectFor maps a configured driver name to its dialect.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "mysql":
		return MySQL, nil
	case "sqlite3", "sqlite":
		return SQLite, nil
	case "pgx", "postgres", "postgresql":
		return Postgres, nil
	}
	return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
}

// Placeholder returns the bind marker for the n-th argument, counting from 1.
func (d Dialect) Placeholder(n int) string {
	if d.numbered {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// placeholders returns count markers starting at the first argument.
func (d Dialect) placeholders(count int) []string {
	ps := make([]string, count)
	for i := range ps {
		ps[i] = d.Placeholder(i + 1)
	}
	return ps
}
