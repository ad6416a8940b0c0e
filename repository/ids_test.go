package repository_test

import (
	"testing"

	"TaskBoardService/repository"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := map[string]int64{
		"12":                   12,
		"  7":                  7,
		"12abc":                12,
		"+5":                   5,
		"-3":                   -3,
		"007":                  7,
		"abc":                  0,
		"":                     0,
		"-":                    0,
		"1.9":                  1,
		"99999999999999999999": 0,
	}
	for in, want := range tests {
		assert.Equal(t, want, repository.ParseID(in), "ParseID(%q)", in)
	}
}

func TestDialectFor(t *testing.T) {
	for name, want := range map[string]repository.Dialect{
		"mysql":    repository.MySQL,
		"sqlite":   repository.SQLite,
		"sqlite3":  repository.SQLite,
		"postgres": repository.Postgres,
		"pgx":      repository.Postgres,
	} {
		got, err := repository.DialectFor(name)
		assert.NoError(t, err)
		assert.Equal(t, want, got, name)
	}
	_, err := repository.DialectFor("oracle")
	assert.Error(t, err)

	assert.Equal(t, "?", repository.MySQL.Placeholder(4))
	assert.Equal(t, "$4", repository.Postgres.Placeholder(4))
}
