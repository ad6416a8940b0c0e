package repository

import (
	"strings"
	"testing"

	"TaskBoardService/config"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMySQLDSNFromFields(t *testing.T) {
	dsn, err := mysqlDSN(config.Database{
		Username: "app",
		Password: "secret",
		Address:  "db:3307",
		Name:     "taskdb",
	})
	require.NoError(t, err)

	cfg, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "app", cfg.User)
	assert.Equal(t, "secret", cfg.Passwd)
	assert.Equal(t, "tcp", cfg.Net)
	assert.Equal(t, "db:3307", cfg.Addr)
	assert.Equal(t, "taskdb", cfg.DBName)
	assert.True(t, cfg.ParseTime)
	assert.True(t, cfg.ClientFoundRows)
}

func TestMySQLDSNKeepsGivenDSN(t *testing.T) {
	dsn, err := mysqlDSN(config.Database{DSN: "u:p@tcp(localhost:3306)/other"})
	require.NoError(t, err)

	cfg, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "other", cfg.DBName)
	assert.True(t, cfg.ParseTime)
	assert.True(t, cfg.ClientFoundRows)

	_, err = mysqlDSN(config.Database{DSN: "not a dsn"})
	assert.Error(t, err)
}

func TestTaskTitleColumnIsUnbounded(t *testing.T) {
	// titles are stored as sent and only their trimmed length is limited
	for driver, stmts := range schemas {
		var tasks string
		for _, stmt := range stmts {
			if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS tasks") {
				tasks = stmt
			}
		}
		require.NotEmpty(t, tasks, driver)
		assert.Contains(t, tasks, "title TEXT NOT NULL", driver)
	}
}
