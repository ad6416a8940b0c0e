package repository

import (
	"context"
	"database/sql"
	"fmt"

	"TaskBoardService/config"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the configured database and verifies it with a ping.
//
// Returns:
// - *sql.DB: the connection pool.
// - Dialect: the SQL flavour of the driver.
// - error: An error if the driver is unknown, the DSN is malformed or the ping fails.
func Open(ctx context.Context, cfg config.Database) (*sql.DB, Dialect, error) {
	d, err := DialectFor(cfg.Driver)
	if err != nil {
		return nil, Dialect{}, err
	}

	dsn := cfg.DSN
	if d == MySQL {
		if dsn, err = mysqlDSN(cfg); err != nil {
			return nil, Dialect{}, err
		}
	}
	if dsn == "" {
		return nil, Dialect{}, fmt.Errorf("%s: connection source is empty", d.Driver)
	}

	db, err := sql.Open(d.Driver, dsn)
	if err != nil {
		return nil, Dialect{}, fmt.Errorf("%s: failed to open connection: %w", d.Driver, err)
	}

	if d == SQLite {
		// An in-memory database lives and dies with its connection, so the
		// single connection is never closed by the pool.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		db.SetConnMaxIdleTime(0)
	} else {
		if cfg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			db.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		if cfg.ConnMaxLifetime > 0 {
			db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, Dialect{}, fmt.Errorf("%s: failed to ping database: %w", d.Driver, err)
	}
	return db, d, nil
}

// mysqlDSN builds the MySQL DSN from either DB_DSN or the individual
// settings. Times are always parsed, and affected row counts report matched
// rows so that an update writing unchanged values is not mistaken for a
// missing task.
func mysqlDSN(cfg config.Database) (string, error) {
	var mc *mysql.Config
	if cfg.DSN != "" {
		parsed, err := mysql.ParseDSN(cfg.DSN)
		if err != nil {
			return "", fmt.Errorf("mysql: invalid DSN: %w", err)
		}
		mc = parsed
	} else {
		mc = mysql.NewConfig()
		mc.User = cfg.Username
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = cfg.Address
		mc.DBName = cfg.Name
		mc.AllowNativePasswords = true
	}
	mc.ParseTime = true
	mc.ClientFoundRows = true
	return mc.FormatDSN(), nil
}
