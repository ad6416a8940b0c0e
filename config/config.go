// Package config loads the service configuration from the environment, an
// optional .env file and an optional config file.
package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment names.
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

const defaultPort = 4000

// Config represents the service configuration.
type Config struct {
	Env         string
	Host        string
	Port        int
	TLSCertFile string
	TLSKeyFile  string
	Database    Database
	Log         Log
	RateLimit   RateLimit
	Redis       Redis
	// TrustedProxies may set X-Forwarded-For. Empty trusts none.
	TrustedProxies []string
	// APIURL is where the tasks CLI commands send their requests.
	APIURL string
}

// Database holds the connection settings. For MySQL either DSN or the
// individual fields may be set.
type Database struct {
	Driver          string
	DSN             string
	Username        string
	Password        string
	Address         string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Migrate         bool
}

// Log holds the logger settings.
type Log struct {
	Level  string
	Format string
}

// RateLimit holds the request limiter settings. Rate is in requests per
// second. Window and WindowMax only apply to the Redis limiter, which lets
// WindowMax requests per client through in each Window.
type RateLimit struct {
	Rate      float64
	Burst     int
	Window    time.Duration
	WindowMax int
}

// Redis enables the shared rate limiter when Addr is set.
type Redis struct {
	Addr     string
	Password string
	DB       int
}

// IsDev reports whether raw errors may be shown to clients. Every
// environment except production counts as development.
func (c *Config) IsDev() bool {
	return c.Env != Production
}

// Addr returns host:port for the HTTP listener.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, fmt.Sprint(c.Port))
}

// Load reads the configuration. Outside production a .env file in the
// working directory is loaded first; a missing file is not an error.
// configPath, when not empty, names a config file whose keys use the same
// names as the environment variables, in lower case.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	if v.GetString("app_env") != Production {
		_ = godotenv.Load()
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	port := v.GetInt("server_port")
	if port <= 0 {
		port = defaultPort
	}

	return &Config{
		Env:         v.GetString("app_env"),
		Host:        v.GetString("server_host"),
		Port:        port,
		TLSCertFile: v.GetString("tls_cert_file"),
		TLSKeyFile:  v.GetString("tls_key_file"),
		Database: Database{
			Driver:          v.GetString("db_driver"),
			DSN:             v.GetString("db_dsn"),
			Username:        v.GetString("db_username"),
			Password:        v.GetString("db_password"),
			Address:         v.GetString("db_address"),
			Name:            v.GetString("db_name"),
			MaxOpenConns:    v.GetInt("db_max_open_conns"),
			MaxIdleConns:    v.GetInt("db_max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("db_conn_max_lifetime"),
			Migrate:         v.GetBool("db_migrate"),
		},
		Log: Log{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
		RateLimit: RateLimit{
			Rate:      v.GetFloat64("rate_limit"),
			Burst:     v.GetInt("rate_burst"),
			Window:    v.GetDuration("rate_window"),
			WindowMax: v.GetInt("rate_window_max"),
		},
		Redis: Redis{
			Addr:     v.GetString("redis_addr"),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
		},
		TrustedProxies: v.GetStringSlice("trusted_proxies"),
		APIURL:         v.GetString("api_url"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", Development)
	v.SetDefault("server_host", "localhost")
	v.SetDefault("server_port", defaultPort)
	v.SetDefault("db_driver", "mysql")
	v.SetDefault("db_address", "localhost:3306")
	v.SetDefault("db_name", "taskdb")
	v.SetDefault("db_max_open_conns", 10)
	v.SetDefault("db_max_idle_conns", 5)
	v.SetDefault("db_conn_max_lifetime", 5*time.Minute)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("rate_limit", 2)
	v.SetDefault("rate_burst", 20)
	v.SetDefault("rate_window", time.Minute)
	v.SetDefault("rate_window_max", 120)
	v.SetDefault("api_url", "http://localhost:4000")
}
