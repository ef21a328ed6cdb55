package app

import (
	"os"
	"strconv"
	"time"

	"go-roster/internal/auth"
	"go-roster/internal/shared/connection"
	"go-roster/internal/storage"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

type Config struct {
	Port           string
	StorageDriver  string
	SQLitePath     string
	RedisAddr      string
	RedisKeyPrefix string
	Postgres       connection.PostgresConfig
	KafkaBroker    string
	LoginDelay     time.Duration
	ConnectRetries int
}

// LoadConfig reads the process environment. Call godotenv.Load first to
// pick up a local .env file.
func LoadConfig() Config {
	cfg := Config{
		Port:           getenv("PORT", "3000"),
		StorageDriver:  getenv("STORAGE_DRIVER", DriverSQLite),
		SQLitePath:     getenv("SQLITE_PATH", "data/roster.db"),
		RedisAddr:      getenv("REDIS_ADDR", "localhost:6379"),
		RedisKeyPrefix: getenv("REDIS_KEY_PREFIX", storage.DefaultRedisPrefix),
		Postgres: connection.PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     getenv("DB_PORT", "5432"),
			SSLMode:  os.Getenv("DB_SSLMODE"),
		},
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		LoginDelay:     auth.DefaultLoginDelay,
		ConnectRetries: 5,
	}

	if ms, err := strconv.Atoi(os.Getenv("LOGIN_DELAY_MS")); err == nil && ms >= 0 {
		cfg.LoginDelay = time.Duration(ms) * time.Millisecond
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
