package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	CORS     CORSConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// DatabaseConfig holds DB connection values.
type DatabaseConfig struct {
	Driver         string
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values. An empty Addr disables Redis.
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	AuditStream  string
	StreamMaxLen int64
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// CORSConfig restricts cross-origin access to the browser client.
type CORSConfig struct {
	AllowOrigins []string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	driver := strings.ToLower(getEnv("DB_DRIVER", DriverPostgres))
	if driver != DriverPostgres && driver != DriverMySQL {
		return nil, fmt.Errorf("invalid DB_DRIVER %q: want %s or %s", driver, DriverPostgres, DriverMySQL)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "ssm-api"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "5000"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Database: DatabaseConfig{
			Driver:         driver,
			DSN:            os.Getenv("DB_DSN"),
			MaxConns:       int32(getEnvAsInt("DB_MAX_CONNS", 10)),
			MinConns:       int32(getEnvAsInt("DB_MIN_CONNS", 2)),
			RunMigrations:  getEnvAsBool("DB_RUN_MIGRATIONS", true),
			ConnMaxIdleSec: int32(getEnvAsInt("DB_CONN_MAX_IDLE_SECONDS", 30)),
			ConnMaxLifeSec: int32(getEnvAsInt("DB_CONN_MAX_LIFE_SECONDS", 300)),
		},
		Redis: RedisConfig{
			Addr:         os.Getenv("REDIS_ADDR"),
			Password:     os.Getenv("REDIS_PASSWORD"),
			DB:           redisDB,
			AuditStream:  getEnv("REDIS_AUDIT_STREAM", "ssm:audit"),
			StreamMaxLen: int64(getEnvAsInt("REDIS_AUDIT_STREAM_MAXLEN", 10000)),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		CORS: CORSConfig{
			AllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// IsDev reports whether the service runs in development mode.
func (a AppConfig) IsDev() bool {
	return a.Env == "development"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
