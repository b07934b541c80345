package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	LogJSON     bool
	Debug       bool

	// TuningPath points at the optional YAML file carrying scorer weights,
	// behavior weights and extraction word lists.
	TuningPath string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout      time.Duration
	PoolMaxConns        int32
	PoolMinConns        int32
	PoolMaxConnLifetime time.Duration
	PoolMaxConnIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		LogJSON:     boolEnv("LOG_JSON"),
		Debug:       boolEnv("LOG_DEBUG"),
		TuningPath:  opt("MATCHING_CONFIG_PATH"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:              opt("DB_HOST"),
		DBPort:              opt("DB_PORT"),
		DBName:              opt("DB_NAME"),
		DBUser:              opt("DB_USER"),
		DBPassword:          opt("DB_PASSWORD"),
		DBSSLMode:           opt("DB_SSL_MODE"),
		ConnectTimeout:      durationEnv("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:        int32Env("DB_POOL_MAX_CONNS", 0),
		PoolMinConns:        int32Env("DB_POOL_MIN_CONNS", 0),
		PoolMaxConnLifetime: durationEnv("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime: durationEnv("DB_POOL_MAX_CONN_IDLE_TIME", 0),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func boolEnv(key string) bool {
	v := strings.TrimSpace(os.Getenv(key))
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}

func int32Env(key string, def int32) int32 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return def
	}
	return int32(n)
}

func durationEnv(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
