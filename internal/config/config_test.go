package config

import (
	"errors"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "campus-match")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoad_MissingRequiredEnv(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")

	_, err := Load()
	if !errors.Is(err, errMissingRequiredEnv) {
		t.Fatalf("expected errMissingRequiredEnv, got %v", err)
	}
}

func TestLoad_OptionalFieldsAndDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_JSON", "true")
	t.Setenv("DB_CONNECT_TIMEOUT", "")
	t.Setenv("DB_POOL_MAX_CONNS", "12")
	t.Setenv("MATCHING_CONFIG_PATH", "/etc/campus-match/tuning.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !cfg.App.LogJSON {
		t.Fatal("LOG_JSON not parsed")
	}
	if cfg.App.TuningPath != "/etc/campus-match/tuning.yaml" {
		t.Fatalf("tuning path = %q", cfg.App.TuningPath)
	}
	if cfg.Database.ConnectTimeout != 5*time.Second {
		t.Fatalf("connect timeout = %v, want default 5s", cfg.Database.ConnectTimeout)
	}
	if cfg.Database.PoolMaxConns != 12 {
		t.Fatalf("pool max conns = %d", cfg.Database.PoolMaxConns)
	}
}

func TestLoad_BadNumericFallsBack(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_POOL_MAX_CONNS", "dozen")
	t.Setenv("DB_CONNECT_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Database.PoolMaxConns != 0 {
		t.Fatalf("pool max conns = %d, want 0", cfg.Database.PoolMaxConns)
	}
	if cfg.Database.ConnectTimeout != 5*time.Second {
		t.Fatalf("connect timeout = %v, want default", cfg.Database.ConnectTimeout)
	}
}
