package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.DBURL != "" {
		t.Fatalf("expected empty DBURL by default, got %q", cfg.DBURL)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != 60*time.Second {
		t.Fatalf("unexpected cache defaults: enabled=%v ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if cfg.AuthTokenTTL != 24*time.Hour {
		t.Fatalf("unexpected AuthTokenTTL: %s", cfg.AuthTokenTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORS defaults: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_AuthSecretRequiredOutsideDev(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("AUTH_TOKEN_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when AUTH_TOKEN_SECRET is empty in prod")
	}
}

func TestLoad_FeedRequiresBaseURLWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FIXTURE_FEED_ENABLED", "true")
	t.Setenv("FIXTURE_FEED_BASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when FIXTURE_FEED_ENABLED=true without FIXTURE_FEED_BASE_URL")
	}
}

func TestLoad_FeedConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FIXTURE_FEED_ENABLED", "true")
	t.Setenv("FIXTURE_FEED_BASE_URL", "https://feed.example.com/v1")
	t.Setenv("FIXTURE_FEED_TOKEN", "token-123")
	t.Setenv("FIXTURE_FEED_TIMEOUT", "5s")
	t.Setenv("FIXTURE_FEED_MAX_RETRIES", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.FeedEnabled {
		t.Fatalf("expected FeedEnabled=true")
	}
	if cfg.FeedBaseURL != "https://feed.example.com/v1" {
		t.Fatalf("unexpected FeedBaseURL: %q", cfg.FeedBaseURL)
	}
	if cfg.FeedToken != "token-123" {
		t.Fatalf("unexpected FeedToken")
	}
	if cfg.FeedTimeout != 5*time.Second {
		t.Fatalf("unexpected FeedTimeout: %s", cfg.FeedTimeout)
	}
	if cfg.FeedMaxRetries != 3 {
		t.Fatalf("unexpected FeedMaxRetries: %d", cfg.FeedMaxRetries)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]string{
		"debug":   "debug",
		"warn":    "warn",
		"warning": "warn",
		"error":   "error",
		"info":    "info",
		"bogus":   "info",
	}
	for in, want := range cases {
		if got := parseLogLevel(in).String(); got != want {
			t.Fatalf("parseLogLevel(%q)=%q want=%q", in, got, want)
		}
	}
}
