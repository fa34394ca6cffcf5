package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"combolunch/internal/menu"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	AppEnv      string
	Port        string
	LogLevel    string
	CORSOrigins []string

	Catalog CatalogConfig
	Session SessionConfig
	R2      R2Config

	DatabaseURL string
	AdminToken  string
}

// CatalogConfig describes where dishes come from and how often they reload.
type CatalogConfig struct {
	Source          string // "http" or "r2"
	URL             string
	Timeout         time.Duration
	RefreshInterval time.Duration
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

type R2Config struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	CatalogKey string
}

func (c Config) Production() bool {
	return c.AppEnv == "production"
}

// Load reads configuration from the environment, after loading .env
// outside production. It does not validate; see Validate.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("app_env", "development")
	v.SetDefault("port", "8000")
	v.SetDefault("log_level", "info")
	v.SetDefault("cors_origins", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("catalog_source", "http")
	v.SetDefault("catalog_url", menu.DefaultSourceURL)
	v.SetDefault("catalog_timeout", "10s")
	v.SetDefault("catalog_refresh_interval", "0s")
	v.SetDefault("session_secret", "")
	v.SetDefault("session_ttl", "12h")
	v.SetDefault("database_url", "")
	v.SetDefault("admin_token", "")
	v.SetDefault("r2_endpoint", "")
	v.SetDefault("r2_access_key", "")
	v.SetDefault("r2_secret_key", "")
	v.SetDefault("r2_bucket_name", "")
	v.SetDefault("r2_catalog_key", "catalog/dishes.json")

	v.AutomaticEnv()

	if v.GetString("app_env") != "production" {
		_ = godotenv.Load()
	}

	c := Config{
		AppEnv:      v.GetString("app_env"),
		Port:        v.GetString("port"),
		LogLevel:    v.GetString("log_level"),
		CORSOrigins: splitList(v.GetString("cors_origins")),
		Catalog: CatalogConfig{
			Source:          strings.ToLower(v.GetString("catalog_source")),
			URL:             v.GetString("catalog_url"),
			Timeout:         v.GetDuration("catalog_timeout"),
			RefreshInterval: v.GetDuration("catalog_refresh_interval"),
		},
		Session: SessionConfig{
			Secret: v.GetString("session_secret"),
			TTL:    v.GetDuration("session_ttl"),
		},
		R2: R2Config{
			Endpoint:   v.GetString("r2_endpoint"),
			AccessKey:  v.GetString("r2_access_key"),
			SecretKey:  v.GetString("r2_secret_key"),
			Bucket:     v.GetString("r2_bucket_name"),
			CatalogKey: v.GetString("r2_catalog_key"),
		},
		DatabaseURL: v.GetString("database_url"),
		AdminToken:  v.GetString("admin_token"),
	}

	return c, nil
}

// Validate fails fast on settings the API server cannot start without.
func (c Config) Validate() error {
	var errs []error

	if c.Session.Secret == "" {
		errs = append(errs, errors.New("SESSION_SECRET is not set"))
	}
	if c.Session.TTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.Catalog.Timeout <= 0 {
		errs = append(errs, errors.New("CATALOG_TIMEOUT must be positive"))
	}
	if c.Catalog.RefreshInterval < 0 {
		errs = append(errs, errors.New("CATALOG_REFRESH_INTERVAL must not be negative"))
	}

	switch c.Catalog.Source {
	case "http":
		if c.Catalog.URL == "" {
			errs = append(errs, errors.New("CATALOG_URL is not set"))
		}
	case "r2":
		if c.R2.Endpoint == "" || c.R2.Bucket == "" {
			errs = append(errs, errors.New("R2_ENDPOINT and R2_BUCKET_NAME are required for CATALOG_SOURCE=r2"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown CATALOG_SOURCE %q", c.Catalog.Source))
	}

	return errors.Join(errs...)
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
