package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "production") // skip .env lookup
	t.Setenv("SESSION_SECRET", "secret")

	c, err := Load()
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	require.Equal(t, "8000", c.Port)
	require.Equal(t, "http", c.Catalog.Source)
	require.Equal(t, "https://edu.std-900.ist.mospolytech.ru/labs/api/dishes", c.Catalog.URL)
	require.Equal(t, 10*time.Second, c.Catalog.Timeout)
	require.Zero(t, c.Catalog.RefreshInterval)
	require.Equal(t, 12*time.Hour, c.Session.TTL)
	require.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, c.CORSOrigins)
	require.True(t, c.Production())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("CATALOG_REFRESH_INTERVAL", "5m")
	t.Setenv("CORS_ORIGINS", " https://shop.example , ")

	c, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9090", c.Port)
	require.Equal(t, 5*time.Minute, c.Catalog.RefreshInterval)
	require.Equal(t, []string{"https://shop.example"}, c.CORSOrigins)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "")

	c, err := Load()
	require.NoError(t, err)
	require.ErrorContains(t, c.Validate(), "SESSION_SECRET")
}

func TestValidate_R2NeedsBucket(t *testing.T) {
	c := Config{
		Catalog: CatalogConfig{Source: "r2", Timeout: time.Second},
		Session: SessionConfig{Secret: "s", TTL: time.Hour},
	}
	require.ErrorContains(t, c.Validate(), "R2_BUCKET_NAME")

	c.Catalog.Source = "ftp"
	require.ErrorContains(t, c.Validate(), "unknown CATALOG_SOURCE")
}
