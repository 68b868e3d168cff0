package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "bottleops-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, float64(18), cfg.Billing.DefaultTaxPct)
	assert.Equal(t, float64(50), cfg.Billing.DefaultBottlePrice)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BOTTLEOPS_DATABASE_HOST", "db.internal")
	t.Setenv("BOTTLEOPS_APP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "9090", cfg.App.Port)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss/word",
		DBName:   "bottleops",
		SSLMode:  "disable",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	// Special characters in the password must be escaped.
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestValidate_BillingBounds(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Billing.DefaultTaxPct = 150

	assert.Error(t, cfg.validate())
}
