package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "transfers"
user = "app"

[site]
company_name = "Acme Transfer"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "transfers", cfg.Database.DBName)
	assert.True(t, cfg.Pricing.VerifySubmittedTotal)
	assert.Equal(t, 16, cfg.Pricing.MaxPassengers)
	assert.Equal(t, "Acme Transfer", cfg.Site.CompanyName)
	assert.Equal(t, "TRY", cfg.Site.Currency)
	assert.Equal(t, "@every 1h", cfg.Jobs.CouponExpirySchedule)
}

func TestLoad_OverridesPricing(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "transfers"

[pricing]
verify_submitted_total = false
max_passengers = 8
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.Pricing.VerifySubmittedTotal)
	assert.Equal(t, 8, cfg.Pricing.MaxPassengers)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `[server]
http_port = 8080`))
	assert.ErrorContains(t, err, "database.dbname")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=d sslmode=disable", cfg.DSN())
}
