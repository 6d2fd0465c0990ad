package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "UTC", cfg.Store.Timezone)
	assert.True(t, decimal.RequireFromString("0.15").Equal(cfg.Store.DeductionRate))
	assert.False(t, cfg.Store.StrictMode)
	assert.True(t, cfg.Store.SeedFixtures)
	assert.Equal(t, "emp1", cfg.Store.DefaultEmployeeID)
	assert.Equal(t, time.Duration(0), cfg.Cron.PayrollInterval)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STRICT_MODE", "true")
	t.Setenv("SEED_FIXTURES", "false")
	t.Setenv("STORE_TIMEZONE", "Asia/Jakarta")
	t.Setenv("PAYROLL_DEDUCTION_RATE", "0.2")
	t.Setenv("PAYROLL_RECALC_INTERVAL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.True(t, cfg.Store.StrictMode)
	assert.False(t, cfg.Store.SeedFixtures)
	assert.True(t, decimal.RequireFromString("0.2").Equal(cfg.Store.DeductionRate))
	assert.Equal(t, 30*time.Minute, cfg.Cron.PayrollInterval)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", loc.String())
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"APP_PORT":                "eighty",
		"STRICT_MODE":             "maybe",
		"PAYROLL_DEDUCTION_RATE":  "1.5",
		"PAYROLL_RECALC_INTERVAL": "-1h",
		"STORE_TIMEZONE":          "Mars/Olympus",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("JWT_SECRET_KEY", "test-secret")
			t.Setenv(key, value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
