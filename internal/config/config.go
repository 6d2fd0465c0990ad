package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	App   AppConfig
	JWT   JWTConfig
	Store StoreConfig
	Cron  CronConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Name        string
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// StoreConfig controls the in-memory HR store and how its no-ops surface over HTTP.
type StoreConfig struct {
	Timezone          string
	DeductionRate     decimal.Decimal
	StrictMode        bool
	SeedFixtures      bool
	DefaultEmployeeID string
}

type CronConfig struct {
	PayrollInterval time.Duration // 0 disables
}

func Load() (*Config, error) {
	// .env is optional; real environment variables still apply.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Name:        getEnv("APP_NAME", "zenith-hr"),
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "24h"),
	}

	// Store configuration
	deductionRate, err := decimal.NewFromString(getEnv("PAYROLL_DEDUCTION_RATE", "0.15"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_DEDUCTION_RATE: %w", err)
	}
	strictMode, err := strconv.ParseBool(getEnv("STRICT_MODE", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid STRICT_MODE: %w", err)
	}
	seedFixtures, err := strconv.ParseBool(getEnv("SEED_FIXTURES", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_FIXTURES: %w", err)
	}

	config.Store = StoreConfig{
		Timezone:          getEnv("STORE_TIMEZONE", "UTC"),
		DeductionRate:     deductionRate,
		StrictMode:        strictMode,
		SeedFixtures:      seedFixtures,
		DefaultEmployeeID: getEnv("DEFAULT_EMPLOYEE_ID", "emp1"),
	}

	// Cron configuration
	payrollInterval, err := time.ParseDuration(getEnv("PAYROLL_RECALC_INTERVAL", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_RECALC_INTERVAL: %w", err)
	}
	config.Cron = CronConfig{PayrollInterval: payrollInterval}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid STORE_TIMEZONE: %w", err)
	}
	if c.Store.DeductionRate.IsNegative() || c.Store.DeductionRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("PAYROLL_DEDUCTION_RATE must be between 0 and 1")
	}
	if strings.TrimSpace(c.Store.DefaultEmployeeID) == "" {
		return fmt.Errorf("DEFAULT_EMPLOYEE_ID is required")
	}
	if c.Cron.PayrollInterval < 0 {
		return fmt.Errorf("PAYROLL_RECALC_INTERVAL cannot be negative")
	}
	return nil
}

// Location resolves the store timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Store.Timezone)
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.App.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
