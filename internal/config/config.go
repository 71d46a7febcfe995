package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/weekly-payroll-go/internal/pkg/validator"
	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Name           string
	Version        string
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// PayrollConfig holds the weekly payroll policy knobs
type PayrollConfig struct {
	IncludePermanentIfNoWork bool
	CurrencySuffix           string
	Locale                   string
	Workers                  int
	SnapshotInterval         time.Duration

	DefaultEntry      string
	DefaultLunchStart string
	DefaultLunchEnd   string
	DefaultExit       string
}

func Load() (*Config, error) {
	// .env is optional, plain environment variables work too
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not read .env file", "error", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "weekly_payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Name:           getEnv("APP_NAME", "weekly-payroll"),
		Version:        getEnv("APP_VERSION", "v1.0.0"),
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}
	if len(config.App.AllowedOrigins) == 0 {
		config.App.AllowedOrigins = []string{"http://localhost:3000"}
	}

	// Payroll configuration
	includePermanent, err := strconv.ParseBool(getEnv("PAYROLL_INCLUDE_PERMANENT_IF_NO_WORK", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_INCLUDE_PERMANENT_IF_NO_WORK: %w", err)
	}

	workers, err := strconv.Atoi(getEnv("PAYROLL_WORKERS", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_WORKERS: %w", err)
	}

	snapshotInterval, err := time.ParseDuration(getEnv("PAYROLL_SNAPSHOT_INTERVAL", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_SNAPSHOT_INTERVAL: %w", err)
	}

	config.Payroll = PayrollConfig{
		IncludePermanentIfNoWork: includePermanent,
		CurrencySuffix:           getEnv("PAYROLL_CURRENCY_SUFFIX", " TL"),
		Locale:                   getEnv("PAYROLL_LOCALE", "tr"),
		Workers:                  workers,
		SnapshotInterval:         snapshotInterval,
		DefaultEntry:             getEnv("PAYROLL_DEFAULT_ENTRY", "08:15"),
		DefaultLunchStart:        getEnv("PAYROLL_DEFAULT_LUNCH_START", "13:15"),
		DefaultLunchEnd:          getEnv("PAYROLL_DEFAULT_LUNCH_END", "13:45"),
		DefaultExit:              getEnv("PAYROLL_DEFAULT_EXIT", "18:45"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Payroll.Workers < 1 {
		return fmt.Errorf("PAYROLL_WORKERS must be at least 1")
	}
	if c.Payroll.SnapshotInterval < 0 {
		return fmt.Errorf("PAYROLL_SNAPSHOT_INTERVAL must not be negative")
	}
	defaults := []struct {
		env   string
		value string
	}{
		{"PAYROLL_DEFAULT_ENTRY", c.Payroll.DefaultEntry},
		{"PAYROLL_DEFAULT_LUNCH_START", c.Payroll.DefaultLunchStart},
		{"PAYROLL_DEFAULT_LUNCH_END", c.Payroll.DefaultLunchEnd},
		{"PAYROLL_DEFAULT_EXIT", c.Payroll.DefaultExit},
	}
	for _, d := range defaults {
		if !validator.IsValidClock(d.value) {
			return fmt.Errorf("%s must be HH:MM, got %q", d.env, d.value)
		}
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
