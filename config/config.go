// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	Database DatabaseConfig
	Email    EmailConfig
	Printer  PrinterConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// StoreConfig holds bill store configuration.
type StoreConfig struct {
	// BillsDir is the root directory for persisted receipts and row-sets.
	BillsDir string
	// CatalogPath optionally points at a JSON catalog file. Empty means
	// the built-in catalog is used.
	CatalogPath string
}

// DatabaseConfig holds master sales store configuration.
type DatabaseConfig struct {
	// URL selects the driver by scheme: postgres:// connects to
	// PostgreSQL, anything else is treated as a SQLite file path.
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// EmailConfig holds email service configuration.
type EmailConfig struct {
	ResendAPIKey string
	FromName     string
	FromEmail    string
	SMTPHost     string
	SMTPPort     int
}

// PrinterConfig holds print dispatch configuration.
type PrinterConfig struct {
	// Enabled toggles the spooler-backed printer. When false the
	// unavailable variant is wired instead.
	Enabled bool
	// SpoolerCommand is the print command handed the receipt file.
	SpoolerCommand string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Store: StoreConfig{
			BillsDir:    getEnv("BILLS_DIR", "bills"),
			CatalogPath: getEnv("CATALOG_PATH", ""),
		},
		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", "data/master_bills.db"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			FromName:     getEnv("EMAIL_FROM_NAME", "Grocery Billing System"),
			FromEmail:    getEnv("EMAIL_FROM_ADDRESS", "billing@example.com"),
			SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		},
		Printer: PrinterConfig{
			Enabled:        getEnvAsBool("PRINTER_ENABLED", false),
			SpoolerCommand: getEnv("PRINTER_COMMAND", "lp"),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
