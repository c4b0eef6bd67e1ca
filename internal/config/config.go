package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/subosito/gotenv"
)

const (
	StorageMySQL    = "mysql"
	StorageInMemory = "inmemory"
)

type Config struct {
	AppEnv  string
	AppPort string

	LogLevel string
	LogDir   string

	StorageType string

	// MySQL. FullDSN wins over the individual fields when set.
	DBUser  string
	DBPass  string
	DBHost  string
	DBPort  string
	DBName  string
	FullDSN string

	AllowedOrigins []string
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := gotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env variables: %w", err)
	}

	cfg := &Config{
		AppEnv:   strings.ToLower(getEnv("APP_ENV", "development")),
		AppPort:  getEnv("APP_PORT", "5000"),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogDir:   getEnv("LOG_DIR", ""),

		StorageType: strings.ToLower(getEnv("STORAGE_TYPE", StorageMySQL)),

		DBUser:  os.Getenv("DB_USER"),
		DBPass:  os.Getenv("DB_PASS"),
		DBHost:  getEnv("DB_HOST", "localhost"),
		DBPort:  getEnv("DB_PORT", "3306"),
		DBName:  getEnv("DB_NAME", "finance"),
		FullDSN: os.Getenv("FULL_DSN"),

		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.AppPort); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.AppPort))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warning, error", c.LogLevel))
	}

	switch c.StorageType {
	case StorageInMemory:
	case StorageMySQL:
		if c.FullDSN == "" && (c.DBUser == "" || c.DBHost == "" || c.DBPort == "") {
			problems = append(problems, "mysql storage requires FULL_DSN or DB_USER, DB_HOST and DB_PORT")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid storage type '%s': must be one of %s, %s", c.StorageType, StorageMySQL, StorageInMemory))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
