package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Reporting ReportingConfig
	App       AppConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	// URL is the full connection string. It may be empty at startup;
	// data routes fail per-request when it is missing.
	URL string
}

type ReportingConfig struct {
	// EndpointURL is the runtime error delivery target. Empty disables reporting.
	EndpointURL string
	// BoardID is the environment fallback for board id resolution, already trimmed.
	BoardID string
}

type AppConfig struct {
	Environment string
	ServiceName string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8000"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Reporting: ReportingConfig{
			EndpointURL: getEnv("RUNTIME_ERROR_ENDPOINT_URL", ""),
			BoardID:     strings.TrimSpace(getEnv("BOARD_ID", "")),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			ServiceName: getEnv("SERVICE_NAME", "Backend API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
