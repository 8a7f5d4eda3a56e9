package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Services  ServicesConfig
	AdClients AdClientsConfig
	Server    ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	OpenAIAPIKey       string
	ResendAPIKey       string
	DefaultEmailSender string
	WebAppURI          string
}

// AdClientsConfig holds credentials for the advertising platform connectors.
// The connectors run in mock mode, so missing credentials are not an error.
type AdClientsConfig struct {
	VKAppID       string
	DirectToken   string
	DirectLogin   string
	DirectSandbox bool
	AvitoClientID string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Services configuration
	if cfg.Services.OpenAIAPIKey, err = requireEnv("OPENAI_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.DefaultEmailSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return nil, err
	}
	cfg.Services.WebAppURI = getEnvWithDefault("WEB_APP_URI", "http://localhost:3000")

	// Ad platform credentials
	cfg.AdClients.VKAppID = getEnvWithDefault("VK_ADS_APP_ID", "")
	cfg.AdClients.DirectToken = getEnvWithDefault("YANDEX_DIRECT_TOKEN", "")
	cfg.AdClients.DirectLogin = getEnvWithDefault("YANDEX_DIRECT_LOGIN", "")
	directSandbox := getEnvWithDefault("YANDEX_DIRECT_SANDBOX", "true")
	cfg.AdClients.DirectSandbox, err = strconv.ParseBool(directSandbox)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YANDEX_DIRECT_SANDBOX: %w", err)
	}
	cfg.AdClients.AvitoClientID = getEnvWithDefault("AVITO_CLIENT_ID", "")

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
