package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// History sources for the trend reconciler
const (
	HistorySourcePostgres = "postgres"
	HistorySourceAPI      = "api"
	HistorySourceNone     = "none"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port               int
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string

	// Logging configuration
	LogFormat string
	LogLevel  string
	LogBodies bool

	// Database configuration
	DatabaseURL string
	DBMaxConns  int

	// Auth configuration
	JWTSecret string

	// Analysis configuration
	MaxWorkers int

	// Price history configuration
	HistorySource     string
	HistoryAPIURL     string
	HistoryAPITimeout time.Duration
	HistoryMaxDays    int
}

// LoadConfig loads the application configuration from environment variables
func LoadConfig() (*Config, error) {
	loadDotEnv()

	config := &Config{
		// Server configuration
		Port:               getEnvInt("PORT", 8080),
		ReadTimeout:        time.Duration(getEnvInt("READ_TIMEOUT", 15)) * time.Second,
		WriteTimeout:       time.Duration(getEnvInt("WRITE_TIMEOUT", 15)) * time.Second,
		CORSAllowedOrigins: getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),

		// Logging configuration
		LogFormat: getEnvString("LOG_FORMAT", "json"),
		LogLevel:  getEnvString("LOG_LEVEL", "info"),
		LogBodies: getEnvBool("LOG_BODIES", false),

		// Database configuration
		DatabaseURL: os.Getenv("POSTGRES_DB_URL"),
		DBMaxConns:  getEnvInt("DB_MAX_CONNS", 10),

		// Auth configuration
		JWTSecret: os.Getenv("JWT_SECRET"),

		// Analysis configuration
		MaxWorkers: getEnvInt("MAX_WORKERS", 5),

		// Price history configuration
		HistorySource:     strings.ToLower(getEnvString("HISTORY_SOURCE", HistorySourcePostgres)),
		HistoryAPIURL:     strings.TrimRight(os.Getenv("HISTORY_API_URL"), "/"),
		HistoryAPITimeout: time.Duration(getEnvInt("HISTORY_API_TIMEOUT", 10)) * time.Second,
		HistoryMaxDays:    getEnvInt("HISTORY_MAX_DAYS", 30),
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// loadDotEnv loads a .env file from the project root, then from the current directory
func loadDotEnv() {
	execPath, err := os.Executable()
	if err != nil {
		log.Printf("Warning: Could not determine executable path: %v", err)
	}

	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(execPath)))
	envPath := filepath.Join(projectRoot, ".env")

	if err := godotenv.Load(envPath); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found or error loading .env file. Using environment variables.")
		} else {
			log.Println("Loaded environment variables from current directory .env file")
		}
	} else {
		log.Printf("Loaded environment variables from %s", envPath)
	}
}

// validateConfig rejects unusable values and logs warnings for missing critical ones
func validateConfig(config *Config) error {
	switch config.HistorySource {
	case HistorySourcePostgres, HistorySourceAPI, HistorySourceNone:
	default:
		return fmt.Errorf("invalid HISTORY_SOURCE %q: expected postgres, api or none", config.HistorySource)
	}

	if config.HistorySource == HistorySourceAPI && config.HistoryAPIURL == "" {
		return fmt.Errorf("HISTORY_API_URL is required when HISTORY_SOURCE=api")
	}

	if config.HistoryMaxDays < 1 {
		log.Printf("Invalid HISTORY_MAX_DAYS %d, using 30", config.HistoryMaxDays)
		config.HistoryMaxDays = 30
	}

	if config.MaxWorkers < 1 {
		log.Printf("Invalid MAX_WORKERS %d, using 5", config.MaxWorkers)
		config.MaxWorkers = 5
	}

	if config.DatabaseURL == "" {
		log.Println("Warning: No POSTGRES_DB_URL provided. Database requests will fail.")
	}

	if config.JWTSecret == "" {
		log.Println("Warning: No JWT_SECRET provided. Every authenticated request will be rejected.")
	}

	return nil
}

// getEnvInt gets an integer from an environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvBool gets a boolean from an environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	valueStr = strings.ToLower(valueStr)
	return valueStr == "true" || valueStr == "1" || valueStr == "yes"
}

// getEnvString gets a string from an environment variable with a default value
func getEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvStringSlice gets a string slice from a comma-separated environment variable
func getEnvStringSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, value := range strings.Split(valueStr, ",") {
		if value = strings.TrimSpace(value); value != "" {
			values = append(values, value)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
