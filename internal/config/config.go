package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	JWT            JWTConfig
	Reconciliation ReconciliationConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	Secret string
	Issuer string
}

type ReconciliationConfig struct {
	DefaultTolerancePercent    float64
	DifferenceThreshold        float64
	SuggestionDefaultTolerance float64
	SuggestionMaxResults       int
	SuggestionWindowDays       int
	SuggestionPoolCap          int
	MaxAggregatesPerGroup      int
	RateLimitPerSecond         int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("INFO: no .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "recon_user"),
			Password:        getEnv("DB_PASSWORD", "recon_password"),
			Name:            getEnv("DB_NAME", "recon_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
			Issuer: getEnv("JWT_ISSUER", "backoffice-recon"),
		},
		Reconciliation: ReconciliationConfig{
			DefaultTolerancePercent:    getFloatEnv("RECON_TOLERANCE_PERCENT", 0.05),
			DifferenceThreshold:        getFloatEnv("RECON_DIFFERENCE_THRESHOLD", 100),
			SuggestionDefaultTolerance: getFloatEnv("RECON_SUGGESTION_TOLERANCE", 0.05),
			SuggestionMaxResults:       getIntEnv("RECON_SUGGESTION_MAX_RESULTS", 20),
			SuggestionWindowDays:       getIntEnv("RECON_SUGGESTION_WINDOW_DAYS", 30),
			SuggestionPoolCap:          getIntEnv("RECON_SUGGESTION_POOL_CAP", 200),
			MaxAggregatesPerGroup:      getIntEnv("RECON_MAX_AGGREGATES_PER_GROUP", 500),
			RateLimitPerSecond:         getIntEnv("RATE_LIMIT_PER_SECOND", 20),
		},
	}

	if config.JWT.Secret == "" {
		if config.IsProduction() {
			log.Fatal("JWT_SECRET environment variable must be set in production environments")
		}
		log.Println("Development environment: using generated JWT secret (set JWT_SECRET to persist tokens across restarts)")
		config.JWT.Secret = fmt.Sprintf("dev-secret-%d", time.Now().UnixNano())
	}

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
