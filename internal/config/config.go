package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Config holds application configuration
type Config struct {
	Env  string
	Port string

	// Storage
	StorageDriver  string
	StorageTimeout time.Duration
	SQLitePath     string

	// PostgreSQL
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	// Ledger presentation
	Currency string
	Location *time.Location
}

var appConfig *Config

// Load loads configuration from environment variables, reading .env first
// when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:  getEnv("ENV", "development"),
		Port: getEnv("PORT", "8080"),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", DriverSQLite)),
		SQLitePath:    getEnv("SQLITE_PATH", "treasury.db"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "treasury"),
		DBPassword: getEnv("DB_PASSWORD", "treasury"),
		DBName:     getEnv("DB_NAME", "treasury"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisPrefix:   getEnv("REDIS_PREFIX", "treasury:"),

		Currency: strings.ToUpper(getEnv("CURRENCY", "EGP")),
	}

	switch config.StorageDriver {
	case DriverSQLite, DriverPostgres, DriverRedis, DriverMemory:
	default:
		log.Printf("Warning: unknown STORAGE_DRIVER '%s', falling back to sqlite\n", config.StorageDriver)
		config.StorageDriver = DriverSQLite
	}

	timeoutStr := getEnv("STORAGE_TIMEOUT", "3s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		log.Printf("Warning: invalid STORAGE_TIMEOUT value '%s', falling back to 3s\n", timeoutStr)
		timeout = 3 * time.Second
	}
	config.StorageTimeout = timeout

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		log.Printf("Warning: invalid REDIS_DB value, falling back to 0\n")
		redisDB = 0
	}
	config.RedisDB = redisDB

	tz := getEnv("LEDGER_TIMEZONE", "UTC")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("Warning: unknown LEDGER_TIMEZONE '%s', falling back to UTC\n", tz)
		loc = time.UTC
	}
	config.Location = loc

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// PostgresDSN returns the key/value DSN used by gorm's postgres driver.
func (c *Config) PostgresDSN() string {
	return "host=" + c.DBHost + " port=" + c.DBPort + " user=" + c.DBUser +
		" password=" + c.DBPassword + " dbname=" + c.DBName + " sslmode=" + c.DBSSLMode
}

// PostgresURL returns the URL form used by golang-migrate.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort +
		"/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
