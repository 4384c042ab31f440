package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all app configuration
type Config struct {
	// Server
	Env       string
	HTTPPort  string
	StaticDir string

	// Upstream provider
	UpstreamBaseURL string
	APIToken        string
	TokenInHeader   bool
	UpstreamTimeout int // seconds

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Response cache
	CacheTTL int // seconds

	// Kafka (optional; empty brokers disable publishing)
	KafkaBrokers []string
	KafkaTopic   string

	// App settings
	Debug bool
}

// LoadConfig loads configuration from environment variables, with optional .env file
func LoadConfig() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := &Config{
		// Server
		Env:       getEnv("ENV", "local"),
		HTTPPort:  getEnv("HTTP_PORT", "8080"),
		StaticDir: getEnv("STATIC_DIR", ""),

		// Upstream provider
		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "https://api.example-flow.com/v1/uoa"),
		APIToken:        getEnv("UPSTREAM_API_TOKEN", ""),
		TokenInHeader:   getEnvAsBool("UPSTREAM_TOKEN_IN_HEADER", false),
		UpstreamTimeout: getEnvAsInt("UPSTREAM_TIMEOUT", 15),

		// Redis
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		// Response cache
		CacheTTL: getEnvAsInt("CACHE_TTL", 30),

		// Kafka
		KafkaBrokers: getEnvAsSlice("KAFKA_BROKERS", nil, ","),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "uoa.activity"),

		// App settings
		Debug: getEnvAsBool("DEBUG", false),
	}

	return cfg
}

// Helper functions for parsing environment variables
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := getEnv(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsSlice(key string, defaultVal []string, sep string) []string {
	valStr := getEnv(key, "")
	if valStr == "" {
		return defaultVal
	}
	return strings.Split(valStr, sep)
}
