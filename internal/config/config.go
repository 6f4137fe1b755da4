package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	Redis  RedisConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// MongoConfig holds MongoDB configuration
type MongoConfig struct {
	URI            string
	User           string
	Password       string
	Host           string
	UsersDB        string
	AdminDB        string
	ConnectTimeout time.Duration
	MaxPoolSize    int
}

// ConnectionURI returns the MongoDB connection URI. An explicit MONGO_URI
// wins; otherwise the URI is assembled from the user, password and host,
// using the Atlas SRV scheme when credentials are present.
func (c MongoConfig) ConnectionURI() string {
	if c.URI != "" {
		return c.URI
	}
	if c.User != "" {
		return "mongodb+srv://" + c.User + ":" + c.Password + "@" + c.Host + "/?retryWrites=true&w=majority&appName=growline"
	}
	return "mongodb://" + c.Host
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	PASSWORD string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Mongo: MongoConfig{
			URI:            getEnv("MONGO_URI", ""),
			User:           getEnv("MONGO_USER", ""),
			Password:       getEnv("MONGO_PASS", ""),
			Host:           getEnv("MONGO_HOST", "localhost:27017"),
			UsersDB:        getEnv("MONGO_USERS_DB", "growline_users"),
			AdminDB:        getEnv("MONGO_ADMIN_DB", "growline_admin"),
			ConnectTimeout: getEnvAsDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),
			MaxPoolSize:    getEnvAsInt("MONGO_MAX_POOL_SIZE", 100),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			PASSWORD: getEnv("REDIS_PASSWORD", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
