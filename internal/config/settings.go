package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Settings configures the HTTP service and its backing stores
type Settings struct {
	HTTPAddr        string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	LogLevel        string
	LogFormat       string
	OTELEndpoint    string
	OTELServiceName string
	CacheTTL        time.Duration
	CacheSize       int
	ShutdownTimeout time.Duration
}

// LoadSettings reads settings from the environment after loading any .env
// files given (".env" when none are). Missing .env files are not an error.
func LoadSettings(envFiles ...string) (*Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return &Settings{
		HTTPAddr:        getEnvString("REFI_HTTP_ADDR", ":8080"),
		RedisAddr:       getEnvString("REFI_REDIS_ADDR", ""),
		RedisPassword:   getEnvString("REFI_REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REFI_REDIS_DB", 0),
		LogLevel:        strings.ToLower(getEnvString("REFI_LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(getEnvString("REFI_LOG_FORMAT", "console")),
		OTELEndpoint:    getEnvString("REFI_OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("REFI_OTEL_SERVICE", "refi-calculator"),
		CacheTTL:        getEnvDuration("REFI_CACHE_TTL", time.Hour),
		CacheSize:       getEnvInt("REFI_CACHE_SIZE", 1000),
		ShutdownTimeout: getEnvDuration("REFI_SHUTDOWN_TIMEOUT", 10*time.Second),
	}, nil
}

// UseRedis reports whether a Redis address is configured
func (s *Settings) UseRedis() bool { return s.RedisAddr != "" }

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
