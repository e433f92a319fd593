package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents the application configuration
type Config struct {
	// Redis configuration
	RedisAddr            string
	RedisDB              int
	RedisStream          string
	RedisStreamCount     int
	RedisStreamMaxLength int

	// Memcache configuration
	MemcacheAddr string

	// Search URL templates for the supported stores; %s is replaced with
	// the URL-encoded query
	TorobSearchURL    string
	EmallsSearchURL   string
	DigikalaSearchURL string

	// Crawler configuration
	MaxResultsPerStore int
	BlockSeconds       int

	// CSV export path; empty disables the export
	CSVPath string

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamCount, _ := strconv.Atoi(getEnv("REDIS_STREAM_COUNT", "1"))
	streamMaxLength, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAX_LENGTH", "500"))
	maxResults, _ := strconv.Atoi(getEnv("MAX_RESULTS_PER_STORE", "20"))
	blockSeconds, _ := strconv.Atoi(getEnv("BLOCK_SECONDS", "300"))

	return Config{
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:              redisDB,
		RedisStream:          getEnv("REDIS_STREAM", "products"),
		RedisStreamCount:     streamCount,
		RedisStreamMaxLength: streamMaxLength,
		MemcacheAddr:         getEnv("MEMCACHE_ADDR", "localhost:11211"),
		TorobSearchURL:       getEnv("TOROB_SEARCH_URL", "https://torob.com/search/?query=%s"),
		EmallsSearchURL:      getEnv("EMALLS_SEARCH_URL", "https://emalls.ir/search?q=%s"),
		DigikalaSearchURL:    getEnv("DIGIKALA_SEARCH_URL", "https://www.digikala.com/search/?q=%s"),
		MaxResultsPerStore:   maxResults,
		BlockSeconds:         blockSeconds,
		CSVPath:              getEnv("CSV_PATH", ""),
		Environment:          getEnv("BAZARYAR_ENVIRONMENT", "development"),
	}
}

// Validate checks the configuration for values the application cannot
// start with
func (c Config) Validate() error {
	for name, tmpl := range map[string]string{
		"TOROB_SEARCH_URL":    c.TorobSearchURL,
		"EMALLS_SEARCH_URL":   c.EmallsSearchURL,
		"DIGIKALA_SEARCH_URL": c.DigikalaSearchURL,
	} {
		if !strings.Contains(tmpl, "%s") {
			return fmt.Errorf("%s must contain a %%s placeholder for the query", name)
		}
	}

	if c.MaxResultsPerStore <= 0 {
		return fmt.Errorf("MAX_RESULTS_PER_STORE must be positive, got %d", c.MaxResultsPerStore)
	}
	if c.RedisStreamCount <= 0 {
		return fmt.Errorf("REDIS_STREAM_COUNT must be positive, got %d", c.RedisStreamCount)
	}
	if c.BlockSeconds <= 0 {
		return fmt.Errorf("BLOCK_SECONDS must be positive, got %d", c.BlockSeconds)
	}

	return nil
}

// BlockTime returns the per-store rate-limit block as a duration
func (c Config) BlockTime() time.Duration {
	return time.Duration(c.BlockSeconds) * time.Second
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
