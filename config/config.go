package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	ListURLTemplate string
	PagesToCrawl    int

	MaxConcurrency    int
	RequestDelay      time.Duration
	NavigationTimeout time.Duration
	BlockCooldown     time.Duration

	Headless       bool
	ViewportWidth  int
	ViewportHeight int
	AcceptLanguage string
	ChromeBin      string

	CSVOutputPath string
	LogLevel      string
	MaxRetries    int
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "scraper"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "scraper123"),
		PostgresDB:       getEnv("POSTGRES_DB", "olx_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		ListURLTemplate: getEnv("LIST_URL_TEMPLATE", "https://www.olx.ua/uk/list/?page=%d"),
		PagesToCrawl:    getEnvInt("PAGES_TO_CRAWL", 5),

		MaxConcurrency:    getEnvInt("MAX_CONCURRENCY", 1),
		RequestDelay:      getEnvDuration("REQUEST_DELAY", time.Second),
		NavigationTimeout: getEnvDuration("NAVIGATION_TIMEOUT", 30*time.Second),
		BlockCooldown:     getEnvDuration("BLOCK_COOLDOWN", 45*time.Second),

		Headless:       getEnvBool("HEADLESS", true),
		ViewportWidth:  getEnvInt("VIEWPORT_WIDTH", 1980),
		ViewportHeight: getEnvInt("VIEWPORT_HEIGHT", 1020),
		AcceptLanguage: getEnv("ACCEPT_LANGUAGE", "en-US,en;q=0.9,uk-UA;q=0.8,uk;q=0.7"),
		ChromeBin:      getEnv("CHROME_BIN", ""),

		CSVOutputPath: getEnv("CSV_OUTPUT_PATH", "./output/records.csv"),
		LogLevel:      getEnv("LOG_LEVEL", "debug"),
		MaxRetries:    getEnvInt("MAX_RETRIES", 3),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

// ListPageURL returns the list-page URL for a 1-based page index.
func (c *Config) ListPageURL(page int) string {
	return fmt.Sprintf(c.ListURLTemplate, page)
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		d, err := time.ParseDuration(val)
		if err == nil {
			return d
		}
	}
	return fallback
}
