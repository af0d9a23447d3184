package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	// Content store
	ContentDir string
	RoutesDir  string
	DataDir    string
	// Email (SMTP)
	SMTPHost      string
	SMTPPort      int
	SMTPSecure    bool
	SMTPUser      string
	SMTPPass      string
	EmailFrom     string
	EmailTo       string
	EmailTestMode bool // When true, emails are logged to console instead of sent
	// Google Indexing API
	IndexingSecretKey string
	GoogleClientEmail string
	GooglePrivateKey  string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		AppURL:            getEnv("APP_URL", "https://revivephysio.in"),
		ContentDir:        getEnv("CONTENT_DIR", "content"),
		RoutesDir:         getEnv("ROUTES_DIR", "routes"),
		DataDir:           getEnv("DATA_DIR", "data"),
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          getEnvInt("SMTP_PORT", 587),
		SMTPSecure:        getEnvBool("SMTP_SECURE", false),
		SMTPUser:          getEnv("SMTP_USER", ""),
		SMTPPass:          getEnv("SMTP_PASS", ""),
		EmailFrom:         getEnv("SMTP_FROM", "noreply@revivephysio.in"),
		EmailTo:           getEnv("EMAIL_TO", "care@revivephysio.in"),
		EmailTestMode:     getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		IndexingSecretKey: getEnv("INDEXING_SECRET_KEY", ""),
		GoogleClientEmail: getEnv("GOOGLE_CLIENT_EMAIL", ""),
		GooglePrivateKey:  getEnv("GOOGLE_PRIVATE_KEY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid integer for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}
