package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBName    string
	JWTKey    string
	SaltRound int

	WatiApiURL string // WATI WhatsApp API base URL
	WatiApiKey string // Static bearer credential held server-side

	TelegramBotToken string
	TelegramApiURL   string

	SendgridApiKey string
	EmailSender    string

	SyncIntervalMinutes int // WhatsApp template/contact cache refresh
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBName:    getEnv("DB_NAME", "microlearn"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		WatiApiURL: getEnv("WATI_API_URL", "https://live-server.wati.io/api/v1"),
		WatiApiKey: getEnv("WATI_API_KEY", ""),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramApiURL:   getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),

		SendgridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "noreply@microlearn.io"),

		SyncIntervalMinutes: getEnvInt("SYNC_INTERVAL_MINUTES", 10),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.WatiApiKey == "" {
		log.Println("Warning: WATI_API_KEY is not set. WhatsApp calls will be rejected upstream.")
	}
	if AppConfig.TelegramBotToken == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN is not set. Telegram replies will fail.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
