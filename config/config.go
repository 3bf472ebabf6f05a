package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	// Direct Postgres mirror
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Supabase REST mirror (takes precedence over direct Postgres)
	SupabaseURL     string
	SupabaseAnonKey string

	EmailSender string
	Password    string // SMTP Password

	ReconcileCron string // cron spec for the enrollment counter check
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port: getEnv("PORT", "3000"),

		DBHost:     getEnv("DB_HOST", ""),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "edumaster"),
		DBPort:     getEnv("DB_PORT", "5432"),

		SupabaseURL:     getEnv("SUPABASE_URL", ""),
		SupabaseAnonKey: getEnv("SUPABASE_ANON_KEY", ""),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("PASSWORD", ""),

		ReconcileCron: getEnv("RECONCILE_CRON", "0 * * * *"),
	}

	if AppConfig.SupabaseURL == "" && AppConfig.DBHost == "" {
		log.Println("Warning: No remote store configured. Running with local data only.")
	}
	if AppConfig.EmailSender == "" {
		log.Println("Warning: EMAIL_SENDER not set. Confirmation emails are disabled.")
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
