package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	GristAPIURL string // base URL of the Grist document API
	GristAPIKey string
	GristTable  string
	NewsAPIURL  string
	NewsAPIKey  string
	Port        string
	ProxyPort   string
	LogLevel    string
}

// LoadConfig reads configuration from environment variables (.env file)
func LoadConfig() (*Config, error) {
	// Load .env file. In production, env variables are often set directly.
	if err := godotenv.Load(); err != nil {
		// Don't fail if .env is not present
	}

	return &Config{
		GristAPIURL: getEnv("GRIST_API_URL", ""),
		GristAPIKey: getEnv("GRIST_API_KEY", ""),
		GristTable:  getEnv("GRIST_TABLE", "Datablist"),
		NewsAPIURL:  getEnv("NEWS_API_URL", "https://newsdata.io/api/1/news"),
		NewsAPIKey:  getEnv("NEWS_API_KEY", ""),
		Port:        getEnv("PORT", "8080"),
		ProxyPort:   getEnv("PROXY_PORT", "8081"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}, nil
}

// Helper function to get env var or return default
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
