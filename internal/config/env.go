package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()
}

type Config struct {
	// Required for the Telegram transport
	TelegramBotToken string

	// Optional: without a key the rule-based extractor and canned chat
	// replies are used instead
	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAITemperature float64

	// Optional transports and storage
	WhatsAppEnabled bool
	WhatsAppDBPath  string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int

	// Optional with defaults
	TempDir           string
	SessionTTLMinutes int
	Debug             bool
}

func LoadFromEnv() *Config {
	cfg := &Config{
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),

		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:       getEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAITemperature: getEnvAsFloatOrDefault("OPENAI_TEMPERATURE", 0.1),

		WhatsAppEnabled: getEnvAsBoolOrDefault("WHATSAPP_ENABLED", false),
		WhatsAppDBPath:  getEnvOrDefault("WHATSAPP_DB_PATH", "./whatsapp.db"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getEnvAsIntOrDefault("REDIS_DB", 0),

		TempDir:           getEnvOrDefault("TEMP_DIR", ""),
		SessionTTLMinutes: getEnvAsIntOrDefault("SESSION_TTL_MINUTES", 30),
		Debug:             getEnvAsBoolOrDefault("DEBUG", false),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
