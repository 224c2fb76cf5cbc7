package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string

	// DatabaseURL selects the data backend: when set, readings and model
	// state live in Postgres; when empty, the service runs on DataFile
	// and ModelPath.
	DatabaseURL string
	Seed        bool

	// File-mode data source and model persistence
	DataFile  string
	ModelPath string

	// OpenAI configuration
	OpenAIAPIKey        string
	OpenAIInsightsModel string

	// OpenTelemetry configuration
	OTLPEndpoint string
	Environment  string
}

func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		DatabaseURL: getEnv("DATABASE_URL", ""),
		Seed:        getEnv("SEED", "false") == "true",

		DataFile:  getEnv("DATA_FILE", "glucose_data.csv"),
		ModelPath: getEnv("MODEL_PATH", "glucose_model.json"),

		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIInsightsModel: getEnv("OPENAI_INSIGHTS_MODEL", "gpt-4o-mini"),

		OTLPEndpoint: getEnv("OTLP_ENDPOINT", ""),
		Environment:  getEnv("ENVIRONMENT", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
