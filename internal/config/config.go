package config

import "os"

type Config struct {
	DBDriver     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBPath       string
	JWTSecret    string
	ServerPort   string
	OpenAIAPIKey string
	OpenAIAPIURL string
	OpenAIModel  string
	SeedOnStart  bool
}

func Load() *Config {
	return &Config{
		DBDriver:     getEnv("DB_DRIVER", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBName:       getEnv("DB_NAME", "personality"),
		DBPath:       getEnv("DB_PATH", "personality.db"),
		JWTSecret:    getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIAPIURL: getEnv("OPENAI_API_URL", "https://api.openai.com/v1"),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o"),
		SeedOnStart:  getEnv("SEED_ON_START", "true") == "true",
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
