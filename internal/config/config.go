package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// AI categorization / chat
	AIProvider    string // "groq" or "gemini"
	GroqAPIKey    string
	GroqBaseURL   string
	GroqModel     string
	GeminiAPIKey  string
	GeminiModel   string
	ChatModel     string
	RemoteTimeout time.Duration
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		// AI
		AIProvider:   getEnv("AI_PROVIDER", "groq"),
		GroqAPIKey:   getEnv("GROQ_API_KEY", ""),
		GroqBaseURL:  getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqModel:    getEnv("GROQ_MODEL", "llama-3.3-70b-versatile"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash-lite"),
		ChatModel:    getEnv("CHAT_MODEL", "llama-3.3-70b-versatile"),
	}

	// Parse JWT expiration duration
	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	// Parse remote categorizer timeout. A hung remote call must never block
	// a classification request indefinitely.
	timeoutStr := getEnv("AI_TIMEOUT", "15s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		log.Printf("Warning: invalid AI_TIMEOUT value '%s', falling back to 15s\n", timeoutStr)
		timeout = 15 * time.Second
	}
	config.RemoteTimeout = timeout

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
