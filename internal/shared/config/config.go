package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	Port          string
	Env           string
	PublicBaseURL string

	// LLM
	LLMProvider string
	LLMModel    string
	DeepSeekKey string
	OpenAIKey   string

	// Email notifications
	EmailProvider string
	BrevoAPIKey   string
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          os.Getenv("PORT"),
		Env:           os.Getenv("ENV"),
		PublicBaseURL: os.Getenv("PUBLIC_BASE_URL"),
		LLMProvider:   os.Getenv("LLM_PROVIDER"),
		LLMModel:      os.Getenv("LLM_MODEL"),
		DeepSeekKey:   os.Getenv("DEEPSEEK_API_KEY"),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		EmailProvider: os.Getenv("EMAIL_PROVIDER"),
		BrevoAPIKey:   os.Getenv("BREVO_API_KEY"),
		ResendAPIKey:  os.Getenv("RESEND_API_KEY"),
		EmailFrom:     os.Getenv("EMAIL_FROM"),
		EmailFromName: os.Getenv("EMAIL_FROM_NAME"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.PublicBaseURL == "" {
		cfg.PublicBaseURL = "http://localhost:" + cfg.Port
	}
	if cfg.LLMProvider == "" {
		cfg.LLMProvider = "deepseek"
	}
	if cfg.EmailFromName == "" {
		cfg.EmailFromName = "AdylAI"
	}

	return cfg
}
