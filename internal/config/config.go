package config

import (
	"os"
)

type EmailConfig struct {
	ResendAPIKey string
	FromAddress  string
	FromName     string
	OwnerAddress string
}

type Config struct {
	Port        string
	DataDir     string
	UploadsDir  string
	PublicDir   string
	LogFile     string
	CORSOrigins string
	Email       EmailConfig
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", "3001"),
		DataDir:     getEnv("DATA_DIR", "data"),
		UploadsDir:  getEnv("UPLOADS_DIR", "uploads"),
		PublicDir:   getEnv("PUBLIC_DIR", "public"),
		LogFile:     getEnv("LOG_FILE", "logs/server.log"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}

	cfg.Email.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = getEnv("EMAIL_FROM_ADDRESS", "no-reply@evergreenlawns.com")
	cfg.Email.FromName = getEnv("EMAIL_FROM_NAME", "Evergreen Lawn Care")
	cfg.Email.OwnerAddress = os.Getenv("OWNER_EMAIL")

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
