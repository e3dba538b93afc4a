package mail_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"boulevard/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	port := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			port = parsed
		}
	}

	cfg := services.SMTPConfig{
		Host:       getEnvWithDefault("SMTP_HOST", "smtp.gmail.com"),
		Port:       port,
		Username:   os.Getenv("SMTP_USER"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       getEnvWithDefault("SMTP_FROM", os.Getenv("SMTP_USER")),
		FromName:   "Boulevard",
		UseSSL:     port == 465,
		RequireTLS: true,

		AppName:    "Boulevard",
		AppBaseURL: getEnvWithDefault("APP_BASE_URL", "https://boulevard.sistemasudh.com"),
	}

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
	}
	return mailService
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
