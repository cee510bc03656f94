package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port            string
	DBConn          string
	LogLevel        string
	JWTSecret       string
	RatesURL        string
	LenderMarginPct float64
	SMTPHost        string
	SMTPPort        string
	SMTPUsername    string
	SMTPPassword    string
	SenderEmail     string
	// BalloonNoticeDays is how far ahead of a balloon due date the
	// reminder job starts emailing owners.
	BalloonNoticeDays int
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DBConn:       getEnv("DB_CONN", "host=localhost port=5432 user=test password=test dbname=underwriting sslmode=disable"),
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:    getEnv("JWT_SECRET", "secret"),
		RatesURL:     getEnv("RATES_URL", "https://rates.dealgrind.io/feed/mortgage.xml"),
		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SenderEmail:  getEnv("SENDER_EMAIL", "noreply@dealgrind.io"),
	}

	margin, err := strconv.ParseFloat(getEnv("LENDER_MARGIN_PCT", "0.5"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid LENDER_MARGIN_PCT: %w", err)
	}
	cfg.LenderMarginPct = margin

	notice, err := strconv.Atoi(getEnv("BALLOON_NOTICE_DAYS", "90"))
	if err != nil {
		return nil, fmt.Errorf("invalid BALLOON_NOTICE_DAYS: %w", err)
	}
	cfg.BalloonNoticeDays = notice

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.RatesURL == "" {
		return nil, fmt.Errorf("RATES_URL is required")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
