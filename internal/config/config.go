// Package config reads the configuration of the backend from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/cashfy/backend/internal/rates"
	"github.com/cashfy/backend/internal/shopping"
)

var (
	ErrAPIURLMissing    = errors.New("environment variable API_URL must be set")
	ErrJWTSecretMissing = errors.New("environment variable JWT_SECRET must be set outside of debug mode")
)

type Config struct {
	APIURL *url.URL
	Port   string

	// DBPath is the SQLite database file. It is only used when no
	// PostgreSQL host is configured.
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string
	JWTTTL    time.Duration

	GeminiAPIKey string
	GeminiModel  string

	FrankfurterURL string
	CBRURL         string
	CoinGeckoURL   string
	RateRefresh    string
	RateTTL        time.Duration
	RatePairs      []rates.Pair

	SMTP shopping.Mailer

	AMQPURL      string
	AMQPExchange string
}

// Load reads the configuration. debug relaxes the checks for secrets.
func Load(debug bool) (*Config, error) {
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		return nil, ErrAPIURLMissing
	}

	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	cfg := &Config{
		APIURL:         u,
		Port:           getEnv("PORT", "8080"),
		DBPath:         getEnv("DB_PATH", "data/cashfy.db"),
		DBHost:         getEnv("DB_HOST", ""),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "cashfy"),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "cashfy"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		FrankfurterURL: getEnv("FRANKFURTER_URL", "https://api.frankfurter.app"),
		CBRURL:         getEnv("CBR_URL", "https://www.cbr.ru/scripts/XML_daily.asp"),
		CoinGeckoURL:   getEnv("COINGECKO_URL", "https://api.coingecko.com/api/v3"),
		RateRefresh:    getEnv("RATE_REFRESH", "@every 1m"),
		SMTP: shopping.Mailer{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			Sender:   getEnv("SMTP_SENDER", "Cashfy <no-reply@cashfy.app>"),
		},
		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "cashfy.events"),
	}

	if cfg.JWTSecret == "" {
		if !debug {
			return nil, ErrJWTSecretMissing
		}
		cfg.JWTSecret = "cashfy-development-secret"
	}

	cfg.JWTTTL, err = time.ParseDuration(getEnv("JWT_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("environment variable JWT_TTL is not a valid duration: %w", err)
	}

	cfg.RateTTL, err = time.ParseDuration(getEnv("RATE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("environment variable RATE_TTL is not a valid duration: %w", err)
	}

	cfg.RatePairs, err = rates.ParsePairs(getEnv("RATE_PAIRS", "USD:BRL EUR:BRL"))
	if err != nil {
		return nil, fmt.Errorf("environment variable RATE_PAIRS: %w", err)
	}

	return cfg, nil
}

// PostgresDSN returns the connection string for PostgreSQL. It is empty
// if no database host is configured.
func (c *Config) PostgresDSN() string {
	if c.DBHost == "" {
		return ""
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
