package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`

	MySQLDSN string `env:"MYSQL_DSN" envDefault:"user:password@tcp(localhost:3306)/lekhsewa?charset=utf8mb4&parseTime=True&loc=Local"`

	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`
	RedisPass string `env:"REDIS_PASSWORD"`

	JWTSecret string `env:"JWT_SECRET" envDefault:"change-me"`

	RecognizerURL     string        `env:"RECOGNIZER_URL" envDefault:"http://127.0.0.1:5000"`
	RecognizerTimeout time.Duration `env:"RECOGNIZER_TIMEOUT" envDefault:"30s"`

	EsewaMerchantCode string `env:"ESEWA_MERCHANT_CODE" envDefault:"EPAYTEST"`
	EsewaSecretKey    string `env:"ESEWA_SECRET_KEY"`
	EsewaSuccessURL   string `env:"ESEWA_SUCCESS_URL" envDefault:"http://localhost:3000/payment/success"`
	EsewaFailureURL   string `env:"ESEWA_FAILURE_URL" envDefault:"http://localhost:3000/payment/failure"`

	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
}

// Load reads an optional .env file and parses Config from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
