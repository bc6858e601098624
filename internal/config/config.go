package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	TokenSecret string

	AWSRoleARN string
	AWSRegion  string

	CORSOrigin string
}

// Load reads configuration from the environment, after loading a .env
// file if one is present. Missing required values abort startup.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppPort: os.Getenv("APP_PORT"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),

		TokenSecret: os.Getenv("TOKEN_SECRET"),

		AWSRoleARN: os.Getenv("AWS_ROLE_ARN"),
		AWSRegion:  os.Getenv("AWS_REGION"),

		CORSOrigin: os.Getenv("CORS_ORIGIN"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.AWSRegion == "" {
		cfg.AWSRegion = "us-east-1"
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "http://localhost:5500"
	}

	required := []struct {
		name  string
		value string
	}{
		{"GOOGLE_CLIENT_ID", cfg.GoogleClientID},
		{"GOOGLE_CLIENT_SECRET", cfg.GoogleClientSecret},
		{"GOOGLE_REDIRECT_URL", cfg.GoogleRedirectURL},
		{"TOKEN_SECRET", cfg.TokenSecret},
		{"AWS_ROLE_ARN", cfg.AWSRoleARN},
	}
	for _, r := range required {
		if r.value == "" {
			return Config{}, fmt.Errorf("config: missing required environment variable %s", r.name)
		}
	}

	return cfg, nil
}
