package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Env  string `validate:"required,oneof=development production"`
	Port string `validate:"required,numeric"`
}

type Config struct {
	Server ServerConfig
	IsDev  bool
}

const (
	defaultEnv  = "production"
	defaultPort = "5000"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Env:  getEnv("ENV", defaultEnv),
			Port: getEnv("PORT", defaultPort),
		},
	}
	cfg.IsDev = cfg.Server.Env == "development"

	if err := validator.New().Struct(cfg.Server); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	return cfg, nil
}
