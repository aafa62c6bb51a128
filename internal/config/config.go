// Package config loads process configuration from the environment.
//
// Values are resolved from OS environment variables, falling back to a .env
// file in the working directory when present, then to struct tag defaults.
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080" validate:"required,numeric"`
	DatabaseURL string `envconfig:"DATABASE_URL" validate:"required,url"`
	SeedPath    string `envconfig:"SEED_PATH" default:"data/seeds/paths.json"`

	ReadHeaderTimeout time.Duration `envconfig:"HTTP_READ_HEADER_TIMEOUT" default:"5s" validate:"gt=0"`
	ReadTimeout       time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"10s" validate:"gt=0"`
	WriteTimeout      time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"30s" validate:"gt=0"`
	IdleTimeout       time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"60s" validate:"gt=0"`
}

type ConfigErrorType string

const (
	ErrTypeParse      ConfigErrorType = "parse"
	ErrTypeValidation ConfigErrorType = "validation"
)

type ConfigError struct {
	Type    ConfigErrorType
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Load reads .env (if any) and the environment into a validated Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	return fromEnv()
}

func fromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, &ConfigError{Type: ErrTypeParse, Message: "process environment", Err: err}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, &ConfigError{Type: ErrTypeValidation, Message: "invalid configuration", Err: err}
	}

	return &cfg, nil
}

