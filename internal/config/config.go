// Package config loads application configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/onetechcm/website/internal/contact"
	"github.com/onetechcm/website/pkg/httpserver"
	"github.com/onetechcm/website/pkg/logger"
	"github.com/onetechcm/website/pkg/mailer/resend"
)

// ErrParsingConfig indicates environment variables could not be parsed
// into the config struct.
var ErrParsingConfig = errors.New("failed to parse configuration")

// Environment is the execution mode of the application. Development mode
// permits verbose error detail in logs and responses; it must be off in
// production.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// Config is the root application configuration.
type Config struct {
	AppEnv  Environment `env:"APP_ENV" envDefault:"production"`
	Server  httpserver.Config
	Logger  logger.Config
	Resend  resend.Config
	Contact contact.Config
}

// IsDevelopment reports whether the app runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.AppEnv == Development || c.AppEnv == "dev"
}

// Load reads configuration from the process environment. A .env file is
// loaded first if present; missing files are not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
