// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` to read optional `.env` files and
// `github.com/caarlos0/env/v11` to parse the environment into a struct using
// `env` and `envDefault` field tags.
//
//	type AppConfig struct {
//	    Env       string `env:"APP_ENV" envDefault:"development"`
//	    LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//	    LogFormat string `env:"LOG_FORMAT"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Load reads ./.env once per process; extra files can be loaded explicitly
// with LoadEnv. Values already present in the environment always win over
// values from files.
//
// # Error Handling
//
// Parsing failures are joined with ErrParsingConfig, and file failures with
// ErrLoadingEnvFile, so callers can match them with errors.Is.
package config
