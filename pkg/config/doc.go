// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` for .env files and
// `github.com/caarlos0/env/v11` for struct parsing:
//
//   - LoadEnv reads one or more .env files (default ./.env) into the process
//     environment without overriding variables that are already set.
//   - Load parses the environment into any struct using `env` tags and caches
//     the result per type, so each configuration type is parsed once.
//   - ForceReloadConfig parses a type again after the environment changed.
//   - ResetCache drops every cached value, mostly for tests.
//
// # Usage
//
//	type Config struct {
//	    Env      environment.Environment `env:"APP_ENV" envDefault:"development"`
//	    LogLevel string                  `env:"LOG_LEVEL" envDefault:"info"`
//	    FormFile string                  `env:"VERIFYFORM_FILE" envDefault:"form.yaml"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Errors are joined with the sentinels ErrParsingConfig, ErrLoadingEnvFile,
// ErrConfigNotLoaded and ErrNilPointer and can be matched with errors.Is.
// A failed parse is not cached; the next Load for the same type retries.
package config
