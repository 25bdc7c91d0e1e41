package cli

import "github.com/dmitrymomot/verifyinput/pkg/environment"

// Config is the process configuration read from the environment.
type Config struct {
	Env      environment.Environment `env:"APP_ENV" envDefault:"development"`
	LogLevel string                  `env:"LOG_LEVEL" envDefault:"info"`
	FormFile string                  `env:"VERIFYFORM_FILE" envDefault:"form.yaml"`
}
