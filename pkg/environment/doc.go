// Package environment names the application environments (development,
// staging, production) and parses them from configuration, accepting the
// short aliases dev, stage and prod.
//
// Environment implements encoding.TextUnmarshaler, so it can be used directly
// as a field of a configuration struct loaded by the config package:
//
//	type Config struct {
//	    Env environment.Environment `env:"APP_ENV" envDefault:"development"`
//	}
package environment
