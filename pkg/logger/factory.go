package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/verifyinput/pkg/environment"
)

// ErrInvalidLevel is returned by ParseLevel for unknown level names.
var ErrInvalidLevel = errors.New("invalid log level")

type format string

const (
	formatJSON format = "json"
	formatText format = "text"
)

// Option configures logger creation.
type Option func(*config)

// WithLevel sets the minimum level. Apply it after a preset to override the preset's level.
func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// ParseLevel maps debug, info, warn (or warning) and error to slog levels,
// case-insensitively. An empty name is info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
	}
}

// WithOutput sets custom output destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithContextValue logs the context value stored under key as attribute name
// on every record written with a context, e.g. through DebugContext.
func WithContextValue(name string, key any) Option {
	return func(c *config) {
		if name == "" || key == nil {
			return
		}
		c.extractors = append(c.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

// WithEnvironment applies the preset for env and tags records with service
// and env. Development writes text at debug level; staging and production
// write JSON at info level. Unknown names fall back to development, and an
// empty service leaves the defaults untouched.
func WithEnvironment(env string, service string) Option {
	parsed, err := environment.Parse(env)
	if err != nil {
		parsed = environment.Development
	}
	if parsed.IsDevelopment() {
		return withPreset(parsed, service, slog.LevelDebug, formatText)
	}
	return withPreset(parsed, service, slog.LevelInfo, formatJSON)
}

func withPreset(env environment.Environment, service string, level slog.Level, f format) Option {
	return func(c *config) {
		if service == "" {
			return
		}
		c.level = level
		c.format = f
		c.attrs = append(c.attrs,
			slog.String("service", service),
			slog.String("env", string(env)),
		)
	}
}

type config struct {
	level      slog.Level
	format     format
	output     io.Writer
	attrs      []slog.Attr
	extractors []contextExtractor
}

// defaultConfig writes JSON at info level to stdout.
func defaultConfig() *config {
	return &config{
		level:  slog.LevelInfo,
		format: formatJSON,
		output: os.Stdout,
	}
}

// New creates a configured slog.Logger whose handler injects attributes
// from the registered context extractors.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	if cfg.format == formatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(newContextHandler(handler, cfg.extractors))
}
