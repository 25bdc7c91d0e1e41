package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/verifyinput/pkg/config"
)

type formConfig struct {
	FormFile  string `env:"LOADER_FORM_FILE" envDefault:"form.yaml"`
	MaxFields int    `env:"LOADER_MAX_FIELDS" envDefault:"32"`
	Report    bool   `env:"LOADER_REPORT" envDefault:"true"`
}

type cachedConfig struct {
	FormFile string `env:"LOADER_CACHED_FORM" envDefault:"form.yaml"`
}

type otherConfig struct {
	FormFile string `env:"LOADER_OTHER_FORM" envDefault:"other.yaml"`
}

type requiredConfig struct {
	FormFile string `env:"LOADER_REQUIRED_FORM,required"`
}

func TestLoad(t *testing.T) {
	t.Run("reads environment", func(t *testing.T) {
		config.ResetCache()
		t.Setenv("LOADER_FORM_FILE", "signup.yaml")
		t.Setenv("LOADER_MAX_FIELDS", "4")
		t.Setenv("LOADER_REPORT", "false")

		var cfg formConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, formConfig{FormFile: "signup.yaml", MaxFields: 4, Report: false}, cfg)
	})

	t.Run("applies defaults", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("LOADER_FORM_FILE")
		os.Unsetenv("LOADER_MAX_FIELDS")
		os.Unsetenv("LOADER_REPORT")

		var cfg formConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, formConfig{FormFile: "form.yaml", MaxFields: 32, Report: true}, cfg)
	})

	t.Run("missing required value", func(t *testing.T) {
		config.ResetCache()
		os.Unsetenv("LOADER_REQUIRED_FORM")

		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var cfg *formConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestLoad_CachesPerType(t *testing.T) {
	config.ResetCache()
	t.Setenv("LOADER_CACHED_FORM", "first.yaml")
	t.Setenv("LOADER_OTHER_FORM", "second.yaml")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("LOADER_CACHED_FORM", "changed.yaml")

	var again cachedConfig
	require.NoError(t, config.Load(&again))
	assert.Equal(t, "first.yaml", again.FormFile)

	var other otherConfig
	require.NoError(t, config.Load(&other))
	assert.Equal(t, "second.yaml", other.FormFile)

	var reloaded cachedConfig
	require.NoError(t, config.ForceReloadConfig(&reloaded))
	assert.Equal(t, "changed.yaml", reloaded.FormFile)
}

func TestLoad_RetryAfterFailure(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("LOADER_REQUIRED_FORM")

	var cfg requiredConfig
	require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)

	t.Setenv("LOADER_REQUIRED_FORM", "present.yaml")
	require.NoError(t, config.Load(&cfg), "a failed parse must not be cached")
	assert.Equal(t, "present.yaml", cfg.FormFile)
}
