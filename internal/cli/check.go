package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/verifyinput/pkg/config"
	"github.com/dmitrymomot/verifyinput/pkg/formspec"
	"github.com/dmitrymomot/verifyinput/pkg/logger"
	"github.com/dmitrymomot/verifyinput/pkg/sanitizer"
	"github.com/dmitrymomot/verifyinput/pkg/verify"
)

// ErrRejected is returned by check when a field fails its rule.
var ErrRejected = errors.New("form rejected")

type runIDKey struct{}

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify environment values against a form definition",
		Args:  cobra.NoArgs,
		RunE:  runCheck,
	}

	cmd.Flags().String("form", "", "Path to the form definition (overrides VERIFYFORM_FILE)")
	cmd.Flags().StringSlice("env-file", nil, "Load values from .env files before verifying; later files win")
	cmd.Flags().Bool("strip-spaces", false, "Remove all whitespace from values, not only surrounding whitespace")
	cmd.Flags().Bool("narrow", false, "Fold full-width characters to ASCII before verifying")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	formPath, _ := cmd.Flags().GetString("form")
	envFiles, _ := cmd.Flags().GetStringSlice("env-file")
	stripSpaces, _ := cmd.Flags().GetBool("strip-spaces")
	narrow, _ := cmd.Flags().GetBool("narrow")

	load := config.Load[Config]
	if len(envFiles) > 0 {
		if err := config.LoadEnv(envFiles...); err != nil {
			return fmt.Errorf("load env files: %w", err)
		}
		// The files may set APP_ENV or LOG_LEVEL.
		load = config.ForceReloadConfig[Config]
	}

	var cfg Config
	if err := load(&cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if formPath == "" {
		formPath = cfg.FormFile
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(
		logger.WithEnvironment(string(cfg.Env), "verifyform"),
		logger.WithLevel(level),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextValue("run_id", runIDKey{}),
	)
	ctx := context.WithValue(cmd.Context(), runIDKey{}, uuid.NewString())

	form, err := formspec.Load(formPath)
	if err != nil {
		return fmt.Errorf("load form: %w", err)
	}

	normalizers := []func(string) string{sanitizer.Trim}
	if narrow {
		normalizers = append(normalizers, sanitizer.Narrow, sanitizer.Trim)
	}
	if stripSpaces {
		normalizers = append(normalizers, sanitizer.RemoveSpaces)
	}

	engine := verify.New(
		verify.WithFeedback(verify.WriterSink(cmd.ErrOrStderr())),
		verify.WithLogger(log.With(logger.Component("engine"))),
		verify.WithNormalizer(normalizers...),
	)

	log.DebugContext(ctx, "verifying form", slog.String("form", form.Name), slog.String("path", formPath), slog.Int("fields", len(form.Fields)))

	res := engine.ValidateAllContext(ctx, form.Bindings(formspec.EnvSource{})...)
	if !res.Passed() {
		log.InfoContext(ctx, "form rejected", logger.Field(res.Field), logger.Kind(res.Kind.String()), logger.Error(res.Err()))
		return ErrRejected
	}

	log.InfoContext(ctx, "form accepted", slog.String("form", form.Name))
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}
