// Package logger builds *slog.Logger values with functional options and
// provides attribute helpers that keep key names consistent.
//
// New picks a text or JSON handler from the environment preset and, when
// WithContextValue is used, wraps it so that records written with a context
// carry the matching context values (for example a run identifier).
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "verifyform"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.DebugContext(ctx, "verification failed", logger.Field("phone"), logger.Kind("phone_cn"))
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
