package verify

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/verifyinput/pkg/logger"
	"github.com/dmitrymomot/verifyinput/pkg/sanitizer"
	"github.com/dmitrymomot/verifyinput/pkg/validator"
)

// Engine verifies bindings in order and reports the first failure.
// An Engine is immutable after New and safe for concurrent use, provided the
// configured sink is.
type Engine struct {
	sink      FeedbackSink
	log       *slog.Logger
	normalize func(string) string
}

// Option configures an Engine.
type Option func(*Engine)

// WithFeedback sets the sink that receives failure messages. Nil is ignored.
func WithFeedback(sink FeedbackSink) Option {
	return func(e *Engine) {
		if sink != nil {
			e.sink = sink
		}
	}
}

// WithLogger sets the logger used for failure diagnostics. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithNormalizer replaces the value normalization applied before any check.
// The default trims surrounding whitespace.
func WithNormalizer(transforms ...func(string) string) Option {
	return func(e *Engine) {
		if len(transforms) > 0 {
			e.normalize = sanitizer.Compose(transforms...)
		}
	}
}

// New creates an Engine. Without options failures are verified silently:
// the sink discards messages and the logger discards records.
func New(opts ...Option) *Engine {
	e := &Engine{
		sink:      NopSink{},
		log:       slog.New(slog.DiscardHandler),
		normalize: sanitizer.Trim,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ValidateAll verifies bindings in ascending rule order, keeping registration
// order among equal keys, and stops at the first failing binding. Accessors of
// bindings after the failure are never called. The sink is notified at most
// once, and only when the failing rule reports failures.
//
// A call without bindings fails with ErrNoFields.
//
// ValidateAll panics with an error wrapping ErrMisconfiguredField when it
// reaches a binding without an accessor or with an undeclared kind.
func (e *Engine) ValidateAll(bindings ...Binding) Result {
	return e.ValidateAllContext(context.Background(), bindings...)
}

// ValidateAllContext is ValidateAll with ctx passed to the engine's log
// records, so a logger can pick request or run scoped values from it.
func (e *Engine) ValidateAllContext(ctx context.Context, bindings ...Binding) Result {
	if len(bindings) == 0 {
		e.log.DebugContext(ctx, "verification failed", logger.Error(ErrNoFields))
		return Result{Message: ErrNoFields.Error(), err: ErrNoFields}
	}

	ordered := slices.Clone(bindings)
	slices.SortStableFunc(ordered, func(a, b Binding) int {
		return cmp.Compare(a.Rule.Order(), b.Rule.Order())
	})

	for _, b := range ordered {
		if verr, failed := e.check(b); failed {
			return e.fail(ctx, b, verr)
		}
	}

	e.log.DebugContext(ctx, "verification passed", slog.Int("fields", len(ordered)))
	return Result{}
}

func (e *Engine) check(b Binding) (validator.ValidationError, bool) {
	if b.Value == nil {
		panic(fmt.Errorf("%w: field %q has no value accessor", ErrMisconfiguredField, b.Field))
	}
	if !b.Rule.Kind().Valid() {
		panic(fmt.Errorf("%w: field %q has %s", ErrMisconfiguredField, b.Field, b.Rule.Kind()))
	}

	raw, ok := b.Value()
	if !ok {
		return validator.Required(b.Field, "").Error, true
	}

	value := e.normalize(raw)
	verrs := validator.ExtractValidationErrors(validator.First(rulesFor(b.Field, value, b.Rule)...))
	if len(verrs) == 0 {
		return validator.ValidationError{}, false
	}
	return verrs[0], true
}

func (e *Engine) fail(ctx context.Context, b Binding, verr validator.ValidationError) Result {
	verr.Message = b.Rule.resolveMessage(verr.Message)
	reported := b.Rule.ReportFailure()
	if reported {
		e.sink.Notify(verr.Message)
	}

	e.log.DebugContext(ctx, "verification failed",
		logger.Field(b.Field),
		logger.Kind(b.Rule.Kind().String()),
		logger.Order(b.Rule.Order()),
		slog.String("message", verr.Message),
		slog.Bool("reported", reported),
	)

	return Result{
		Field:    b.Field,
		Kind:     b.Rule.Kind(),
		Message:  verr.Message,
		Reported: reported,
		err:      validator.ValidationErrors{verr},
	}
}

// rulesFor returns the rule chain for a normalized value. Emptiness always
// comes first; length bounds apply to KindEmpty only.
func rulesFor(field, value string, spec RuleSpec) []validator.Rule {
	rules := []validator.Rule{validator.Required(field, value)}

	switch spec.Kind() {
	case KindEmpty:
		if spec.MaxLength() > 0 {
			rules = append(rules, validator.MaxLen(field, value, spec.MaxLength()))
		}
		if spec.MinLength() > 0 {
			rules = append(rules, validator.MinLen(field, value, spec.MinLength()))
		}
	case KindEmail:
		rules = append(rules, validator.ValidEmail(field, value))
	case KindPhoneCN:
		rules = append(rules, validator.ValidPhoneCN(field, value))
	case KindIDCN:
		rules = append(rules, validator.ValidIDCardCN(field, value))
	case KindCNText:
		rules = append(rules, validator.ChineseText(field, value))
	case KindENText:
		rules = append(rules, validator.EnglishText(field, value))
	case KindNumber:
		rules = append(rules, validator.NumericString(field, value))
	}

	return rules
}
