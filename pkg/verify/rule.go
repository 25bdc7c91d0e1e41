package verify

// RuleSpec describes how a single field is verified.
// It is an immutable value: build it with NewRule and read it through its methods.
type RuleSpec struct {
	kind      Kind
	message   string
	maxLength int
	minLength int
	order     int
	report    bool
}

// RuleOption customizes a RuleSpec during construction.
type RuleOption func(*RuleSpec)

// NewRule returns a rule of the given kind with defaults applied:
// no custom message, inactive length bounds, order 1 and failure reporting on.
func NewRule(kind Kind, opts ...RuleOption) RuleSpec {
	r := RuleSpec{
		kind:      kind,
		maxLength: -1,
		minLength: -1,
		order:     1,
		report:    true,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// WithMessage overrides the validator's default failure message.
// An empty message keeps the default.
func WithMessage(msg string) RuleOption {
	return func(r *RuleSpec) { r.message = msg }
}

// WithMaxLength sets the upper bound on value length. Values ≤ 0 disable the bound.
func WithMaxLength(n int) RuleOption {
	return func(r *RuleSpec) { r.maxLength = n }
}

// WithMinLength sets the lower bound on value length. Values ≤ 0 disable the bound.
func WithMinLength(n int) RuleOption {
	return func(r *RuleSpec) { r.minLength = n }
}

// WithOrder sets the evaluation order key. Lower keys are checked first.
func WithOrder(n int) RuleOption {
	return func(r *RuleSpec) { r.order = n }
}

// Silent suppresses the feedback notification for this field.
// A failing silent field still stops the pass and fails the result.
func Silent() RuleOption {
	return func(r *RuleSpec) { r.report = false }
}

func (r RuleSpec) Kind() Kind           { return r.kind }
func (r RuleSpec) ErrorMessage() string { return r.message }
func (r RuleSpec) MaxLength() int       { return r.maxLength }
func (r RuleSpec) MinLength() int       { return r.minLength }
func (r RuleSpec) Order() int           { return r.order }
func (r RuleSpec) ReportFailure() bool  { return r.report }

// resolveMessage picks the custom message when set.
func (r RuleSpec) resolveMessage(fallback string) string {
	if r.message != "" {
		return r.message
	}
	return fallback
}
