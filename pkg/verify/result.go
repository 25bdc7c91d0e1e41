package verify

import "fmt"

// Result is the outcome of a verification pass.
// The zero Result is a pass.
type Result struct {
	// Field identifies the failing binding. Empty on pass.
	Field string
	// Kind is the rule kind of the failing binding.
	Kind Kind
	// Message is the resolved failure message, custom or default.
	Message string
	// Reported tells whether the message was handed to the feedback sink.
	Reported bool

	err error
}

// Passed reports whether every binding was verified successfully.
func (r Result) Passed() bool {
	return r.err == nil
}

// Err returns nil on pass, ErrNoFields for a pass without bindings, and a
// validator.ValidationErrors holding the single failure otherwise.
func (r Result) Err() error {
	return r.err
}

func (r Result) String() string {
	switch {
	case r.Passed():
		return "pass"
	case r.Field == "":
		return fmt.Sprintf("fail: %s", r.Message)
	default:
		return fmt.Sprintf("fail: %s: %s", r.Field, r.Message)
	}
}
