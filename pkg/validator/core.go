package validator

import (
	"errors"
	"strings"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

// Error lists every failure as "field: message", separated by semicolons.
func (ve ValidationErrors) Error() string {
	var b strings.Builder
	b.WriteString("validation failed")
	for i, verr := range ve {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(verr.Field)
		b.WriteString(": ")
		b.WriteString(verr.Message)
	}
	return b.String()
}

// Is reports ErrValidationFailed as the common cause of every collection.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Add appends err to the collection.
func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// IsEmpty reports whether the collection holds no failures.
func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
// Check is evaluated lazily, so a rule costs nothing until it is applied.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply checks every rule and returns all failures as ValidationErrors,
// or nil when every rule passes.
func Apply(rules ...Rule) error {
	var failed ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			failed.Add(rule.Error)
		}
	}
	if failed.IsEmpty() {
		return nil
	}
	return failed
}

// First executes rules in order and stops at the first failing one.
// The returned error is a ValidationErrors holding exactly that failure;
// rules after it are never checked.
func First(rules ...Rule) error {
	for _, rule := range rules {
		if !rule.Check() {
			return ValidationErrors{rule.Error}
		}
	}
	return nil
}

// ExtractValidationErrors returns the ValidationErrors found in err's chain,
// or nil when there is none.
func ExtractValidationErrors(err error) ValidationErrors {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}
