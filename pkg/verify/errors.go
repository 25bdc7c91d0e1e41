package verify

import "errors"

var (
	// ErrNoFields is reported by a verification pass that received no bindings.
	ErrNoFields = errors.New("no validated fields")

	// ErrMisconfiguredField is the panic cause for bindings that cannot be
	// evaluated at all, such as a missing value accessor or an undeclared kind.
	ErrMisconfiguredField = errors.New("misconfigured field")

	// ErrUnknownKind is returned by ParseKind for names that match no kind.
	ErrUnknownKind = errors.New("unknown rule kind")
)
