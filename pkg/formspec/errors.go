package formspec

import "errors"

var (
	// ErrInvalidForm is returned for documents that do not describe a usable form.
	ErrInvalidForm = errors.New("invalid form definition")

	// ErrDuplicateField is returned when two fields share a name.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrReadForm is returned when a form file cannot be read.
	ErrReadForm = errors.New("failed to read form file")
)
