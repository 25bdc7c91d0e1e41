package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is matched by every ValidationErrors value via errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidDigit is returned by IDCardCheckDigit when one of the first 17
	// positions holds something other than a decimal digit.
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrInvalidLength is returned by IDCardCheckDigit for values shorter than
	// 17 bytes. It is only seen by direct callers: IsIDCardCN and
	// ValidIDCardCN reject other lengths before computing a checksum.
	ErrInvalidLength = errors.New("invalid length")
)
