// Package validator provides the rule library behind field verification:
// emptiness and length checks, anchored format checks for email addresses,
// mainland China mobile numbers, Chinese, English and numeric text, and the
// mainland China resident ID number with its mod-11 check character.
//
// Every exported rule constructor returns a Rule value pairing a lazy Check
// function with translation-friendly error metadata. Rules are evaluated
// either with Apply, which collects every failure, or with First, which stops
// at the first failure and never checks the remaining rules. Both return a
// ValidationErrors slice that satisfies the error interface.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `format_rules.go`, `identifier_rules.go`). Regular expressions live in a
// single pattern set that is compiled lazily on first use and is never
// modified afterwards, so rules are safe to evaluate from any goroutine.
//
// # Usage
//
//	err := validator.First(
//	    validator.Required("name", name),
//	    validator.MaxLen("name", name, 20),
//	    validator.MinLen("name", name, 2),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    fmt.Println(verrs[0].Message)
//	}
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed with errors.Is and can be
// recovered from wrapped errors with ExtractValidationErrors.
//
// ErrInvalidLength and ErrInvalidDigit come only from IDCardCheckDigit when it
// is called directly. IsIDCardCN checks the length and the ID pattern first,
// so neither error reaches ValidIDCardCN or the verification engine; a value
// that would trigger them simply fails as "invalid ID number format".
package validator
