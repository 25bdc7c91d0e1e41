package validator

import (
	"fmt"
	"strings"
)

var (
	// Position weights for the first 17 digits of an 18-character resident ID.
	idCardWeights = [17]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}

	// Check character indexed by weighted sum mod 11.
	idCardCheckChars = "10X98765432"
)

// ValidIDCardCN validates a mainland China resident identity card number,
// either the 15-character legacy form or the 18-character form with its
// mod-11 check character.
func ValidIDCardCN(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsIDCardCN(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid ID number format",
			TranslationKey: "validation.id_cn",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// IsIDCardCN reports whether value is a structurally valid ID number and,
// for the 18-character form, whether its check character matches.
// Checksum computation errors count as an invalid value.
func IsIDCardCN(value string) bool {
	p := patterns()
	switch len(value) {
	case 15:
		return p.idCard15.MatchString(value)
	case 18:
		if !p.idCard18.MatchString(value) {
			return false
		}
		want, err := IDCardCheckDigit(value)
		if err != nil {
			return false
		}
		return strings.EqualFold(string(want), value[17:])
	default:
		return false
	}
}

// IDCardCheckDigit computes the expected 18th character from the first 17
// digits of value. It returns ErrInvalidLength when value is shorter than 17
// bytes and ErrInvalidDigit when one of those bytes is not a decimal digit.
func IDCardCheckDigit(value string) (byte, error) {
	if len(value) < len(idCardWeights) {
		return 0, fmt.Errorf("%w: need %d digits, got %d", ErrInvalidLength, len(idCardWeights), len(value))
	}

	sum := 0
	for i, w := range idCardWeights {
		c := value[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q at position %d", ErrInvalidDigit, c, i+1)
		}
		sum += int(c-'0') * w
	}

	return idCardCheckChars[sum%11], nil
}
