package validator

// ValidEmail validates an email address. Surrounding whitespace is tolerated,
// the top-level domain label must consist of letters only.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return patterns().email.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid email format",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidPhoneCN validates an 11-digit mainland China mobile number starting with 12-19.
func ValidPhoneCN(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return patterns().phoneCN.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid phone number format",
			TranslationKey: "validation.phone_cn",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ChineseText validates that a string consists only of CJK unified ideographs (U+4E00..U+9FA5).
func ChineseText(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return patterns().chinese.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid Chinese-text format",
			TranslationKey: "validation.cn_text",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// EnglishText validates that a string consists only of ASCII letters.
func EnglishText(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return patterns().english.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid English-text format",
			TranslationKey: "validation.en_text",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NumericString validates that a string consists only of ASCII digits.
func NumericString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return patterns().numeric.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "invalid numeric format",
			TranslationKey: "validation.number",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
