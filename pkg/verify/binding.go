package verify

// Accessor reads the current value of a field.
// ok is false when the field holds no value at all, which always fails
// verification as an empty field.
type Accessor func() (value string, ok bool)

// Binding pairs a field identifier and its rule with a way to read its value.
type Binding struct {
	Field string
	Rule  RuleSpec
	Value Accessor
}

// Bind is shorthand for constructing a Binding.
func Bind(field string, rule RuleSpec, value Accessor) Binding {
	return Binding{Field: field, Rule: rule, Value: value}
}

// String returns an accessor that always yields s.
func String(s string) Accessor {
	return func() (string, bool) { return s, true }
}

// StringPtr returns an accessor that dereferences p at read time.
// A nil pointer reads as an absent value.
func StringPtr(p *string) Accessor {
	return func() (string, bool) {
		if p == nil {
			return "", false
		}
		return *p, true
	}
}

// Func adapts a plain getter, such as a text input's current content.
func Func(fn func() string) Accessor {
	return func() (string, bool) { return fn(), true }
}

// Absent returns an accessor for a field that holds no value.
func Absent() Accessor {
	return func() (string, bool) { return "", false }
}
