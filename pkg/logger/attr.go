package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records a verified field identifier under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Kind records a rule kind name under the key "kind".
func Kind(name string) slog.Attr {
	return slog.String("kind", name)
}

// Order records a rule's evaluation order under the key "order".
func Order(n int) slog.Attr {
	return slog.Int("order", n)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
