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

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Fields records the names of rejected request parameters under "fields".
func Fields(names []string) slog.Attr {
	return slog.Any("fields", names)
}

// Symbol records a ticker under the key "symbol".
func Symbol(s string) slog.Attr {
	return slog.String("symbol", s)
}
