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

// Input records the checked input under the key "input".
func Input(s string) slog.Attr {
	return slog.String("input", s)
}

// Valid records a check result under the key "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Pending records the openers left on a validator stack under the key "pending".
func Pending(stack string) slog.Attr {
	return slog.String("pending", stack)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
