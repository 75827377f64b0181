// Package logger builds *slog.Logger values from functional options and
// provides helpers for commonly used attributes.
//
// New picks slog.NewJSONHandler or slog.NewTextHandler according to the
// configured Format and attaches any static attributes. WithEnvironment
// selects text/debug for development and JSON/info for staging and
// production.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "brackets"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Debug("checked", logger.Input(s), logger.Valid(ok))
//
// ParseLevel and ParseFormat convert configuration strings and return
// ErrInvalidLevel or ErrInvalidFormat for unknown names. WithFormat panics on
// an unknown Format so a bad value stops the program at startup.
//
// Error returns an empty attribute for a nil error, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
