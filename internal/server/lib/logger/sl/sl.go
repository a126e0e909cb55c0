// Package sl contains small slog helpers shared by the server packages.
package sl

import "log/slog"

// Err wraps an error into a uniform slog attribute.
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}
