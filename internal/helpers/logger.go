package helpers

import (
	"log/slog"
	"os"
)

// SetupLogger creates a logger for an engine component.
// If the provided handler is nil, a text handler on stderr grouped under vmName is used.
//
// Parameters:
//   - handler: The slog.Handler to use, or nil for defaults
//   - vmName: The name of the engine (e.g., "starlark", "risor")
//   - groupName: Optional additional group name within the engine
//
// Returns:
//   - The configured handler
//   - A logger created from the handler
func SetupLogger(handler slog.Handler, vmName string, groupName string) (slog.Handler, *slog.Logger) {
	if handler == nil {
		// stdout belongs to lesson output, so the fallback handler writes to stderr
		handler = slog.NewTextHandler(os.Stderr, nil).WithGroup(vmName)
		slog.New(handler).Warn("Handler is nil, using the default logger configuration.")
	}

	var logger *slog.Logger
	if groupName != "" {
		logger = slog.New(handler.WithGroup(groupName))
	} else {
		logger = slog.New(handler)
	}

	return handler, logger
}
