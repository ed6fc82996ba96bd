package interfaces

// Logger defines the interface for structured logging throughout the
// application. Implementations attach the fields map as structured context.
//
// Example:
//
//	logger.Warn("Falling back to basic text extraction", map[string]interface{}{
//		"url": url,
//	})
type Logger interface {
	// Debug logs detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs general informational messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs potential issues that don't prevent operation.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures that need attention.
	Error(msg string, fields map[string]interface{})
}
