// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Bundles the external capabilities the extraction pipeline consumes

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache provides response caching (may be nil; services must tolerate that)
	Cache Cache

	// HTTPClient provides HTTP fetch functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
