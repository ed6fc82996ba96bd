// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines the two operations the extraction core exposes to its environment

package interfaces

import (
	"context"

	"extractor-app-api/core/domain"
)

// ExtractionService extracts clean article content from web pages
type ExtractionService interface {
	// ExtractContent runs the full fallback chain for a single URL and always
	// returns a well-formed result; it never returns an error to the caller.
	ExtractContent(ctx context.Context, url string, useHeadless bool) domain.ExtractionResult

	// ExtractContentBatch extracts multiple URLs concurrently, preserving
	// input order in the returned slice.
	ExtractContentBatch(ctx context.Context, urls []string, useHeadless bool) []domain.ExtractionResult
}

// FeedService parses RSS/Atom feeds into items
type FeedService interface {
	// ParseFeed resolves and parses a feed URL, returning at most maxItems
	// items in document order. Failures degrade to an empty slice.
	ParseFeed(ctx context.Context, feedURL string, maxItems int) []domain.FeedItem

	// DiscoverFeedURL finds a syndication feed link for a website URL.
	DiscoverFeedURL(ctx context.Context, siteURL string) (string, bool)
}
