// ABOUTME: Domain model for syndication feed items
// ABOUTME: Defines the item value produced by the feed parser

package domain

import "time"

// FeedItem represents a single entry parsed from an RSS/Atom feed.
// Items keep the document order of the source feed; they are never re-sorted.
type FeedItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`

	// Content holds the richest body text the feed provides: content:encoded
	// when present, otherwise the item summary.
	Content string `json:"content"`

	URL string `json:"url"`

	// PublishedAt is nil when the source omits a publish date. Consumers must
	// treat absence as "unknown", not "now".
	PublishedAt *time.Time `json:"publishedAt,omitempty"`

	Author string `json:"author,omitempty"`

	// Source is the feed title or resolved publisher name.
	Source string `json:"source,omitempty"`
}
