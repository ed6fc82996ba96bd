// ABOUTME: Feed handler for the Huma API
// ABOUTME: Parses RSS/Atom feeds into capped item lists

package handlers

import (
	"context"
	"net/http"
	"net/url"

	"extractor-app-api/core/domain"
	coreerrors "extractor-app-api/core/errors"
	"extractor-app-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

const (
	defaultFeedItems = 20
	maxFeedItems     = 100
)

// FeedHandler handles feed parsing requests.
type FeedHandler struct {
	feeds interfaces.FeedService
}

// NewFeedHandler creates a new feed handler.
func NewFeedHandler(feeds interfaces.FeedService) *FeedHandler {
	return &FeedHandler{feeds: feeds}
}

// RegisterRoutes registers feed routes.
func (h *FeedHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "parseFeed",
		Method:      http.MethodPost,
		Path:        "/parsefeed",
		Summary:     "Parse an RSS/Atom feed",
		Description: "Resolves and parses a feed URL into items; HTML pages advertising a feed alternate link are followed",
		Tags:        []string{"Feeds"},
	}, h.ParseFeed)
}

// ParseFeedInput defines the input for the ParseFeed operation.
type ParseFeedInput struct {
	Body struct {
		URL string `json:"url" required:"true" format:"uri" doc:"Feed URL to parse"`

		MaxItems int `json:"max_items,omitempty" minimum:"1" maximum:"100" default:"20" doc:"Maximum number of items to return"`
	}
}

// ParseFeedOutput defines the output for the ParseFeed operation.
type ParseFeedOutput struct {
	Body struct {
		Items      []domain.FeedItem `json:"items" doc:"Feed items in document order"`
		TotalCount int               `json:"total_count" doc:"Number of items returned"`
	}
}

// ParseFeed handles the POST /parsefeed endpoint. An unreachable or
// unparseable feed yields an empty item list, not an error.
func (h *FeedHandler) ParseFeed(ctx context.Context, input *ParseFeedInput) (*ParseFeedOutput, error) {
	if input.Body.URL == "" {
		return nil, huma.Error400BadRequest("No feed URL provided")
	}

	if parsed, err := url.Parse(input.Body.URL); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, toHumaError(&coreerrors.ValidationError{Field: "url", Message: "must be an absolute URL"})
	}

	maxItems := input.Body.MaxItems
	if maxItems <= 0 {
		maxItems = defaultFeedItems
	}
	if maxItems > maxFeedItems {
		maxItems = maxFeedItems
	}

	items := h.feeds.ParseFeed(ctx, input.Body.URL, maxItems)
	if items == nil {
		items = []domain.FeedItem{}
	}

	output := &ParseFeedOutput{}
	output.Body.Items = items
	output.Body.TotalCount = len(items)
	return output, nil
}
