// ABOUTME: Discover handler for finding RSS feed URLs from regular website URLs
// ABOUTME: Scans page heads for syndication alternate links concurrently

package handlers

import (
	"context"
	"net/http"
	"sync"

	"extractor-app-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// DiscoverHandler handles RSS feed discovery.
type DiscoverHandler struct {
	feeds interfaces.FeedService
}

// NewDiscoverHandler creates a new discover handler.
func NewDiscoverHandler(feeds interfaces.FeedService) *DiscoverHandler {
	return &DiscoverHandler{feeds: feeds}
}

// RegisterRoutes registers discover routes.
func (h *DiscoverHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "discoverFeeds",
		Method:      http.MethodPost,
		Path:        "/discover",
		Summary:     "Discover RSS feeds from websites",
		Description: "Attempts to discover RSS/Atom feed URLs advertised by the provided pages",
		Tags:        []string{"Feeds"},
	}, h.DiscoverFeeds)
}

// DiscoverFeedsInput defines the input for feed discovery.
type DiscoverFeedsInput struct {
	Body struct {
		URLs []string `json:"urls" minItems:"1" maxItems:"25" doc:"Website URLs to discover feeds from"`
	}
}

// FeedDiscoveryResult represents a single discovery result.
type FeedDiscoveryResult struct {
	URL      string `json:"url" doc:"Original URL that was checked"`
	Status   string `json:"status" doc:"Discovery status: 'ok' or 'not_found'"`
	FeedLink string `json:"feedLink,omitempty" doc:"Discovered feed URL"`
}

// DiscoverFeedsOutput defines the output for feed discovery.
type DiscoverFeedsOutput struct {
	Body struct {
		Feeds []FeedDiscoveryResult `json:"feeds" doc:"Discovery results for each URL"`
	}
}

// DiscoverFeeds handles the POST /discover endpoint.
func (h *DiscoverHandler) DiscoverFeeds(ctx context.Context, input *DiscoverFeedsInput) (*DiscoverFeedsOutput, error) {
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}

	results := make([]FeedDiscoveryResult, len(input.Body.URLs))
	var wg sync.WaitGroup

	for i, siteURL := range input.Body.URLs {
		wg.Add(1)
		go func(idx int, target string) {
			defer wg.Done()

			feedURL, found := h.feeds.DiscoverFeedURL(ctx, target)
			if found {
				results[idx] = FeedDiscoveryResult{URL: target, Status: "ok", FeedLink: feedURL}
			} else {
				results[idx] = FeedDiscoveryResult{URL: target, Status: "not_found"}
			}
		}(i, siteURL)
	}

	wg.Wait()

	output := &DiscoverFeedsOutput{}
	output.Body.Feeds = results
	return output, nil
}
