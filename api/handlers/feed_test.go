package handlers

import (
	"context"
	"testing"

	"extractor-app-api/core/domain"
)

func TestParseFeed_ReturnsItems(t *testing.T) {
	service := &mockFeedService{
		parseFunc: func(ctx context.Context, feedURL string, maxItems int) []domain.FeedItem {
			return []domain.FeedItem{
				{Title: "One", URL: "https://example.com/one"},
				{Title: "Two", URL: "https://example.com/two"},
			}
		},
	}
	handler := NewFeedHandler(service)

	input := &ParseFeedInput{}
	input.Body.URL = "https://example.com/feed.xml"

	output, err := handler.ParseFeed(context.Background(), input)
	if err != nil {
		t.Fatalf("ParseFeed failed: %v", err)
	}

	if output.Body.TotalCount != 2 || len(output.Body.Items) != 2 {
		t.Errorf("TotalCount = %d with %d items, want 2", output.Body.TotalCount, len(output.Body.Items))
	}
}

func TestParseFeed_EmptyFeedYieldsEmptySliceNotNil(t *testing.T) {
	service := &mockFeedService{
		parseFunc: func(ctx context.Context, feedURL string, maxItems int) []domain.FeedItem {
			return nil
		},
	}
	handler := NewFeedHandler(service)

	input := &ParseFeedInput{}
	input.Body.URL = "https://example.com/feed.xml"

	output, err := handler.ParseFeed(context.Background(), input)
	if err != nil {
		t.Fatalf("ParseFeed failed: %v", err)
	}

	if output.Body.Items == nil {
		t.Error("Items must serialize as [], not null")
	}
	if output.Body.TotalCount != 0 {
		t.Errorf("TotalCount = %d, want 0", output.Body.TotalCount)
	}
}

func TestParseFeed_ClampsMaxItems(t *testing.T) {
	var gotMaxItems int
	service := &mockFeedService{
		parseFunc: func(ctx context.Context, feedURL string, maxItems int) []domain.FeedItem {
			gotMaxItems = maxItems
			return nil
		},
	}
	handler := NewFeedHandler(service)

	input := &ParseFeedInput{}
	input.Body.URL = "https://example.com/feed.xml"
	input.Body.MaxItems = 500

	if _, err := handler.ParseFeed(context.Background(), input); err != nil {
		t.Fatalf("ParseFeed failed: %v", err)
	}
	if gotMaxItems != maxFeedItems {
		t.Errorf("maxItems = %d, want clamp to %d", gotMaxItems, maxFeedItems)
	}
}

func TestParseFeed_DefaultsMaxItems(t *testing.T) {
	var gotMaxItems int
	service := &mockFeedService{
		parseFunc: func(ctx context.Context, feedURL string, maxItems int) []domain.FeedItem {
			gotMaxItems = maxItems
			return nil
		},
	}
	handler := NewFeedHandler(service)

	input := &ParseFeedInput{}
	input.Body.URL = "https://example.com/feed.xml"

	if _, err := handler.ParseFeed(context.Background(), input); err != nil {
		t.Fatalf("ParseFeed failed: %v", err)
	}
	if gotMaxItems != defaultFeedItems {
		t.Errorf("maxItems = %d, want default %d", gotMaxItems, defaultFeedItems)
	}
}

func TestParseFeed_MissingURL(t *testing.T) {
	handler := NewFeedHandler(&mockFeedService{})

	input := &ParseFeedInput{}

	if _, err := handler.ParseFeed(context.Background(), input); err == nil {
		t.Error("missing URL should be rejected")
	}
}

func TestParseFeed_RelativeURL(t *testing.T) {
	handler := NewFeedHandler(&mockFeedService{})

	input := &ParseFeedInput{}
	input.Body.URL = "/feed.xml"

	if _, err := handler.ParseFeed(context.Background(), input); err == nil {
		t.Error("non-absolute URL should be rejected")
	}
}
