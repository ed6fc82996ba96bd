package handlers

import (
	"context"
	"io"
	"strings"

	"extractor-app-api/core/domain"
	"extractor-app-api/core/interfaces"
)

// mockExtractionService is a mock implementation of the ExtractionService interface
type mockExtractionService struct {
	batchFunc func(ctx context.Context, urls []string, useHeadless bool) []domain.ExtractionResult
}

func (m *mockExtractionService) ExtractContent(ctx context.Context, url string, useHeadless bool) domain.ExtractionResult {
	results := m.ExtractContentBatch(ctx, []string{url}, useHeadless)
	if len(results) > 0 {
		return results[0]
	}
	return domain.ExtractionResult{}
}

func (m *mockExtractionService) ExtractContentBatch(ctx context.Context, urls []string, useHeadless bool) []domain.ExtractionResult {
	if m.batchFunc != nil {
		return m.batchFunc(ctx, urls, useHeadless)
	}
	return nil
}

// mockFeedService is a mock implementation of the FeedService interface
type mockFeedService struct {
	parseFunc    func(ctx context.Context, feedURL string, maxItems int) []domain.FeedItem
	discoverFunc func(ctx context.Context, siteURL string) (string, bool)
}

func (m *mockFeedService) ParseFeed(ctx context.Context, feedURL string, maxItems int) []domain.FeedItem {
	if m.parseFunc != nil {
		return m.parseFunc(ctx, feedURL, maxItems)
	}
	return nil
}

func (m *mockFeedService) DiscoverFeedURL(ctx context.Context, siteURL string) (string, bool) {
	if m.discoverFunc != nil {
		return m.discoverFunc(ctx, siteURL)
	}
	return "", false
}

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return &mockResponse{statusCode: 200}, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(""))
}

func (m *mockResponse) Header(key string) string {
	return ""
}
