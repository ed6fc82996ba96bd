package extraction

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"extractor-app-api/core/domain"
	"extractor-app-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	mu       sync.Mutex
	getFunc  func(ctx context.Context, url string) (interfaces.Response, error)
	getCalls int
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.mu.Lock()
	m.getCalls++
	m.mu.Unlock()
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    map[string]string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	if m.headers != nil {
		return m.headers[key]
	}
	return ""
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc func(ctx context.Context, key string) ([]byte, error)
	setFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	warnFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

// mockFeedService is a mock implementation of the FeedService interface
type mockFeedService struct {
	parseFunc func(ctx context.Context, feedURL string, maxItems int) []domain.FeedItem
}

func (m *mockFeedService) ParseFeed(ctx context.Context, feedURL string, maxItems int) []domain.FeedItem {
	if m.parseFunc != nil {
		return m.parseFunc(ctx, feedURL, maxItems)
	}
	return nil
}

func (m *mockFeedService) DiscoverFeedURL(ctx context.Context, siteURL string) (string, bool) {
	return "", false
}

// mockRenderer is a mock implementation of the Renderer interface
type mockRenderer struct {
	renderFunc func(ctx context.Context, url string) (string, error)
	calls      int
}

func (m *mockRenderer) Render(ctx context.Context, url string) (string, error) {
	m.calls++
	if m.renderFunc != nil {
		return m.renderFunc(ctx, url)
	}
	return "", nil
}

// recordingStrategy records Extract calls and returns a canned result
type recordingStrategy struct {
	name    string
	result  StrategyResult
	ok      bool
	calls   int
	panicky bool
}

func (s *recordingStrategy) Name() string { return s.name }

func (s *recordingStrategy) Extract(doc *goquery.Document) (StrategyResult, bool) {
	s.calls++
	if s.panicky {
		panic("strategy exploded")
	}
	return s.result, s.ok
}

func mustParseDoc(t interface{ Fatalf(string, ...interface{}) }, html string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse test HTML: %v", err)
	}
	return doc
}
