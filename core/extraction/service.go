// ABOUTME: Extraction orchestrator that sequences the fallback chain for one URL
// ABOUTME: Feed short-circuit, static strategies, headless rerun, then basic text

package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"extractor-app-api/core/domain"
	"extractor-app-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
)

const (
	// maxBatchConcurrency bounds the goroutine fan in ExtractContentBatch.
	maxBatchConcurrency = 10

	cacheTTL = 1 * time.Hour
)

// Service runs the extraction fallback chain. Each call is strictly
// sequential within itself; calls for different URLs run concurrently with no
// shared mutable state beyond the renderer.
type Service struct {
	deps       interfaces.Dependencies
	feeds      interfaces.FeedService
	renderer   interfaces.Renderer
	strategies []Strategy
}

// Option configures a Service.
type Option func(*Service)

// WithRenderer injects a headless renderer for the JavaScript fallback stage.
// Without one, requests that ask for headless rendering skip that stage.
func WithRenderer(r interfaces.Renderer) Option {
	return func(s *Service) { s.renderer = r }
}

// WithStrategies overrides the default strategy chain.
func WithStrategies(strategies []Strategy) Option {
	return func(s *Service) { s.strategies = strategies }
}

// NewService creates an extraction service with the default strategy chain.
func NewService(deps interfaces.Dependencies, feeds interfaces.FeedService, opts ...Option) *Service {
	s := &Service{
		deps:       deps,
		feeds:      feeds,
		strategies: DefaultStrategies(DefaultScoringConfig()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExtractContent runs the full fallback chain for url. It never returns an
// error; every outcome, including a panic in a strategy, is reported as an
// ExtractionResult with MethodUsed set.
func (s *Service) ExtractContent(ctx context.Context, url string, useHeadless bool) (result domain.ExtractionResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logError("Extraction panicked", url, fmt.Sprintf("%v", r))
			result = domain.NewFailedResult(url, domain.MethodError, map[string]interface{}{
				"error": fmt.Sprintf("%v", r),
			})
		}
	}()

	if cached, ok := s.cachedResult(ctx, url); ok {
		return cached
	}

	result = s.extract(ctx, url, useHeadless)

	if result.Success {
		s.cacheResult(ctx, url, result)
	}
	return result
}

// extract is the fallback state machine described by the service contract.
func (s *Service) extract(ctx context.Context, url string, useHeadless bool) domain.ExtractionResult {
	// Stage 1: a URL that is itself a feed (or advertises one) short-circuits
	// HTML scraping entirely.
	if result, ok := s.tryFeed(ctx, url); ok {
		return result
	}

	// Stage 2: raw fetch. A failed fetch is terminal.
	rawHTML, ok := s.fetchHTML(ctx, url)
	if !ok {
		return domain.NewFailedResult(url, domain.MethodFetchFailed, nil)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return domain.NewFailedResult(url, domain.MethodNoContent, map[string]interface{}{
			"error": err.Error(),
		})
	}

	// Stage 3: noise filter once, then the ranked static strategies.
	StripNoise(doc)
	if result, ok := s.runStrategies(doc, url, ""); ok {
		return result
	}

	// Stage 4: headless rerun, only on request and only after the static
	// stage provably failed.
	headlessMeta := map[string]interface{}{}
	if useHeadless && s.renderer != nil {
		if result, ok := s.tryHeadless(ctx, url, headlessMeta); ok {
			return result
		}
	}

	// Stage 5: basic text over the noise-filtered body. This path exists so
	// a reachable page never produces an empty result.
	if text := CleanText(doc.Find("body").Text()); text != "" {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("All extraction strategies failed, returning basic text", map[string]interface{}{
				"url": url,
			})
		}
		return domain.ExtractionResult{
			URL:         url,
			Content:     text,
			ContentType: "text/plain",
			Success:     true,
			MethodUsed:  domain.MethodBasicText,
			Metadata:    headlessMeta,
		}
	}

	return domain.NewFailedResult(url, domain.MethodNoContent, headlessMeta)
}

// ExtractContentBatch extracts multiple URLs concurrently. Results keep the
// input order; each URL is isolated from its neighbors' failures.
func (s *Service) ExtractContentBatch(ctx context.Context, urls []string, useHeadless bool) []domain.ExtractionResult {
	results := make([]domain.ExtractionResult, len(urls))
	semaphore := make(chan struct{}, maxBatchConcurrency)
	var wg sync.WaitGroup

	for i, url := range urls {
		wg.Add(1)
		go func(index int, target string) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			results[index] = s.ExtractContent(ctx, target, useHeadless)
		}(i, url)
	}

	wg.Wait()
	return results
}

// tryFeed attempts the syndication short-circuit with maxItems=1.
func (s *Service) tryFeed(ctx context.Context, url string) (domain.ExtractionResult, bool) {
	if s.feeds == nil {
		return domain.ExtractionResult{}, false
	}

	items := s.feeds.ParseFeed(ctx, url, 1)
	if len(items) == 0 {
		return domain.ExtractionResult{}, false
	}

	item := items[0]
	parts := make([]string, 0, 3)
	for _, part := range []string{item.Title, item.Description, item.Content} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	content := strings.Join(parts, "\n\n")
	if content == "" {
		return domain.ExtractionResult{}, false
	}

	return domain.ExtractionResult{
		URL:         url,
		Content:     content,
		ContentType: "text/plain",
		Success:     true,
		MethodUsed:  domain.MethodRSSFeed,
		Metadata: map[string]interface{}{
			"feed_source": item.Source,
			"item_url":    item.URL,
		},
	}, true
}

// runStrategies tries the ranked strategies against a noise-filtered document.
// methodPrefix is empty for the static pass and "headless_" for the rerun.
func (s *Service) runStrategies(doc *goquery.Document, url, methodPrefix string) (domain.ExtractionResult, bool) {
	for _, strategy := range s.strategies {
		sr, ok := strategy.Extract(doc)
		if !ok || sr.Content == "" {
			continue
		}

		if s.deps.Logger != nil {
			s.deps.Logger.Debug("Extraction strategy succeeded", map[string]interface{}{
				"url":      url,
				"strategy": strategy.Name(),
			})
		}

		return domain.ExtractionResult{
			URL:         url,
			Content:     sr.Content,
			ContentType: "text/plain",
			Success:     true,
			MethodUsed:  methodPrefix + sr.Method,
			Metadata:    sr.Metadata,
		}, true
	}
	return domain.ExtractionResult{}, false
}

// tryHeadless renders the page in the injected browser and reruns the static
// strategy stage on the rendered DOM. Render failures are recorded in meta
// and fall through to the basic-text stage.
func (s *Service) tryHeadless(ctx context.Context, url string, meta map[string]interface{}) (domain.ExtractionResult, bool) {
	rendered, err := s.renderer.Render(ctx, url)
	if err != nil {
		s.logError("Headless rendering failed", url, err.Error())
		meta[domain.MethodHeadlessError] = err.Error()
		return domain.ExtractionResult{}, false
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rendered))
	if err != nil {
		meta[domain.MethodHeadlessError] = err.Error()
		return domain.ExtractionResult{}, false
	}

	StripNoise(doc)
	return s.runStrategies(doc, url, domain.MethodHeadlessPrefix)
}

// fetchHTML performs the raw page fetch. All transport errors and non-2xx
// statuses collapse to ok=false; nothing is raised to the chain.
func (s *Service) fetchHTML(ctx context.Context, url string) (string, bool) {
	if s.deps.HTTPClient == nil {
		return "", false
	}

	resp, err := s.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		s.logError("Failed to fetch page", url, err.Error())
		return "", false
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		s.logError("Page returned non-2xx status", url, fmt.Sprintf("status %d", resp.StatusCode()))
		return "", false
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		s.logError("Failed to read page body", url, err.Error())
		return "", false
	}

	return string(body), true
}

func (s *Service) cachedResult(ctx context.Context, url string) (domain.ExtractionResult, bool) {
	if s.deps.Cache == nil {
		return domain.ExtractionResult{}, false
	}

	data, err := s.deps.Cache.Get(ctx, cacheKey(url))
	if err != nil || data == nil {
		return domain.ExtractionResult{}, false
	}

	var result domain.ExtractionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return domain.ExtractionResult{}, false
	}
	return result, true
}

func (s *Service) cacheResult(ctx context.Context, url string, result domain.ExtractionResult) {
	if s.deps.Cache == nil {
		return
	}

	if data, err := json.Marshal(result); err == nil {
		_ = s.deps.Cache.Set(ctx, cacheKey(url), data, cacheTTL)
	}
}

func cacheKey(url string) string {
	return "extract:" + url
}

func (s *Service) logError(msg, url, errMsg string) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Error(msg, map[string]interface{}{
		"url":   url,
		"error": errMsg,
	})
}
