// ABOUTME: Feed service handles RSS/Atom feed resolution and parsing
// ABOUTME: Degrades to empty results on failure; parsing is one candidate strategy among several

package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"extractor-app-api/core/domain"
	"extractor-app-api/core/interfaces"

	"github.com/mmcdole/gofeed"
)

const (
	// DefaultMaxItems caps feeds that don't specify a limit.
	DefaultMaxItems = 20

	cacheTTL = 30 * time.Minute
)

// Service parses syndication feeds into domain items.
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new feed service instance.
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// ParseFeed resolves feedURL and parses it as RSS/Atom, returning at most
// maxItems items in document order. A URL that turns out to be an HTML page
// is probed for a feed alternate link before giving up.
//
// All failures (unreachable URL, malformed XML, not a feed) are logged and
// degrade to an empty slice; this method never returns an error because feed
// parsing is only one candidate in the extraction fallback chain.
func (s *Service) ParseFeed(ctx context.Context, feedURL string, maxItems int) []domain.FeedItem {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}

	if !validURL(feedURL) {
		s.logDebug("Invalid feed URL", feedURL, "")
		return nil
	}

	if items, ok := s.cachedItems(ctx, feedURL, maxItems); ok {
		return items
	}

	resolved, ok := s.Resolve(ctx, feedURL)
	if !ok {
		return nil
	}

	body, contentType, ok := s.fetch(ctx, resolved)
	if !ok {
		return nil
	}

	// An HTML landing page may still advertise its feed in <head>.
	if looksLikeHTML(contentType, body) {
		discovered, found := DiscoverFeedLink(string(body), resolved)
		if !found {
			s.logDebug("URL is HTML without a feed alternate link", feedURL, "")
			return nil
		}
		body, _, ok = s.fetch(ctx, discovered)
		if !ok {
			return nil
		}
	}

	items, err := s.parseItems(body, maxItems)
	if err != nil {
		s.logDebug("Failed to parse feed content", feedURL, err.Error())
		return nil
	}

	s.cacheItems(ctx, feedURL, maxItems, items)
	return items
}

// Resolve confirms a candidate feed URL is reachable and returns it
// unchanged. The body is discarded; this is a reachability probe only.
func (s *Service) Resolve(ctx context.Context, candidateURL string) (string, bool) {
	if s.deps.HTTPClient == nil || !validURL(candidateURL) {
		return "", false
	}

	resp, err := s.deps.HTTPClient.Get(ctx, candidateURL)
	if err != nil {
		s.logDebug("Feed URL unreachable", candidateURL, err.Error())
		return "", false
	}
	resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		s.logDebug("Feed URL returned non-2xx status", candidateURL, fmt.Sprintf("status %d", resp.StatusCode()))
		return "", false
	}

	return candidateURL, true
}

// DiscoverFeedURL fetches siteURL and scans it for a syndication alternate
// link. Used by the discovery endpoint; ParseFeed performs the same scan
// inline when a fetched feed turns out to be HTML.
func (s *Service) DiscoverFeedURL(ctx context.Context, siteURL string) (string, bool) {
	body, _, ok := s.fetch(ctx, siteURL)
	if !ok {
		return "", false
	}
	return DiscoverFeedLink(string(body), siteURL)
}

// parseItems parses raw feed bytes and converts up to maxItems entries.
func (s *Service) parseItems(body []byte, maxItems int) ([]domain.FeedItem, error) {
	parser := gofeed.NewParser()
	parsed, err := parser.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	items := make([]domain.FeedItem, 0, min(maxItems, len(parsed.Items)))
	for _, entry := range parsed.Items {
		if len(items) >= maxItems {
			break
		}
		items = append(items, convertItem(entry, parsed))
	}
	return items, nil
}

// convertItem maps a gofeed item to the domain model. Content prefers the
// content:encoded extension (gofeed's Item.Content) over the summary.
func convertItem(entry *gofeed.Item, parsed *gofeed.Feed) domain.FeedItem {
	item := domain.FeedItem{
		Title:       entry.Title,
		Description: entry.Description,
		URL:         entry.Link,
		Source:      parsed.Title,
	}

	if entry.Content != "" {
		item.Content = entry.Content
	} else {
		item.Content = entry.Description
	}

	// A missing publish date stays absent; downstream must treat it as
	// "unknown", never "now".
	if entry.PublishedParsed != nil {
		published := *entry.PublishedParsed
		item.PublishedAt = &published
	} else if entry.UpdatedParsed != nil {
		updated := *entry.UpdatedParsed
		item.PublishedAt = &updated
	}

	if entry.Author != nil && entry.Author.Name != "" {
		item.Author = entry.Author.Name
	} else if len(entry.Authors) > 0 && entry.Authors[0] != nil {
		item.Author = entry.Authors[0].Name
	}

	return item
}

// fetch GETs a URL and returns its body and content type. All failures are
// reported as ok=false.
func (s *Service) fetch(ctx context.Context, target string) ([]byte, string, bool) {
	if s.deps.HTTPClient == nil {
		return nil, "", false
	}

	resp, err := s.deps.HTTPClient.Get(ctx, target)
	if err != nil {
		s.logDebug("Failed to fetch URL", target, err.Error())
		return nil, "", false
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		s.logDebug("URL returned non-2xx status", target, fmt.Sprintf("status %d", resp.StatusCode()))
		return nil, "", false
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		s.logDebug("Failed to read response body", target, err.Error())
		return nil, "", false
	}

	return body, resp.Header("Content-Type"), true
}

// looksLikeHTML reports whether a response is an HTML page rather than a
// feed, by content type first and document prefix as a fallback.
func looksLikeHTML(contentType string, body []byte) bool {
	ct := strings.ToLower(contentType)
	if strings.Contains(ct, "html") {
		return true
	}
	if strings.Contains(ct, "xml") || strings.Contains(ct, "rss") || strings.Contains(ct, "atom") {
		return false
	}

	prefix := strings.ToLower(string(bytes.TrimSpace(body)))
	return strings.HasPrefix(prefix, "<!doctype html") || strings.HasPrefix(prefix, "<html")
}

func validURL(raw string) bool {
	parsed, err := url.Parse(raw)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}

func (s *Service) cachedItems(ctx context.Context, feedURL string, maxItems int) ([]domain.FeedItem, bool) {
	if s.deps.Cache == nil {
		return nil, false
	}

	data, err := s.deps.Cache.Get(ctx, itemsCacheKey(feedURL, maxItems))
	if err != nil || data == nil {
		return nil, false
	}

	var items []domain.FeedItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (s *Service) cacheItems(ctx context.Context, feedURL string, maxItems int, items []domain.FeedItem) {
	if s.deps.Cache == nil || len(items) == 0 {
		return
	}

	if data, err := json.Marshal(items); err == nil {
		_ = s.deps.Cache.Set(ctx, itemsCacheKey(feedURL, maxItems), data, cacheTTL)
	}
}

func itemsCacheKey(feedURL string, maxItems int) string {
	return fmt.Sprintf("feed:%s:%d", feedURL, maxItems)
}

func (s *Service) logDebug(msg, target, errMsg string) {
	if s.deps.Logger == nil {
		return
	}
	fields := map[string]interface{}{"url": target}
	if errMsg != "" {
		fields["error"] = errMsg
	}
	s.deps.Logger.Debug(msg, fields)
}
