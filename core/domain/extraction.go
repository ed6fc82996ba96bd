// ABOUTME: Domain model for content extraction results
// ABOUTME: Defines the result value and the fixed vocabulary of extraction methods

package domain

// Extraction method identifiers. MethodUsed is always one of these (or a
// selector/headless variant built from them), so callers can branch on the
// outcome without string-matching error messages.
const (
	MethodRSSFeed     = "rss_feed"
	MethodReadability = "readability_article"
	MethodHeuristics  = "heuristics"
	MethodBasicText   = "basic_text"

	// MethodSelectorPrefix is followed by the CSS selector that matched.
	MethodSelectorPrefix = "selector_"

	// MethodHeadlessPrefix marks a strategy that succeeded against the
	// headless-rendered DOM rather than the raw fetch.
	MethodHeadlessPrefix = "headless_"

	// Failure reasons.
	MethodFetchFailed   = "fetch_failed"
	MethodNoContent     = "no_content_found"
	MethodHeadlessError = "headless_error"
	MethodError         = "error"
)

// ExtractionResult is the immutable outcome of one extraction call.
// Success == true implies Content is non-empty; MethodUsed is always set,
// even on failure.
type ExtractionResult struct {
	URL         string                 `json:"url"`
	Content     string                 `json:"content"`
	ContentType string                 `json:"contentType"`
	Success     bool                   `json:"success"`
	MethodUsed  string                 `json:"methodUsed"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// NewFailedResult builds a failure result with the given reason tag.
func NewFailedResult(url, method string, metadata map[string]interface{}) ExtractionResult {
	return ExtractionResult{
		URL:         url,
		ContentType: "text/plain",
		Success:     false,
		MethodUsed:  method,
		Metadata:    metadata,
	}
}
