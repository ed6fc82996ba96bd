// ABOUTME: Validation handler for checking if URLs are valid and accessible
// ABOUTME: Performs concurrent reachability checks via the shared HTTP client

package handlers

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"extractor-app-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// ValidateHandler handles URL validation.
type ValidateHandler struct {
	httpClient interfaces.HTTPClient
}

// NewValidateHandler creates a new validation handler.
func NewValidateHandler(httpClient interfaces.HTTPClient) *ValidateHandler {
	return &ValidateHandler{httpClient: httpClient}
}

// RegisterRoutes registers validation routes.
func (h *ValidateHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "validateURLs",
		Method:      http.MethodPost,
		Path:        "/validate",
		Summary:     "Validate URLs",
		Description: "Checks if provided URLs are well-formed and reachable",
		Tags:        []string{"Validation"},
	}, h.ValidateURLs)
}

// ValidateInput defines the input for URL validation.
type ValidateInput struct {
	Body struct {
		URLs []string `json:"urls" minItems:"1" maxItems:"50" doc:"URLs to validate"`
	}
}

// URLValidationResult represents the validation result for a single URL.
type URLValidationResult struct {
	URL    string `json:"url" doc:"The URL that was validated"`
	Status string `json:"status" doc:"Validation status: 'valid' or 'invalid'"`
}

// ValidateOutput defines the output for URL validation.
type ValidateOutput struct {
	Body struct {
		Results []URLValidationResult `json:"results" doc:"Validation results for each URL"`
	}
}

// ValidateURLs handles the POST /validate endpoint.
func (h *ValidateHandler) ValidateURLs(ctx context.Context, input *ValidateInput) (*ValidateOutput, error) {
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}

	results := make([]URLValidationResult, len(input.Body.URLs))
	var wg sync.WaitGroup

	for i, raw := range input.Body.URLs {
		wg.Add(1)
		go func(idx int, target string) {
			defer wg.Done()

			status := "invalid"
			if h.isReachable(ctx, target) {
				status = "valid"
			}
			results[idx] = URLValidationResult{URL: target, Status: status}
		}(i, raw)
	}

	wg.Wait()

	output := &ValidateOutput{}
	output.Body.Results = results
	return output, nil
}

// isReachable checks URL syntax, then performs a GET and accepts any 2xx/3xx.
func (h *ValidateHandler) isReachable(ctx context.Context, raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return false
	}

	resp, err := h.httpClient.Get(ctx, raw)
	if err != nil {
		return false
	}
	resp.Body().Close()

	return resp.StatusCode() < 400
}
