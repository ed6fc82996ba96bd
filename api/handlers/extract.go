// ABOUTME: Extraction handler for the Huma API
// ABOUTME: Exposes the content extraction fallback chain over HTTP

package handlers

import (
	"context"
	"net/http"

	"extractor-app-api/core/domain"
	"extractor-app-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
)

// maxExtractURLs bounds one batch request.
const maxExtractURLs = 25

// ExtractHandler handles content extraction requests.
type ExtractHandler struct {
	extraction interfaces.ExtractionService
}

// NewExtractHandler creates a new extraction handler.
func NewExtractHandler(extraction interfaces.ExtractionService) *ExtractHandler {
	return &ExtractHandler{extraction: extraction}
}

// RegisterRoutes registers extraction routes.
func (h *ExtractHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "extractContent",
		Method:      http.MethodPost,
		Path:        "/extract",
		Summary:     "Extract article content from URLs",
		Description: "Runs the extraction fallback chain (feed short-circuit, DOM strategies, optional headless rendering) for each URL",
		Tags:        []string{"Extraction"},
	}, h.ExtractContent)
}

// ExtractContentInput defines the input for the ExtractContent operation.
type ExtractContentInput struct {
	Body struct {
		URLs []string `json:"urls" minItems:"1" maxItems:"25" doc:"URLs to extract content from"`

		UseHeadlessBrowser bool `json:"use_headless_browser,omitempty" doc:"Render JavaScript-heavy pages in a headless browser when static extraction fails"`
	}
}

// ExtractContentOutput defines the output for the ExtractContent operation.
type ExtractContentOutput struct {
	Body struct {
		Results []domain.ExtractionResult `json:"results" doc:"One result per input URL, in input order"`
	}
}

// ExtractContent handles the POST /extract endpoint. Per-URL failures are
// reported inside each result; the endpoint itself only fails on bad input.
func (h *ExtractHandler) ExtractContent(ctx context.Context, input *ExtractContentInput) (*ExtractContentOutput, error) {
	if len(input.Body.URLs) == 0 {
		return nil, huma.Error400BadRequest("No URLs provided")
	}
	if len(input.Body.URLs) > maxExtractURLs {
		return nil, huma.Error400BadRequest("Too many URLs in one request")
	}

	results := h.extraction.ExtractContentBatch(ctx, input.Body.URLs, input.Body.UseHeadlessBrowser)

	output := &ExtractContentOutput{}
	output.Body.Results = results
	return output, nil
}
