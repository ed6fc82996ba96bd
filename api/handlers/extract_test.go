package handlers

import (
	"context"
	"testing"

	"extractor-app-api/core/domain"
)

func TestExtractContent_ReturnsResultsInOrder(t *testing.T) {
	service := &mockExtractionService{
		batchFunc: func(ctx context.Context, urls []string, useHeadless bool) []domain.ExtractionResult {
			results := make([]domain.ExtractionResult, len(urls))
			for i, u := range urls {
				results[i] = domain.ExtractionResult{URL: u, Content: "text", Success: true, MethodUsed: domain.MethodHeuristics}
			}
			return results
		},
	}
	handler := NewExtractHandler(service)

	input := &ExtractContentInput{}
	input.Body.URLs = []string{"https://example.com/a", "https://example.com/b"}

	output, err := handler.ExtractContent(context.Background(), input)
	if err != nil {
		t.Fatalf("ExtractContent failed: %v", err)
	}

	if len(output.Body.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(output.Body.Results))
	}
	if output.Body.Results[0].URL != "https://example.com/a" || output.Body.Results[1].URL != "https://example.com/b" {
		t.Error("results out of input order")
	}
}

func TestExtractContent_PassesHeadlessFlag(t *testing.T) {
	var gotHeadless bool
	service := &mockExtractionService{
		batchFunc: func(ctx context.Context, urls []string, useHeadless bool) []domain.ExtractionResult {
			gotHeadless = useHeadless
			return []domain.ExtractionResult{{URL: urls[0]}}
		},
	}
	handler := NewExtractHandler(service)

	input := &ExtractContentInput{}
	input.Body.URLs = []string{"https://example.com"}
	input.Body.UseHeadlessBrowser = true

	if _, err := handler.ExtractContent(context.Background(), input); err != nil {
		t.Fatalf("ExtractContent failed: %v", err)
	}
	if !gotHeadless {
		t.Error("use_headless_browser flag was not forwarded to the service")
	}
}

func TestExtractContent_EmptyURLs(t *testing.T) {
	handler := NewExtractHandler(&mockExtractionService{})

	input := &ExtractContentInput{}

	if _, err := handler.ExtractContent(context.Background(), input); err == nil {
		t.Error("empty URL list should be rejected")
	}
}

func TestExtractContent_TooManyURLs(t *testing.T) {
	handler := NewExtractHandler(&mockExtractionService{})

	input := &ExtractContentInput{}
	for i := 0; i < maxExtractURLs+1; i++ {
		input.Body.URLs = append(input.Body.URLs, "https://example.com")
	}

	if _, err := handler.ExtractContent(context.Background(), input); err == nil {
		t.Error("oversized batch should be rejected")
	}
}
