// ABOUTME: Renderer interface for headless browser page rendering
// ABOUTME: Abstracts the browser so tests can inject a fake implementation

package interfaces

import "context"

// Renderer materializes JavaScript-generated content by loading a page in a
// headless browser and returning the rendered DOM as HTML.
//
// Render must honor ctx cancellation; a navigation that exceeds the renderer's
// own timeout returns an error rather than blocking indefinitely.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
}
