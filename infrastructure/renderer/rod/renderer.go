// ABOUTME: Headless browser renderer implementation using go-rod
// ABOUTME: Shares one Chrome process across requests behind a page semaphore

package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

const (
	// DefaultNavigationTimeout bounds a single page load independently of
	// the HTTP fetch timeout.
	DefaultNavigationTimeout = 30 * time.Second

	// DefaultSettleDelay is the extra wait after network idle, giving
	// client-side rendering time to finish painting content.
	DefaultSettleDelay = 2 * time.Second

	// DefaultMaxPages bounds concurrent page checkouts on the shared browser.
	DefaultMaxPages = 4

	// requestIdleWindow is how long the network must stay quiet before a
	// page counts as idle.
	requestIdleWindow = 300 * time.Millisecond
)

// Config holds renderer tuning knobs.
type Config struct {
	NavigationTimeout time.Duration
	SettleDelay       time.Duration
	MaxPages          int
}

// Renderer renders pages in a shared headless Chrome instance. It implements
// the core Renderer interface and is safe for concurrent use; a semaphore
// bounds how many pages are open at once so load spikes cannot exhaust the
// browser process.
type Renderer struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	cfg       Config
	semaphore chan struct{}
}

// NewRenderer launches a headless Chrome browser. The launcher downloads a
// browser binary on first use when none is installed; constructing the
// renderer at startup makes that one-time cost explicit instead of paying it
// silently mid-request. Close must be called when the Renderer is no longer
// needed.
func NewRenderer(cfg Config) (*Renderer, error) {
	if cfg.NavigationTimeout <= 0 {
		cfg.NavigationTimeout = DefaultNavigationTimeout
	}
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = DefaultSettleDelay
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = DefaultMaxPages
	}

	lnchr := launcher.New().
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Renderer{
		browser:   browser,
		launcher:  lnchr,
		cfg:       cfg,
		semaphore: make(chan struct{}, cfg.MaxPages),
	}, nil
}

// Render navigates to url, waits for network idle plus the settle delay, and
// returns the rendered DOM. The navigation carries its own timeout on top of
// any deadline already present on ctx.
func (r *Renderer) Render(ctx context.Context, url string) (string, error) {
	select {
	case r.semaphore <- struct{}{}:
		defer func() { <-r.semaphore }()
	case <-ctx.Done():
		return "", ctx.Err()
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.NavigationTimeout)
	defer cancel()

	page, err := r.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("creating page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("navigating: %w", err)
	}

	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("waiting for load: %w", err)
	}

	// Let in-flight XHRs drain, then give client-side rendering a moment to
	// paint the fetched data.
	wait := page.WaitRequestIdle(requestIdleWindow, nil, nil, nil)
	wait()

	select {
	case <-time.After(r.cfg.SettleDelay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("reading rendered DOM: %w", err)
	}

	return html, nil
}

// Close releases the browser and its launcher process.
func (r *Renderer) Close() error {
	err := r.browser.Close()
	r.launcher.Kill()
	return err
}
