// Package rod implements codesync.Fetcher with headless Chrome, for
// documentation pages that are rendered client-side.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/go-rod/rod/lib/proto"
	"github.com/shaunakkarnik/codesync"
)

// DefaultFetchTimeout bounds a single navigation including the wait for
// the network to go idle.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements codesync.Fetcher at compile time.
var _ codesync.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
type Fetcher struct {
	manager *BrowserManager
	timeout time.Duration
	closed  atomic.Bool
}

// Option configures a Fetcher.
type Option func(*fetcherConfig)

type fetcherConfig struct {
	timeout time.Duration
	manager []ManagerOption
}

// WithFetchTimeout sets the per-page timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *fetcherConfig) {
		c.timeout = d
	}
}

// WithManagerOptions passes options through to the underlying BrowserManager.
func WithManagerOptions(opts ...ManagerOption) Option {
	return func(c *fetcherConfig) {
		c.manager = append(c.manager, opts...)
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	cfg := fetcherConfig{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	manager, err := NewBrowserManager(cfg.manager...)
	if err != nil {
		return nil, err
	}

	return &Fetcher{manager: manager, timeout: cfg.timeout}, nil
}

// Fetch navigates to the URL, waits until the network is idle so that
// client-side rendering has finished, and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", codesync.Errorf(codesync.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.manager.NewPage()
	if err != nil {
		return "", err
	}
	defer page.Close()

	p := page.Context(ctx)

	// Subscribe before navigating so the idle event cannot be missed.
	waitIdle := p.WaitNavigation(proto.PageLifecycleEventNameNetworkIdle)
	if err := p.Navigate(url); err != nil {
		return "", err
	}
	waitIdle()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	return p.HTML()
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}
