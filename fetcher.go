package codesync

import "context"

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch navigates to the URL, waits until the page has finished
	// rendering, and returns the rendered HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases browser resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// Pacer spaces out requests to the documentation server.
type Pacer interface {
	// Wait blocks for the pacing delay.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context) error
}
