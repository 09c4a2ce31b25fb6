// Package scrape drives a deprecation scrape: it fetches the index page,
// extracts the deprecated API links, and visits each detail page in turn.
package scrape

import (
	"context"
	"fmt"

	"github.com/shaunakkarnik/codesync"
)

// DefaultIndexURL lists the deprecated SwiftUI View modifiers.
const DefaultIndexURL = "https://developer.apple.com/documentation/swiftui/view-deprecated"

// Scraper turns an index page into one DeprecationRecord per listed API.
// Pages are processed one at a time.
type Scraper struct {
	Fetcher   codesync.Fetcher
	Extractor codesync.Extractor
	Pacer     codesync.Pacer
}

// Progress reports the outcome of one detail page.
type Progress struct {
	Name      string
	URL       string
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is called after each detail page.
type ProgressFunc func(Progress)

// Run scrapes the index page at indexURL and every detail page it links to.
// It fails only if the index page cannot be fetched or parsed. A detail page
// that fails produces a placeholder record and the run continues, so the
// result has exactly one record per extracted link, in index order.
func (s *Scraper) Run(ctx context.Context, indexURL string, progress ProgressFunc) ([]*codesync.DeprecationRecord, error) {
	links, err := s.Links(ctx, indexURL)
	if err != nil {
		return nil, err
	}

	records := make([]*codesync.DeprecationRecord, 0, len(links))
	for i, link := range links {
		if err := ctx.Err(); err != nil {
			return records, err
		}

		record, linkErr := s.processLink(ctx, link)
		records = append(records, record)

		if progress != nil {
			progress(Progress{
				Name:      link.Name,
				URL:       link.URL,
				Completed: i + 1,
				Total:     len(links),
				Error:     linkErr,
			})
		}

		if i < len(links)-1 && s.Pacer != nil {
			if err := s.Pacer.Wait(ctx); err != nil {
				return records, err
			}
		}
	}

	return records, nil
}

// Links fetches the index page and returns the deprecated API links on it.
func (s *Scraper) Links(ctx context.Context, indexURL string) ([]codesync.FunctionLink, error) {
	html, err := s.Fetcher.Fetch(ctx, indexURL)
	if err != nil {
		return nil, fmt.Errorf("fetching index page: %w", err)
	}

	links, err := s.Extractor.ExtractLinks(html, indexURL)
	if err != nil {
		return nil, fmt.Errorf("extracting index links: %w", err)
	}
	return links, nil
}

// processLink fetches and extracts one detail page. It never fails: any
// error, including a panic in the extractor, is folded into a placeholder
// record and also returned for reporting.
func (s *Scraper) processLink(ctx context.Context, link codesync.FunctionLink) (record *codesync.DeprecationRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		if err != nil {
			record = FailureRecord(link.Name, err)
		}
	}()

	html, err := s.Fetcher.Fetch(ctx, link.URL)
	if err != nil {
		return nil, err
	}

	record, err = s.Extractor.ExtractRecord(link.Name, html)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return &codesync.DeprecationRecord{Deprecated: link.Name}, nil
	}
	return record, nil
}

// FailureRecord builds the placeholder record for a page that could not be processed.
func FailureRecord(name string, err error) *codesync.DeprecationRecord {
	return &codesync.DeprecationRecord{
		Deprecated:  name,
		Replacement: "",
		Description: codesync.FailurePrefix + err.Error(),
	}
}
