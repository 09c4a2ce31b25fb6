package main

import (
	"fmt"

	"github.com/shaunakkarnik/codesync/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	s := &scrape.Scraper{
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		Pacer:     deps.Pacer,
	}

	progress := func(p scrape.Progress) {
		fmt.Fprintf(deps.Stdout, "[%d/%d] %s\n", p.Completed, p.Total, p.Name)
		if p.Error != nil {
			deps.Logger.Warn("extraction failed",
				"name", p.Name,
				"url", p.URL,
				"err", p.Error,
			)
		}
	}

	fmt.Fprintf(deps.Stdout, "Scraping %s\n", c.URL)
	records, err := s.Run(deps.Ctx, c.URL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	if err := deps.Records.WriteRecords(deps.Ctx, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: writing %s: %v\n", c.Output, err)
		return err
	}

	var replaced, failed int
	for _, r := range records {
		switch {
		case r.HasReplacement():
			replaced++
		case r.Failed():
			failed++
		}
	}

	fmt.Fprintf(deps.Stdout, "Saved %d records to %s (%d with replacement, %d failed)\n",
		len(records), c.Output, replaced, failed)
	return nil
}
