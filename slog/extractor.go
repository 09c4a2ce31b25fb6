package slog

import (
	"log/slog"
	"time"

	"github.com/shaunakkarnik/codesync"
)

// Ensure LoggingExtractor implements codesync.Extractor.
var _ codesync.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   codesync.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next codesync.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractLinks delegates to the wrapped extractor and logs the link count.
func (e *LoggingExtractor) ExtractLinks(html string, baseURL string) (links []codesync.FunctionLink, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract links",
			"url", baseURL,
			"count", len(links),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractLinks(html, baseURL)
}

// ExtractRecord delegates to the wrapped extractor and logs what was found.
func (e *LoggingExtractor) ExtractRecord(name string, html string) (record *codesync.DeprecationRecord, err error) {
	defer func(begin time.Time) {
		var replacement string
		var confidence codesync.Confidence
		if record != nil {
			replacement = record.Replacement
			confidence = record.Confidence
		}
		e.logger.Info("extract record",
			"name", name,
			"replacement", replacement,
			"confidence", string(confidence),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractRecord(name, html)
}
