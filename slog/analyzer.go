package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/shaunakkarnik/codesync"
)

// Ensure LoggingAnalyzer implements codesync.Analyzer.
var _ codesync.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with debug logging.
type LoggingAnalyzer struct {
	next   codesync.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next codesync.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the operation.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, source string, records []*codesync.DeprecationRecord) (analysis string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("analyze",
			"source_bytes", len(source),
			"records", len(records),
			"analysis_bytes", len(analysis),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Analyze(ctx, source, records)
}

// Fix delegates to the wrapped analyzer and logs the operation.
func (a *LoggingAnalyzer) Fix(ctx context.Context, source string, analysis string, records []*codesync.DeprecationRecord) (fixed string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("fix",
			"source_bytes", len(source),
			"fixed_bytes", len(fixed),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Fix(ctx, source, analysis, records)
}

// Summarize delegates to the wrapped analyzer and logs the operation.
func (a *LoggingAnalyzer) Summarize(ctx context.Context, text string) (summary string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("summarize",
			"text_bytes", len(text),
			"summary_bytes", len(summary),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Summarize(ctx, text)
}
