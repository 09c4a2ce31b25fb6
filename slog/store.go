package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/shaunakkarnik/codesync"
)

// Ensure LoggingRecordWriter implements codesync.RecordWriter.
var _ codesync.RecordWriter = (*LoggingRecordWriter)(nil)

// LoggingRecordWriter wraps a RecordWriter with debug logging.
type LoggingRecordWriter struct {
	next   codesync.RecordWriter
	logger *slog.Logger
}

// NewLoggingRecordWriter creates a new LoggingRecordWriter.
func NewLoggingRecordWriter(next codesync.RecordWriter, logger *slog.Logger) *LoggingRecordWriter {
	return &LoggingRecordWriter{next: next, logger: logger}
}

// WriteRecords delegates to the wrapped writer and logs the record count.
func (w *LoggingRecordWriter) WriteRecords(ctx context.Context, records []*codesync.DeprecationRecord) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteRecords(ctx, records)
}
