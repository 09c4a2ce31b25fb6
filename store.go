package codesync

import "context"

// RecordWriter persists the output of a scrape run.
type RecordWriter interface {
	// WriteRecords replaces any previously written records.
	WriteRecords(ctx context.Context, records []*DeprecationRecord) error
}

// RecordReader loads the output of a previous scrape run.
type RecordReader interface {
	// ReadRecords returns ENOTFOUND if nothing has been written yet.
	ReadRecords(ctx context.Context) ([]*DeprecationRecord, error)
}
