package mock

import (
	"context"

	"github.com/shaunakkarnik/codesync"
)

var _ codesync.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of codesync.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(ctx context.Context, records []*codesync.DeprecationRecord) error
}

func (w *RecordWriter) WriteRecords(ctx context.Context, records []*codesync.DeprecationRecord) error {
	return w.WriteRecordsFn(ctx, records)
}

var _ codesync.RecordReader = (*RecordReader)(nil)

// RecordReader is a mock implementation of codesync.RecordReader.
type RecordReader struct {
	ReadRecordsFn func(ctx context.Context) ([]*codesync.DeprecationRecord, error)
}

func (r *RecordReader) ReadRecords(ctx context.Context) ([]*codesync.DeprecationRecord, error) {
	return r.ReadRecordsFn(ctx)
}
