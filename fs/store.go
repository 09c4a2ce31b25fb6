// Package fs provides file-based storage for scrape output.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/shaunakkarnik/codesync"
)

// DefaultPath is the output file written in the working directory.
const DefaultPath = "deprecated_functions.json"

// Ensure RecordStore implements codesync.RecordWriter and codesync.RecordReader at compile time.
var (
	_ codesync.RecordWriter = (*RecordStore)(nil)
	_ codesync.RecordReader = (*RecordStore)(nil)
)

// RecordStore keeps deprecation records in a single JSON file.
// Writes go to path.tmp and are renamed over path, so readers never see a
// partially written file.
type RecordStore struct {
	path string
}

// NewRecordStore creates a new RecordStore backed by the file at path.
func NewRecordStore(path string) *RecordStore {
	return &RecordStore{path: path}
}

func (s *RecordStore) tempPath() string {
	return s.path + ".tmp"
}

// WriteRecords replaces the file with a JSON array of records, indented
// with two spaces. Nothing is written if any record is invalid.
func (s *RecordStore) WriteRecords(ctx context.Context, records []*codesync.DeprecationRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for i, r := range records {
		if r == nil {
			return codesync.Errorf(codesync.EINVALID, "record %d is nil", i)
		}
		if err := r.Validate(); err != nil {
			return codesync.Errorf(codesync.EINVALID, "record %d: %s", i, codesync.ErrorMessage(err))
		}
	}

	data, err := MarshalRecords(records)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := os.WriteFile(s.tempPath(), data, 0644); err != nil {
		return err
	}
	if err := os.Rename(s.tempPath(), s.path); err != nil {
		_ = os.Remove(s.tempPath())
		return err
	}
	return nil
}

// ReadRecords loads the records from the file.
func (s *RecordStore) ReadRecords(ctx context.Context) ([]*codesync.DeprecationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, codesync.Errorf(codesync.ENOTFOUND, "records file %q not found", s.path)
	} else if err != nil {
		return nil, err
	}

	var records []*codesync.DeprecationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, codesync.Errorf(codesync.EINVALID, "records file %q is not valid JSON: %v", s.path, err)
	}
	return records, nil
}

// MarshalRecords encodes records as an indented JSON array. Characters
// such as < > & are written as-is rather than escaped, and a nil slice
// encodes as an empty array.
func MarshalRecords(records []*codesync.DeprecationRecord) ([]byte, error) {
	if records == nil {
		records = []*codesync.DeprecationRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
