package mock_test

import (
	"context"
	"testing"

	"github.com/shaunakkarnik/codesync"
	"github.com/shaunakkarnik/codesync/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ codesync.RecordWriter = &mock.RecordWriter{}
}

func TestRecordWriter_WriteRecords(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteRecordsFn", func(t *testing.T) {
		t.Parallel()

		var calledWith []*codesync.DeprecationRecord
		w := &mock.RecordWriter{
			WriteRecordsFn: func(_ context.Context, records []*codesync.DeprecationRecord) error {
				calledWith = records
				return nil
			},
		}

		records := []*codesync.DeprecationRecord{
			{Deprecated: "foregroundColor(_:)", Replacement: "foregroundStyle(_:)"},
		}

		err := w.WriteRecords(context.Background(), records)

		require.NoError(t, err)
		assert.Equal(t, records, calledWith)
	})

	t.Run("returns error from WriteRecordsFn", func(t *testing.T) {
		t.Parallel()

		w := &mock.RecordWriter{
			WriteRecordsFn: func(context.Context, []*codesync.DeprecationRecord) error {
				return codesync.Errorf(codesync.EINTERNAL, "disk full")
			},
		}

		err := w.WriteRecords(context.Background(), nil)

		require.Error(t, err)
		assert.Equal(t, codesync.EINTERNAL, codesync.ErrorCode(err))
	})
}
