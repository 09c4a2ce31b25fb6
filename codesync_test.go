package codesync_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shaunakkarnik/codesync"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := codesync.Errorf(codesync.ENOTFOUND, "records file %q not found", "out.json")

	assert.Equal(t, codesync.ENOTFOUND, codesync.ErrorCode(err))
	assert.Equal(t, "records file \"out.json\" not found", codesync.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, codesync.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, codesync.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("reading records: %w", codesync.Errorf(codesync.EINVALID, "bad json"))

	assert.Equal(t, codesync.EINVALID, codesync.ErrorCode(err))
	assert.Equal(t, "bad json", codesync.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, codesync.EINTERNAL, codesync.ErrorCode(err))
	assert.Equal(t, "Internal error.", codesync.ErrorMessage(err))
}

func TestDeprecationRecord_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires deprecated name", func(t *testing.T) {
		t.Parallel()

		r := &codesync.DeprecationRecord{Replacement: "foregroundStyle(_:)"}

		err := r.Validate()

		assert.Equal(t, codesync.EINVALID, codesync.ErrorCode(err))
	})

	t.Run("accepts record with empty replacement", func(t *testing.T) {
		t.Parallel()

		r := &codesync.DeprecationRecord{Deprecated: "foregroundColor(_:)"}

		assert.NoError(t, r.Validate())
		assert.False(t, r.HasReplacement())
	})
}

func TestDeprecationRecord_Failed(t *testing.T) {
	t.Parallel()

	failed := &codesync.DeprecationRecord{Deprecated: "a()", Description: "Error extracting data: timeout"}
	ok := &codesync.DeprecationRecord{Deprecated: "b()", Description: "Deprecated. Use c() instead."}

	assert.True(t, failed.Failed())
	assert.False(t, ok.Failed())
}
