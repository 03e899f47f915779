package fileqa_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/fileqa"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code for application error", func(t *testing.T) {
		t.Parallel()
		err := fileqa.Errorf(fileqa.ENOTFOUND, "session not found")
		assert.Equal(t, fileqa.ENOTFOUND, fileqa.ErrorCode(err))
	})

	t.Run("returns code for wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("store: %w", fileqa.Errorf(fileqa.EENCRYPTED, "file is encrypted"))
		assert.Equal(t, fileqa.EENCRYPTED, fileqa.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, fileqa.EINTERNAL, fileqa.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", fileqa.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message for application error", func(t *testing.T) {
		t.Parallel()
		err := fileqa.Errorf(fileqa.EINVALID, "question required")
		assert.Equal(t, "question required", fileqa.ErrorMessage(err))
	})

	t.Run("returns generic message for non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error", fileqa.ErrorMessage(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", fileqa.ErrorMessage(nil))
	})
}

func TestErrorf_FormatsMessage(t *testing.T) {
	t.Parallel()

	err := fileqa.Errorf(fileqa.EUNSUPPORTED, "unsupported file type %q", ".exe")

	assert.Equal(t, fileqa.EUNSUPPORTED, err.Code)
	assert.Equal(t, `unsupported file type ".exe"`, err.Message)
	assert.Contains(t, err.Error(), "code=unsupported")
}
