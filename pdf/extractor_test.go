package pdf_test

import (
	"testing"

	"github.com/fwojciec/fileqa"
	"github.com/fwojciec/fileqa/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	extractor := pdf.NewExtractor()

	t.Run("rejects non-PDF bytes as corrupt", func(t *testing.T) {
		t.Parallel()

		_, err := extractor.Extract("a.pdf", []byte("this is not a pdf"))

		require.Error(t, err)
		assert.Equal(t, fileqa.ECORRUPT, fileqa.ErrorCode(err))
		assert.Contains(t, fileqa.ErrorMessage(err), "a.pdf")
	})

	t.Run("rejects empty bytes as corrupt", func(t *testing.T) {
		t.Parallel()

		_, err := extractor.Extract("a.pdf", nil)

		require.Error(t, err)
		assert.Equal(t, fileqa.ECORRUPT, fileqa.ErrorCode(err))
	})

	t.Run("rejects a truncated PDF header", func(t *testing.T) {
		t.Parallel()

		_, err := extractor.Extract("a.pdf", []byte("%PDF-1.7\n"))

		require.Error(t, err)
		assert.Equal(t, fileqa.ECORRUPT, fileqa.ErrorCode(err))
	})
}
