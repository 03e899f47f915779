package fs

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/fileqa"
)

var _ fileqa.Extractor = (*TextExtractor)(nil)

// TextExtractor extracts content from plain-text files.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Extract validates that the bytes are text and returns them trimmed.
// Binary content (NUL bytes or invalid UTF-8) is reported as EUNSUPPORTED,
// blank files as EEMPTY.
func (e *TextExtractor) Extract(name string, data []byte) (string, error) {
	if bytes.ContainsRune(data, 0) {
		return "", fileqa.Errorf(fileqa.EUNSUPPORTED, "%s: binary content", name)
	}
	if !utf8.Valid(data) {
		return "", fileqa.Errorf(fileqa.EUNSUPPORTED, "%s: not valid UTF-8 text", name)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fileqa.Errorf(fileqa.EEMPTY, "%s: file is empty", name)
	}

	return text, nil
}
