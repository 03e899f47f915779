// Package pdf implements text extraction from PDF files.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fwojciec/fileqa"
	"github.com/ledongthuc/pdf"
)

var _ fileqa.Extractor = (*Extractor)(nil)

// Extractor extracts plain text from PDF bytes.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the plain text of all pages, in page order. Pages that
// cannot be read (e.g. image-only pages) are skipped. A PDF yielding no text
// at all is reported as EEMPTY.
func (e *Extractor) Extract(name string, data []byte) (text string, err error) {
	// The underlying reader panics on some malformed files; treat a panic
	// the same as a parse failure.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fileqa.Errorf(fileqa.ECORRUPT, "%s: malformed PDF: %v", name, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", classify(name, err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		content = strings.TrimSpace(content)
		if content == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "Page %d\n%s", i, content)
	}

	if sb.Len() == 0 {
		return "", fileqa.Errorf(fileqa.EEMPTY, "%s: no extractable text", name)
	}

	return sb.String(), nil
}

// classify maps reader errors onto application error codes.
func classify(name string, err error) error {
	if strings.Contains(strings.ToLower(err.Error()), "encrypt") {
		return fileqa.Errorf(fileqa.EENCRYPTED, "%s: file is encrypted", name)
	}
	return fileqa.Errorf(fileqa.ECORRUPT, "%s: malformed PDF: %v", name, err)
}
