// Package fs loads local files into session state, routing each file to a
// content extractor by extension.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/fileqa"
)

// Ensure Loader implements fileqa.Loader at compile time.
var _ fileqa.Loader = (*Loader)(nil)

// Loader reads files from disk and produces loaded files. Extractors are
// registered per lowercase extension (including the dot); files with no
// registered extractor are recorded as unsupported rather than failing the
// load.
type Loader struct {
	extractors map[string]fileqa.Extractor
}

// NewLoader creates a new Loader with no extractors registered.
func NewLoader() *Loader {
	return &Loader{extractors: make(map[string]fileqa.Extractor)}
}

// Register registers an extractor for a file extension, e.g. ".pdf".
func (l *Loader) Register(ext string, extractor fileqa.Extractor) {
	l.extractors[strings.ToLower(ext)] = extractor
}

// Extensions returns the registered extensions in sorted order.
func (l *Loader) Extensions() []string {
	exts := make([]string, 0, len(l.extractors))
	for ext := range l.extractors {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// Load reads and extracts each path in order. Repeated paths are loaded
// once. Per-file failures (missing file, unsupported format, extraction
// errors) are recorded on the LoadedFile; the returned error is reserved
// for cancellation.
func (l *Loader) Load(ctx context.Context, paths []string) ([]*fileqa.LoadedFile, error) {
	seen := make(map[string]bool, len(paths))
	files := make([]*fileqa.LoadedFile, 0, len(paths))

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := filepath.Clean(path)
		if seen[name] {
			continue
		}
		seen[name] = true

		files = append(files, l.load(name))
	}

	for i, f := range files {
		f.Position = i
	}

	return files, nil
}

// load reads and extracts a single file. Failures land on LoadError.
func (l *Loader) load(name string) *fileqa.LoadedFile {
	file := &fileqa.LoadedFile{
		Name:     name,
		LoadedAt: time.Now().UTC(),
	}

	data, err := os.ReadFile(name)
	if err != nil {
		if os.IsNotExist(err) {
			file.LoadError = fileqa.ErrorMessage(fileqa.Errorf(fileqa.ENOTFOUND, "file not found"))
		} else {
			file.LoadError = err.Error()
		}
		return file
	}

	ext := strings.ToLower(filepath.Ext(name))
	extractor, ok := l.extractors[ext]
	if !ok {
		file.LoadError = fileqa.ErrorMessage(fileqa.Errorf(fileqa.EUNSUPPORTED, "unsupported file type %q", ext))
		return file
	}

	text, err := extractor.Extract(name, data)
	if err != nil {
		file.LoadError = fileqa.ErrorMessage(err)
		return file
	}

	file.Text = text
	file.ContentHash = strconv.FormatUint(xxhash.Sum64String(text), 16)
	return file
}
