package fileqa

import (
	"context"
	"time"
)

// LoadedFile represents a file loaded into the current session with its
// extraction result. Exactly one of Text and LoadError is meaningful: a file
// either yielded text or failed to load. Files are replaced wholesale when
// the session's file set changes; extraction results are cached here so a
// mode switch never re-extracts.
type LoadedFile struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"sessionId"`
	Name        string    `json:"name"`
	Text        string    `json:"text"`
	ContentHash string    `json:"contentHash"`
	LoadError   string    `json:"loadError"`
	Position    int       `json:"position"`
	LoadedAt    time.Time `json:"loadedAt"`
}

// Readable reports whether the file yielded usable text.
func (f *LoadedFile) Readable() bool {
	return f.LoadError == ""
}

// Validate returns an error if the loaded file contains invalid fields.
func (f *LoadedFile) Validate() error {
	if f.Name == "" {
		return Errorf(EINVALID, "file name required")
	}
	if f.Text == "" && f.LoadError == "" {
		return Errorf(EINVALID, "file %q has neither text nor a load error", f.Name)
	}
	if f.Text != "" && f.LoadError != "" {
		return Errorf(EINVALID, "file %q has both text and a load error", f.Name)
	}
	return nil
}

// Extractor converts raw file bytes into plain text.
type Extractor interface {
	// Extract returns the plain text content of the file. Failures are
	// classified as EENCRYPTED, ECORRUPT, EUNSUPPORTED, or EEMPTY.
	Extract(name string, data []byte) (string, error)
}

// Loader reads files from disk and produces loaded files in the order given.
// Per-file extraction failures are recorded on the LoadedFile, never
// returned as errors.
type Loader interface {
	Load(ctx context.Context, paths []string) ([]*LoadedFile, error)
}
