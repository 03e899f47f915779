package mock

import "github.com/fwojciec/fileqa"

var _ fileqa.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of fileqa.Extractor.
type Extractor struct {
	ExtractFn func(name string, data []byte) (string, error)
}

func (e *Extractor) Extract(name string, data []byte) (string, error) {
	return e.ExtractFn(name, data)
}
