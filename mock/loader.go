package mock

import (
	"context"

	"github.com/fwojciec/fileqa"
)

var _ fileqa.Loader = (*Loader)(nil)

// Loader is a mock implementation of fileqa.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, paths []string) ([]*fileqa.LoadedFile, error)
}

func (l *Loader) Load(ctx context.Context, paths []string) ([]*fileqa.LoadedFile, error) {
	return l.LoadFn(ctx, paths)
}
