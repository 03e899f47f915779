package mock

import (
	"context"

	"github.com/fwojciec/fileqa"
)

var _ fileqa.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of fileqa.Answerer.
type Answerer struct {
	AnswerFn func(ctx context.Context, question, content string) (string, error)
}

func (a *Answerer) Answer(ctx context.Context, question, content string) (string, error) {
	return a.AnswerFn(ctx, question, content)
}
