// Package slog provides logging decorators for fileqa interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fileqa"
)

// Ensure Answerer implements fileqa.Answerer.
var _ fileqa.Answerer = (*Answerer)(nil)

// Answerer wraps a fileqa.Answerer with call logging.
type Answerer struct {
	next   fileqa.Answerer
	logger *slog.Logger
}

// NewAnswerer creates a new Answerer.
func NewAnswerer(next fileqa.Answerer, logger *slog.Logger) *Answerer {
	return &Answerer{next: next, logger: logger}
}

// Answer delegates to the wrapped answerer and logs the outcome.
func (a *Answerer) Answer(ctx context.Context, question, content string) (string, error) {
	begin := time.Now()
	answer, err := a.next.Answer(ctx, question, content)
	if err != nil {
		a.logger.Error("answer call failed",
			"content_bytes", len(content),
			"duration", time.Since(begin),
			"code", fileqa.ErrorCode(err),
			"error", fileqa.ErrorMessage(err),
		)
		return answer, err
	}
	a.logger.Info("answer call",
		"content_bytes", len(content),
		"answer_bytes", len(answer),
		"duration", time.Since(begin),
	)
	return answer, nil
}
