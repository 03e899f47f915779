package fileqa

import "context"

// Answerer answers natural language questions about file content.
type Answerer interface {
	// Answer answers a question using the supplied file content as context.
	// Failures are classified as EUNAUTHORIZED, ERATELIMITED, EUNAVAILABLE,
	// EREFUSED, or ETIMEOUT.
	Answer(ctx context.Context, question string, content string) (string, error)
}
