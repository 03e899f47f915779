package fileqa

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"
)

// NoContentReply is the fixed reply produced when no loaded file has usable
// text. No model call is made in that case.
const NoContentReply = "No readable file content is available. Load at least one readable file and ask again."

const defaultConcurrency = 4

// Dispatcher produces the assistant reply for a question given the current
// query mode and loaded files. It holds no state of its own: the reply is a
// function of its inputs and the Answerer's results.
type Dispatcher struct {
	Answerer Answerer

	// Tokens and TokenBudget, when both set, enable a warning when a combined
	// context exceeds the budget. The call still proceeds; the provider's own
	// limit surfaces as a normal answer failure.
	Tokens      TokenCounter
	TokenBudget int

	// Concurrency bounds parallel per-file answer calls. Defaults to 4.
	Concurrency int

	Logger *slog.Logger
}

// fileAnswer holds the outcome of one per-file answer call.
type fileAnswer struct {
	name   string
	answer string
	err    error
}

// Handle answers a question in the given mode over the given files and
// returns the reply to record. Answer failures are composed into the reply
// rather than returned; the error return is reserved for invalid input and
// cancellation, in which case nothing may be appended to history.
func (d *Dispatcher) Handle(ctx context.Context, question string, mode QueryMode, files []*LoadedFile) (string, error) {
	if question == "" {
		return "", Errorf(EINVALID, "question required")
	}
	if err := mode.Validate(); err != nil {
		return "", err
	}

	var readable, unreadable []*LoadedFile
	for _, f := range files {
		if f.Readable() {
			readable = append(readable, f)
		} else {
			unreadable = append(unreadable, f)
		}
	}

	// Short-circuit before any model call when nothing is readable.
	if len(readable) == 0 {
		return withUnreadableNote(NoContentReply, unreadable), nil
	}

	var body string
	switch mode {
	case ModeCombined:
		body = d.handleCombined(ctx, question, readable)
	case ModePerFile:
		body = d.handlePerFile(ctx, question, readable)
	}

	// A cancelled question produces no reply at all, so the caller never
	// appends partial stale output to history.
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return withUnreadableNote(body, unreadable), nil
}

// handleCombined issues exactly one answer call over the concatenated
// content of all readable files, in upload order.
func (d *Dispatcher) handleCombined(ctx context.Context, question string, files []*LoadedFile) string {
	content := BuildContent(files)
	d.warnOverBudget(ctx, content)

	answer, err := d.Answerer.Answer(ctx, question, content)
	if err != nil {
		return "Could not answer: " + ErrorMessage(err)
	}
	return answer
}

// handlePerFile issues one answer call per readable file. Calls run
// concurrently under a bounded pool; results are composed in upload order
// regardless of completion order. One file's failure never suppresses
// answers for the others.
func (d *Dispatcher) handlePerFile(ctx context.Context, question string, files []*LoadedFile) string {
	concurrency := d.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	// Each worker writes to its own slot, so output order is fixed by upload
	// position rather than completion order.
	results := make([]fileAnswer, len(files))

	g := &errgroup.Group{}
	g.SetLimit(concurrency)

	for i, f := range files {
		g.Go(func() error {
			answer, err := d.Answerer.Answer(ctx, question, BuildContent([]*LoadedFile{f}))
			results[i] = fileAnswer{name: f.Name, answer: answer, err: err}
			return nil
		})
	}
	_ = g.Wait()

	parts := make([]string, 0, len(results))
	for _, r := range results {
		if r.err != nil {
			parts = append(parts, fmt.Sprintf("## %s\n(no answer: %s)", r.name, ErrorMessage(r.err)))
			continue
		}
		parts = append(parts, fmt.Sprintf("## %s\n%s", r.name, r.answer))
	}
	return strings.Join(parts, "\n\n")
}

// warnOverBudget logs a warning when the combined context exceeds the
// configured token budget. No truncation is performed.
func (d *Dispatcher) warnOverBudget(ctx context.Context, content string) {
	if d.Tokens == nil || d.TokenBudget <= 0 || d.Logger == nil {
		return
	}
	count, err := d.Tokens.CountTokens(ctx, content)
	if err != nil {
		return
	}
	if count > d.TokenBudget {
		d.Logger.Warn("combined context exceeds token budget",
			"tokens", count,
			"budget", d.TokenBudget,
		)
	}
}

// withUnreadableNote appends a single note listing files that could not be
// read, so the user understands why they contributed nothing.
func withUnreadableNote(body string, unreadable []*LoadedFile) string {
	if len(unreadable) == 0 {
		return body
	}
	var sb strings.Builder
	sb.WriteString(body)
	sb.WriteString("\n")
	for _, f := range unreadable {
		fmt.Fprintf(&sb, "\nCould not read %s: %s", f.Name, f.LoadError)
	}
	return sb.String()
}
