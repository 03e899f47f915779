package fileqa

import (
	"context"
	"time"
)

// QueryMode controls how loaded files are presented to the language model.
type QueryMode string

// QueryMode constants.
const (
	// ModeCombined merges all readable files into one context for a single
	// model call.
	ModeCombined QueryMode = "combined"

	// ModePerFile issues one independent model call per readable file and
	// aggregates the results.
	ModePerFile QueryMode = "per-file"
)

// Validate returns an error if the mode is not a known query mode.
func (m QueryMode) Validate() error {
	switch m {
	case ModeCombined, ModePerFile:
		return nil
	}
	return Errorf(EINVALID, "unknown query mode %q", string(m))
}

// Session represents one interactive question-answering session. It holds
// the current query mode; the session's files and conversation turns are
// managed through SessionService. Sessions live only for the duration of
// the process.
type Session struct {
	ID        string    `json:"id"`
	Mode      QueryMode `json:"mode"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the session contains invalid fields.
func (s *Session) Validate() error {
	return s.Mode.Validate()
}

// ConversationTurn represents one question and its fully composed reply.
// Turns are append-only and never mutated after creation.
type ConversationTurn struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Position  int       `json:"position"`
	Question  string    `json:"question"`
	Reply     string    `json:"reply"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the turn contains invalid fields.
func (t *ConversationTurn) Validate() error {
	if t.SessionID == "" {
		return Errorf(EINVALID, "turn session ID required")
	}
	if t.Question == "" {
		return Errorf(EINVALID, "turn question required")
	}
	return nil
}

// SessionService manages session state: the query mode, the currently loaded
// files, and the ordered conversation history.
type SessionService interface {
	// CreateSession creates a new session with the given initial mode.
	CreateSession(ctx context.Context, session *Session) error

	// FindSessionByID retrieves a session by ID.
	// Returns ENOTFOUND if the session does not exist.
	FindSessionByID(ctx context.Context, id string) (*Session, error)

	// UpdateSessionMode changes the session's query mode. The change affects
	// only questions asked afterwards.
	// Returns ENOTFOUND if the session does not exist.
	UpdateSessionMode(ctx context.Context, id string, mode QueryMode) (*Session, error)

	// ReplaceFiles replaces the session's file set wholesale. Previously
	// loaded files are removed; there is no incremental update.
	ReplaceFiles(ctx context.Context, sessionID string, files []*LoadedFile) error

	// FindFiles retrieves the session's files in upload order.
	FindFiles(ctx context.Context, sessionID string) ([]*LoadedFile, error)

	// AppendTurn appends a completed turn to the session's history.
	// History is append-only; positions are assigned densely in order.
	AppendTurn(ctx context.Context, turn *ConversationTurn) error

	// FindTurns retrieves the session's conversation history in order.
	FindTurns(ctx context.Context, sessionID string) ([]*ConversationTurn, error)
}
