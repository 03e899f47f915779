package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/fileqa"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ fileqa.SessionService = (*SessionService)(nil)

// SessionService implements fileqa.SessionService using SQLite.
type SessionService struct {
	db *DB
}

// NewSessionService creates a new SessionService.
func NewSessionService(db *DB) *SessionService {
	return &SessionService{db: db}
}

// CreateSession creates a new session.
func (s *SessionService) CreateSession(ctx context.Context, session *fileqa.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	session.ID = uuid.New().String()
	now := time.Now().UTC()
	session.CreatedAt = now
	session.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, mode, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`, session.ID, string(session.Mode),
		session.CreatedAt.Format(time.RFC3339), session.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindSessionByID retrieves a session by ID.
func (s *SessionService) FindSessionByID(ctx context.Context, id string) (*fileqa.Session, error) {
	var session fileqa.Session
	var mode, createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, mode, created_at, updated_at
		FROM sessions
		WHERE id = ?
	`, id).Scan(&session.ID, &mode, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, fileqa.Errorf(fileqa.ENOTFOUND, "session not found")
	}
	if err != nil {
		return nil, err
	}

	session.Mode = fileqa.QueryMode(mode)
	if session.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if session.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &session, nil
}

// UpdateSessionMode changes the session's query mode. Existing turns are
// untouched; only questions asked afterwards are affected.
func (s *SessionService) UpdateSessionMode(ctx context.Context, id string, mode fileqa.QueryMode) (*fileqa.Session, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	session, err := s.FindSessionByID(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Mode = mode
	session.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE sessions
		SET mode = ?, updated_at = ?
		WHERE id = ?
	`, string(session.Mode), session.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return session, nil
}

// ReplaceFiles replaces the session's file set wholesale.
func (s *SessionService) ReplaceFiles(ctx context.Context, sessionID string, files []*fileqa.LoadedFile) error {
	if _, err := s.FindSessionByID(ctx, sessionID); err != nil {
		return err
	}
	for _, f := range files {
		if err := f.Validate(); err != nil {
			return err
		}
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM files WHERE session_id = ?", sessionID); err != nil {
		return err
	}

	for i, f := range files {
		f.ID = uuid.New().String()
		f.SessionID = sessionID
		f.Position = i
		if f.LoadedAt.IsZero() {
			f.LoadedAt = time.Now().UTC()
		}

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO files (id, session_id, name, text, content_hash, load_error, position, loaded_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, f.ID, f.SessionID, f.Name, f.Text, f.ContentHash, f.LoadError, f.Position,
			f.LoadedAt.Format(time.RFC3339))
		if err != nil {
			return err
		}
	}

	return nil
}

// FindFiles retrieves the session's files in upload order.
func (s *SessionService) FindFiles(ctx context.Context, sessionID string) ([]*fileqa.LoadedFile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, name, text, content_hash, load_error, position, loaded_at
		FROM files
		WHERE session_id = ?
		ORDER BY position ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []*fileqa.LoadedFile
	for rows.Next() {
		var f fileqa.LoadedFile
		var loadedAt string

		if err := rows.Scan(&f.ID, &f.SessionID, &f.Name, &f.Text, &f.ContentHash,
			&f.LoadError, &f.Position, &loadedAt); err != nil {
			return nil, err
		}

		if f.LoadedAt, err = parseRFC3339(loadedAt, "loaded_at"); err != nil {
			return nil, err
		}

		files = append(files, &f)
	}

	return files, rows.Err()
}

// AppendTurn appends a completed turn to the session's history. Positions
// are assigned densely in insertion order; turns are never updated.
func (s *SessionService) AppendTurn(ctx context.Context, turn *fileqa.ConversationTurn) error {
	if err := turn.Validate(); err != nil {
		return err
	}
	if _, err := s.FindSessionByID(ctx, turn.SessionID); err != nil {
		return err
	}

	turn.ID = uuid.New().String()
	turn.CreatedAt = time.Now().UTC()

	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(position) + 1, 0) FROM turns WHERE session_id = ?
	`, turn.SessionID).Scan(&turn.Position)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO turns (id, session_id, position, question, reply, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, turn.ID, turn.SessionID, turn.Position, turn.Question, turn.Reply,
		turn.CreatedAt.Format(time.RFC3339))

	return err
}

// FindTurns retrieves the session's conversation history in order.
func (s *SessionService) FindTurns(ctx context.Context, sessionID string) ([]*fileqa.ConversationTurn, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, position, question, reply, created_at
		FROM turns
		WHERE session_id = ?
		ORDER BY position ASC
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []*fileqa.ConversationTurn
	for rows.Next() {
		var t fileqa.ConversationTurn
		var createdAt string

		if err := rows.Scan(&t.ID, &t.SessionID, &t.Position, &t.Question, &t.Reply, &createdAt); err != nil {
			return nil, err
		}

		if t.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		turns = append(turns, &t)
	}

	return turns, rows.Err()
}
