package mock

import (
	"context"

	"github.com/fwojciec/fileqa"
)

var _ fileqa.SessionService = (*SessionService)(nil)

// SessionService is a mock implementation of fileqa.SessionService.
type SessionService struct {
	CreateSessionFn     func(ctx context.Context, session *fileqa.Session) error
	FindSessionByIDFn   func(ctx context.Context, id string) (*fileqa.Session, error)
	UpdateSessionModeFn func(ctx context.Context, id string, mode fileqa.QueryMode) (*fileqa.Session, error)
	ReplaceFilesFn      func(ctx context.Context, sessionID string, files []*fileqa.LoadedFile) error
	FindFilesFn         func(ctx context.Context, sessionID string) ([]*fileqa.LoadedFile, error)
	AppendTurnFn        func(ctx context.Context, turn *fileqa.ConversationTurn) error
	FindTurnsFn         func(ctx context.Context, sessionID string) ([]*fileqa.ConversationTurn, error)
}

func (s *SessionService) CreateSession(ctx context.Context, session *fileqa.Session) error {
	return s.CreateSessionFn(ctx, session)
}

func (s *SessionService) FindSessionByID(ctx context.Context, id string) (*fileqa.Session, error) {
	return s.FindSessionByIDFn(ctx, id)
}

func (s *SessionService) UpdateSessionMode(ctx context.Context, id string, mode fileqa.QueryMode) (*fileqa.Session, error) {
	return s.UpdateSessionModeFn(ctx, id, mode)
}

func (s *SessionService) ReplaceFiles(ctx context.Context, sessionID string, files []*fileqa.LoadedFile) error {
	return s.ReplaceFilesFn(ctx, sessionID, files)
}

func (s *SessionService) FindFiles(ctx context.Context, sessionID string) ([]*fileqa.LoadedFile, error) {
	return s.FindFilesFn(ctx, sessionID)
}

func (s *SessionService) AppendTurn(ctx context.Context, turn *fileqa.ConversationTurn) error {
	return s.AppendTurnFn(ctx, turn)
}

func (s *SessionService) FindTurns(ctx context.Context, sessionID string) ([]*fileqa.ConversationTurn, error) {
	return s.FindTurnsFn(ctx, sessionID)
}
