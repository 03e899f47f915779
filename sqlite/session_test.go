package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/fileqa"
	"github.com/fwojciec/fileqa/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCreateSession(t *testing.T, s *sqlite.SessionService, mode fileqa.QueryMode) *fileqa.Session {
	t.Helper()
	session := &fileqa.Session{Mode: mode}
	require.NoError(t, s.CreateSession(context.Background(), session))
	return session
}

func TestSessionService_CreateSession(t *testing.T) {
	t.Parallel()

	t.Run("creates session with ID and timestamps", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSessionService(MustOpenDB(t))
		session := mustCreateSession(t, s, fileqa.ModeCombined)

		assert.NotEmpty(t, session.ID)
		assert.False(t, session.CreatedAt.IsZero())

		found, err := s.FindSessionByID(context.Background(), session.ID)
		require.NoError(t, err)
		assert.Equal(t, fileqa.ModeCombined, found.Mode)
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSessionService(MustOpenDB(t))
		err := s.CreateSession(context.Background(), &fileqa.Session{Mode: "bogus"})

		require.Error(t, err)
		assert.Equal(t, fileqa.EINVALID, fileqa.ErrorCode(err))
	})
}

func TestSessionService_FindSessionByID_NotFound(t *testing.T) {
	t.Parallel()

	s := sqlite.NewSessionService(MustOpenDB(t))

	_, err := s.FindSessionByID(context.Background(), "missing")

	require.Error(t, err)
	assert.Equal(t, fileqa.ENOTFOUND, fileqa.ErrorCode(err))
}

func TestSessionService_UpdateSessionMode(t *testing.T) {
	t.Parallel()

	t.Run("changes the mode", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSessionService(MustOpenDB(t))
		session := mustCreateSession(t, s, fileqa.ModeCombined)

		updated, err := s.UpdateSessionMode(context.Background(), session.ID, fileqa.ModePerFile)

		require.NoError(t, err)
		assert.Equal(t, fileqa.ModePerFile, updated.Mode)

		found, err := s.FindSessionByID(context.Background(), session.ID)
		require.NoError(t, err)
		assert.Equal(t, fileqa.ModePerFile, found.Mode)
	})

	t.Run("does not alter recorded turns", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := sqlite.NewSessionService(MustOpenDB(t))
		session := mustCreateSession(t, s, fileqa.ModeCombined)

		require.NoError(t, s.AppendTurn(ctx, &fileqa.ConversationTurn{
			SessionID: session.ID, Question: "first?", Reply: "one",
		}))

		_, err := s.UpdateSessionMode(ctx, session.ID, fileqa.ModePerFile)
		require.NoError(t, err)

		require.NoError(t, s.AppendTurn(ctx, &fileqa.ConversationTurn{
			SessionID: session.ID, Question: "second?", Reply: "two",
		}))

		turns, err := s.FindTurns(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, turns, 2)
		assert.Equal(t, "first?", turns[0].Question)
		assert.Equal(t, "one", turns[0].Reply)
		assert.Equal(t, "second?", turns[1].Question)
	})

	t.Run("returns ENOTFOUND for missing session", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSessionService(MustOpenDB(t))

		_, err := s.UpdateSessionMode(context.Background(), "missing", fileqa.ModePerFile)

		require.Error(t, err)
		assert.Equal(t, fileqa.ENOTFOUND, fileqa.ErrorCode(err))
	})
}

func TestSessionService_ReplaceFiles(t *testing.T) {
	t.Parallel()

	t.Run("stores files in upload order", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := sqlite.NewSessionService(MustOpenDB(t))
		session := mustCreateSession(t, s, fileqa.ModeCombined)

		err := s.ReplaceFiles(ctx, session.ID, []*fileqa.LoadedFile{
			{Name: "b.txt", Text: "beta"},
			{Name: "a.txt", Text: "alpha"},
			{Name: "c.pdf", LoadError: "file is encrypted"},
		})
		require.NoError(t, err)

		files, err := s.FindFiles(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, files, 3)
		assert.Equal(t, "b.txt", files[0].Name)
		assert.Equal(t, "a.txt", files[1].Name)
		assert.Equal(t, "c.pdf", files[2].Name)
		assert.False(t, files[2].Readable())
	})

	t.Run("replaces the previous set wholesale", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := sqlite.NewSessionService(MustOpenDB(t))
		session := mustCreateSession(t, s, fileqa.ModeCombined)

		require.NoError(t, s.ReplaceFiles(ctx, session.ID, []*fileqa.LoadedFile{
			{Name: "old.txt", Text: "old content"},
		}))
		require.NoError(t, s.ReplaceFiles(ctx, session.ID, []*fileqa.LoadedFile{
			{Name: "new.txt", Text: "new content"},
		}))

		files, err := s.FindFiles(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "new.txt", files[0].Name)
	})

	t.Run("rejects invalid files", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := sqlite.NewSessionService(MustOpenDB(t))
		session := mustCreateSession(t, s, fileqa.ModeCombined)

		err := s.ReplaceFiles(ctx, session.ID, []*fileqa.LoadedFile{{Name: "a.txt"}})

		require.Error(t, err)
		assert.Equal(t, fileqa.EINVALID, fileqa.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing session", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSessionService(MustOpenDB(t))

		err := s.ReplaceFiles(context.Background(), "missing", nil)

		require.Error(t, err)
		assert.Equal(t, fileqa.ENOTFOUND, fileqa.ErrorCode(err))
	})
}

func TestSessionService_AppendTurn(t *testing.T) {
	t.Parallel()

	t.Run("assigns dense positions in append order", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		s := sqlite.NewSessionService(MustOpenDB(t))
		session := mustCreateSession(t, s, fileqa.ModeCombined)

		for _, q := range []string{"one?", "two?", "three?"} {
			require.NoError(t, s.AppendTurn(ctx, &fileqa.ConversationTurn{
				SessionID: session.ID, Question: q, Reply: "answer to " + q,
			}))
		}

		turns, err := s.FindTurns(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, turns, 3)
		for i, turn := range turns {
			assert.Equal(t, i, turn.Position)
		}
		assert.Equal(t, "one?", turns[0].Question)
		assert.Equal(t, "three?", turns[2].Question)
	})

	t.Run("returns ENOTFOUND for missing session", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSessionService(MustOpenDB(t))

		err := s.AppendTurn(context.Background(), &fileqa.ConversationTurn{
			SessionID: "missing", Question: "q?", Reply: "a",
		})

		require.Error(t, err)
		assert.Equal(t, fileqa.ENOTFOUND, fileqa.ErrorCode(err))
	})

	t.Run("rejects invalid turn", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSessionService(MustOpenDB(t))

		err := s.AppendTurn(context.Background(), &fileqa.ConversationTurn{Question: "q?"})

		require.Error(t, err)
		assert.Equal(t, fileqa.EINVALID, fileqa.ErrorCode(err))
	})
}

func TestSessionService_FindTurns_EmptyHistory(t *testing.T) {
	t.Parallel()

	s := sqlite.NewSessionService(MustOpenDB(t))
	session := mustCreateSession(t, s, fileqa.ModePerFile)

	turns, err := s.FindTurns(context.Background(), session.ID)

	require.NoError(t, err)
	assert.Empty(t, turns)
}
