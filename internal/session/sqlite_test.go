package session_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divijg19/moveit/internal/catalog"
	"github.com/divijg19/moveit/internal/core"
	"github.com/divijg19/moveit/internal/session"
	"github.com/divijg19/moveit/internal/storage"
)

func openSQLiteSession(t *testing.T, path string) *session.Session {
	t.Helper()

	db, err := storage.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	st, err := storage.New(db)
	require.NoError(t, err)

	challenges, err := catalog.Default()
	require.NoError(t, err)

	s, err := session.Open(session.Deps{
		Catalog:     challenges,
		Persistence: st,
		Options:     []core.Option{core.WithPicker(func(int) int { return 0 })},
	})
	require.NoError(t, err)
	return s
}

func TestProgressSurvivesSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moveit.db")

	first := openSQLiteSession(t, path)
	first.StartNewChallenge()
	first.CompleteChallenge()
	first.StartNewChallenge()
	first.CompleteChallenge()
	want := first.Snapshot()
	require.Equal(t, 2, want.ChallengesCompleted)

	second := openSQLiteSession(t, path)
	got := second.Snapshot()

	assert.Equal(t, want.Level, got.Level)
	assert.Equal(t, want.CurrentExperience, got.CurrentExperience)
	assert.Equal(t, 2, got.ChallengesCompleted)
	assert.False(t, got.Active.Present())
	assert.False(t, got.LevelUpPending)
}
