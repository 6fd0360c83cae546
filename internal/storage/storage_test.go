package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/pocketcube"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateUp())
	return db
}

func TestMigrateUpIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.MigrateUp())

	v, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	id, err := repo.Create("R U R' U'", "3150426 0011010", "")
	require.NoError(t, err)

	s, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.False(t, s.Ended())
	require.NotNil(t, s.ScrambleText)
	assert.Equal(t, "R U R' U'", *s.ScrambleText)
	assert.Nil(t, s.Notes)

	require.NoError(t, repo.End(id, "0123456 0000000"))
	s, err = repo.Get(id)
	require.NoError(t, err)
	assert.True(t, s.Ended())
	require.NotNil(t, s.EndState)
	assert.Equal(t, "0123456 0000000", *s.EndState)
	require.NotNil(t, s.DurationMs)
	assert.GreaterOrEqual(t, *s.DurationMs, int64(0))

	missing, err := repo.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSessionListAndLast(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	first, err := repo.Create("", "0123456 0000000", "a")
	require.NoError(t, err)
	second, err := repo.Create("", "0123456 0000000", "b")
	require.NoError(t, err)

	last, err := repo.GetLast()
	require.NoError(t, err)
	assert.Equal(t, second, last.SessionID)

	list, err := repo.List(10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0].SessionID)
	assert.Equal(t, first, list[1].SessionID)
}

func TestMovesCascadeOnDelete(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create("", "0123456 0000000", "")
	require.NoError(t, err)

	_, err = moves.Create(id, 0, 10, pocketcube.R, "0152463 0012021")
	require.NoError(t, err)
	require.NoError(t, moves.CreateBatch(id, []MoveRecord{
		{MoveIndex: 1, TsMs: 20, Notation: "U", StateText: "1502463 0120021"},
		{MoveIndex: 2, TsMs: 30, Notation: "U'", StateText: "0152463 0012021"},
	}))

	n, err := moves.Count(id)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	records, err := moves.GetBySession(id)
	require.NoError(t, err)
	parsed, err := ToMoves(records)
	require.NoError(t, err)
	assert.Equal(t, "R U U'", pocketcube.FormatMoves(parsed))

	require.NoError(t, sessions.Delete(id))
	n, err = moves.Count(id)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCreateBatchRollsBack(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create("", "0123456 0000000", "")
	require.NoError(t, err)

	err = moves.CreateBatch(id, []MoveRecord{
		{MoveIndex: 0, Notation: "R", StateText: "x"},
		{MoveIndex: 0, Notation: "U", StateText: "y"},
	})
	assert.Error(t, err)

	n, err := moves.Count(id)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestToMovesRejectsBadNotation(t *testing.T) {
	_, err := ToMoves([]MoveRecord{{Notation: "Q"}})
	assert.ErrorIs(t, err, pocketcube.ErrUnknownMove)
}

func TestGetRejectsCorruptTimestamp(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	_, err := db.Exec(`INSERT INTO sessions (session_id, started_at, start_state) VALUES (?, ?, ?)`,
		"bad", "yesterday", "0123456 0000000")
	require.NoError(t, err)

	_, err = repo.Get("bad")
	assert.ErrorContains(t, err, "started_at")

	_, err = repo.List(10)
	assert.Error(t, err)
}
