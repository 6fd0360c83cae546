package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/pocketcube"
	"github.com/SeamusWaldron/pocketcube/internal/logging"
	"github.com/SeamusWaldron/pocketcube/internal/recorder"
	"github.com/SeamusWaldron/pocketcube/internal/render"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
)

// testEnv points config, state and database at a temp dir.
type testEnv struct {
	dir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger = logging.NewNop()
	return &testEnv{dir: t.TempDir()}
}

func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flag variables outlive a single Execute.
	dbPath, configPath, verbose = "", "", false
	applyFromState, applyFromStickers, showNet, showColor = "", "", false, false
	projectReference = "WGR"
	showLast, showJSON, listLimit = false, false, 20
	exportFormat, exportOutput = "txt", ""
	sessionNotes, sessionScramble, sessionRandom = "", "", 0
	playScramble, playScrambleLen = "", 11

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{
		"--config", filepath.Join(e.dir, "config.yaml"),
		"--db", filepath.Join(e.dir, "test.db"),
	}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestApplyCommand(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "apply", "R")
	require.NoError(t, err)
	assert.Equal(t, "0152463 0012021\n", out)

	out, err = env.run(t, "apply", "--state", "0152463 0012021", "R'")
	require.NoError(t, err)
	assert.Equal(t, "0123456 0000000\n", out)

	out, err = env.run(t, "apply", "U", "R", "U'", "R'", "U", "R", "U'", "R'")
	require.NoError(t, err)
	assert.Equal(t, "0123456 2012010\n", out)
}

func TestApplyPartialFailure(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "apply", "R", "X")
	var moveErr *pocketcube.MoveError
	require.ErrorAs(t, err, &moveErr)
	assert.Equal(t, "X", moveErr.Token)
	assert.True(t, strings.HasPrefix(out, "0152463 0012021\n"))
}

func TestApplyNet(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "apply", "--net")
	require.NoError(t, err)
	assert.Equal(t, "0123456 0000000\n"+pocketcube.SolvedStickers().String(), out)
}

func TestProjectAndStickers(t *testing.T) {
	env := newTestEnv(t)
	c, err := pocketcube.NewCubeFromAlg("R")
	require.NoError(t, err)

	out, err := env.run(t, "project", "0152463", "0012021")
	require.NoError(t, err)
	lines := strings.SplitN(out, "\n", 2)
	assert.Equal(t, c.Stickers().Compact(), lines[0])

	out, err = env.run(t, "stickers", c.Stickers().Compact())
	require.NoError(t, err)
	assert.Equal(t, "0152463 0012021\nreference: WGR\n", out)

	_, err = env.run(t, "stickers", "WWWW GGGG")
	assert.ErrorIs(t, err, pocketcube.ErrInvalidStickers)

	_, err = env.run(t, "project", "--reference", "WYR", "0123456 0000000")
	assert.ErrorIs(t, err, pocketcube.ErrInvalidStickers)
}

func TestSessionCommands(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "session", "start", "--scramble", "R U")
	require.NoError(t, err)
	assert.Contains(t, out, "Started session:")

	out, err = env.run(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Active session:")

	_, err = env.run(t, "session", "start")
	assert.Error(t, err, "second start should fail while one is active")

	out, err = env.run(t, "session", "move", "U'")
	require.NoError(t, err)
	assert.Contains(t, out, "0152463 0012021")

	out, err = env.run(t, "session", "move", "R'")
	require.NoError(t, err)
	assert.Contains(t, out, "Solved in 2 moves")

	out, err = env.run(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "No active session")

	out, err = env.run(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "R U")

	out, err = env.run(t, "show", "--last")
	require.NoError(t, err)
	assert.Contains(t, out, "Solved:        true")

	out, err = env.run(t, "export", "--last")
	require.NoError(t, err)
	assert.Equal(t, "U' R'\n", out)

	out, err = env.run(t, "show", "--last", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"total_moves": 2`)
}

func TestSessionEndUnsolved(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "session", "start", "--random", "5")
	require.NoError(t, err)
	out, err := env.run(t, "session", "end")
	require.NoError(t, err)
	assert.Contains(t, out, "Moves: 0")

	_, err = env.run(t, "session", "end")
	assert.Error(t, err)
}

func newTestDB(t *testing.T) (*storage.DB, *recorder.StateFile) {
	t.Helper()
	dir := t.TempDir()
	db, err := storage.Open(filepath.Join(dir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateUp())

	sf, err := recorder.NewStateFile(filepath.Join(dir, "state.json"))
	require.NoError(t, err)
	return db, sf
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlayModelSolves(t *testing.T) {
	newTestEnv(t)
	db, sf := newTestDB(t)

	m := newPlayModel(db, sf, render.New(render.DefaultPalette()), "R U", 0)
	require.NoError(t, m.start())
	assert.Equal(t, recorder.StateRecording, m.session.State())

	m.Update(key("x"))
	assert.Equal(t, 0, m.session.MoveCount(), "unmapped keys do nothing")

	m.Update(key("U"))
	m.Update(key("R"))
	require.NoError(t, m.err)
	assert.Equal(t, recorder.StateEnded, m.session.State())
	assert.Contains(t, m.View(), "SOLVED in 2 moves")

	m.Update(key("n"))
	require.NoError(t, m.err)
	assert.Equal(t, recorder.StateRecording, m.session.State())
	assert.NotEqual(t, "", m.lastID)

	_, cmd := m.Update(key("q"))
	assert.NotNil(t, cmd)
	assert.Equal(t, recorder.StateEnded, m.session.State())
}

func TestReplayModelSteps(t *testing.T) {
	newTestEnv(t)
	db, sf := newTestDB(t)

	session := recorder.NewSession(db, sf, logger)
	id, err := session.Start("F R", "")
	require.NoError(t, err)
	require.NoError(t, session.ApplyNotation("R' F'"))

	stored, err := storage.NewSessionRepository(db).Get(id)
	require.NoError(t, err)
	records, err := storage.NewMoveRepository(db).GetBySession(id)
	require.NoError(t, err)

	m, err := newReplayModel(stored, records, render.New(render.DefaultPalette()), 1, true)
	require.NoError(t, err)

	m.Update(key("n"))
	assert.Equal(t, records[0].StateText, m.cube.String())
	m.Update(key("n"))
	require.NoError(t, m.err)
	assert.True(t, m.cube.IsSolved())

	m.Update(key("n"))
	assert.Equal(t, 2, m.index, "advancing past the end is a no-op")

	m.Update(key("r"))
	assert.Equal(t, stored.StartState, m.cube.String())
	assert.Contains(t, m.View(), "Move 0/2")
}

func TestPlayRejectsBadLength(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "play", "--length", "-1")
	assert.ErrorContains(t, err, "--length must be positive")
}

func TestReplayModelStopsOnBadRecord(t *testing.T) {
	newTestEnv(t)

	stored := &storage.Session{SessionID: "s", StartState: "0123456 0000000"}
	records := []storage.MoveRecord{
		{MoveIndex: 0, Notation: "R", StateText: "0152463 0012021"},
		{MoveIndex: 1, Notation: "Q", StateText: "0123456 0000000"},
	}
	m, err := newReplayModel(stored, records, render.New(render.DefaultPalette()), 1, false)
	require.NoError(t, err)

	_, cmd := m.Update(replayMoveMsg{index: 0})
	require.NoError(t, m.err)
	assert.NotNil(t, cmd)

	_, cmd = m.Update(replayMoveMsg{index: 1})
	assert.ErrorIs(t, m.err, pocketcube.ErrUnknownMove)
	assert.Nil(t, cmd, "a bad record stops playback")
	assert.True(t, m.paused)
	assert.Equal(t, 1, m.index)
}
