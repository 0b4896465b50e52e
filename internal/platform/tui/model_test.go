package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/junkover/internal/core"
	"github.com/vovakirdan/junkover/internal/motion"
	"github.com/vovakirdan/junkover/internal/storage"
)

type stubScene struct {
	state  core.GameState
	steers []motion.Direction
	steps  int
	closed bool
}

func (s *stubScene) ID() string               { return "stub" }
func (s *stubScene) Title() string            { return "Stub" }
func (s *stubScene) Reset(core.RuntimeConfig) {}
func (s *stubScene) Render(dst *core.Screen)  { dst.DrawText(0, 0, "stub") }
func (s *stubScene) State() core.GameState    { return s.state }
func (s *stubScene) Steer(d motion.Direction) { s.steers = append(s.steers, d) }
func (s *stubScene) Close()                   { s.closed = true }
func (s *stubScene) Step(core.InputFrame) core.StepResult {
	s.steps++
	return core.StepResult{State: s.state}
}

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestModelSteersScene(t *testing.T) {
	scene := &stubScene{}
	m := NewModel(scene, nil, testConfig(), log.New(io.Discard))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = update(t, m, runeKey('d'))

	assert.Equal(t, []motion.Direction{motion.DirUp, motion.DirRight}, scene.steers)
	assert.False(t, m.IsQuitting())
}

func TestModelSavesEachRunOnce(t *testing.T) {
	store := newTestStore(t)
	scene := &stubScene{}
	m := NewModel(scene, store, testConfig(), nil)

	m = update(t, m, TickMsg{})
	scene.state = core.GameState{Score: 7, GameOver: true, Cause: "rock", RunID: "run-1"}
	for range 5 {
		m = update(t, m, TickMsg{})
	}

	scene.state = core.GameState{Score: 0, GameOver: false, RunID: "run-2"}
	m = update(t, m, TickMsg{})
	scene.state = core.GameState{Score: 0, GameOver: true, Cause: "tyre", RunID: "run-2"}
	update(t, m, TickMsg{})

	all, err := store.AllScores("stub")
	require.NoError(t, err)
	require.Len(t, all, 2)

	first, err := store.RunByID("run-1")
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 7, first.Score)
	assert.Equal(t, "rock", first.Cause)

	second, err := store.RunByID("run-2")
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, 0, second.Score)
}

func TestModelQuitClosesScene(t *testing.T) {
	scene := &stubScene{}
	m := NewModel(scene, nil, testConfig(), nil)

	m = update(t, m, runeKey('q'))

	assert.True(t, m.IsQuitting())
	assert.True(t, scene.closed)
	assert.Empty(t, m.View())
}

func TestModelBackStopsTicking(t *testing.T) {
	scene := &stubScene{}
	m := NewModel(scene, nil, testConfig(), nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.True(t, m.BackToMenu())
	assert.True(t, scene.closed)

	_, cmd := m.Update(TickMsg{})
	assert.Nil(t, cmd)
	assert.Zero(t, scene.steps)
}

func TestModelView(t *testing.T) {
	m := NewModel(&stubScene{}, nil, testConfig(), nil)
	assert.True(t, strings.Contains(m.View(), "stub"))
}
