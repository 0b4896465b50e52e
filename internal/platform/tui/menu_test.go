package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/junkover/internal/storage"
)

func pressMenu(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(MenuModel)
	require.True(t, ok)
	return out
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, "stub", testConfig())
	assert.Equal(t, ChoiceNone, m.Choice())

	m = pressMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = pressMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = pressMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ChoiceScores, m.Choice())
}

func TestMenuShortcuts(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want MenuChoice
	}{
		{"enter plays", tea.KeyMsg{Type: tea.KeyEnter}, ChoicePlay},
		{"tab opens scores", tea.KeyMsg{Type: tea.KeyTab}, ChoiceScores},
		{"q quits", runeKey('q'), ChoiceQuit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, ChoiceQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := pressMenu(t, NewMenuModel(nil, "stub", testConfig()), tt.msg)
			assert.Equal(t, tt.want, m.Choice())
		})
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store := newTestStore(t)
	_, err := store.SaveRun(storage.Run{GameID: "stub", RunID: "a", Score: 42, Cause: "rock"})
	require.NoError(t, err)

	m := NewMenuModel(store, "stub", testConfig())
	assert.Contains(t, m.View(), "Best: 42")
	assert.Contains(t, m.View(), "J U N K O V E R")
}

func TestScoreboardViews(t *testing.T) {
	store := newTestStore(t)
	for i, r := range []storage.Run{
		{GameID: "stub", RunID: "a", Score: 3, Cause: "rock"},
		{GameID: "stub", RunID: "b", Score: 9, Cause: "rock"},
		{GameID: "stub", RunID: "c", Score: 5, Cause: "tyre"},
	} {
		_, err := store.SaveRun(r)
		require.NoError(t, err, "run %d", i)
	}

	m := NewScoreboardModel(store, "stub", 100, 30)
	require.Len(t, m.scores, 3)
	assert.Equal(t, 9, m.scores[0].Score)
	assert.Contains(t, m.View(), "Top runs")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	require.Len(t, m.causes, 2)
	assert.Equal(t, "rock", m.causes[0].Cause)
	assert.Equal(t, 2, m.causes[0].Deaths)
	assert.Equal(t, 9, m.causes[0].BestScore)

	// Wraps back to the first view.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(ScoreboardModel)
	assert.Len(t, m.scores, 3)
	assert.Nil(t, m.causes)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	assert.True(t, m.IsGoingBack())
	assert.False(t, m.IsQuitting())
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "stub", 60, 20)
	assert.Contains(t, m.View(), "No runs recorded yet")
}
