package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveRun(Run{GameID: "junkover", Score: 100})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	_, err = store.SaveRun(Run{GameID: "junkover", Score: 50})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	_, err = store.SaveRun(Run{GameID: "junkover", Score: 200})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	// Different game
	_, err = store.SaveRun(Run{GameID: "other", Score: 500})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	// Retrieve top scores for junkover
	scores, err := store.TopScores("junkover", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Retrieve top scores for other
	otherScores, err := store.TopScores("other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(otherScores) != 1 {
		t.Errorf("Expected 1 other score, got %d", len(otherScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveRun(Run{GameID: "test", Score: (i+1)*100})
	}

	// Request only top 3
	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("junkover")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add scores
	store.SaveRun(Run{GameID: "junkover", Score: 100})
	store.SaveRun(Run{GameID: "junkover", Score: 300})
	store.SaveRun(Run{GameID: "junkover", Score: 200})

	high, err = store.HighScore("junkover")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(Run{GameID: "junkover", Score: 100})
	store.SaveRun(Run{GameID: "junkover", Score: 200})
	store.SaveRun(Run{GameID: "other", Score: 300})

	// Clear only junkover scores
	err = store.ClearScores("junkover")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Junkover should be empty
	junkoverScores, _ := store.TopScores("junkover", 10)
	if len(junkoverScores) != 0 {
		t.Errorf("Expected 0 junkover scores after clear, got %d", len(junkoverScores))
	}

	// Other should still have scores
	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Errorf("Other scores should not be affected by clearing junkover")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveRun(Run{GameID: "test", Score: i*10})
	}

	scores, err := store.AllScores("test")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	// Test that ~ expansion works (we won't actually write to home)
	// Just verify the function doesn't crash
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveRunWithCause(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	id, err := store.SaveRun(Run{GameID: "junkover", RunID: "run-1", Score: 42, Cause: "asteroid"})
	require.NoError(t, err)
	assert.Positive(t, id)

	got, err := store.RunByID("run-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "junkover", got.GameID)
	assert.Equal(t, 42, got.Score)
	assert.Equal(t, "asteroid", got.Cause)
	assert.False(t, got.CreatedAt.IsZero())

	missing, err := store.RunByID("run-404")
	require.NoError(t, err)
	assert.Nil(t, missing)

	top, err := store.TopScores("junkover", 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "run-1", top[0].RunID)
	assert.Equal(t, "asteroid", top[0].Cause)
}

func TestStoreCauseStats(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	runs := []Run{
		{GameID: "junkover", RunID: "a", Score: 10, Cause: "asteroid"},
		{GameID: "junkover", RunID: "b", Score: 30, Cause: "asteroid"},
		{GameID: "junkover", RunID: "c", Score: 20, Cause: "enemy-ship"},
		{GameID: "junkover", RunID: "d", Score: 5, Cause: "space-junk"},
		{GameID: "junkover", RunID: "e", Score: 50, Cause: "space-junk"},
		{GameID: "junkover", RunID: "f", Score: 7, Cause: "space-junk"},
		{GameID: "junkover", RunID: "g", Score: 99},
		{GameID: "other", RunID: "h", Score: 1, Cause: "asteroid"},
	}
	for _, r := range runs {
		_, err := store.SaveRun(r)
		require.NoError(t, err)
	}

	stats, err := store.CauseStats("junkover")
	require.NoError(t, err)
	assert.Equal(t, []CauseCount{
		{Cause: "space-junk", Deaths: 3, BestScore: 50},
		{Cause: "asteroid", Deaths: 2, BestScore: 30},
		{Cause: "enemy-ship", Deaths: 1, BestScore: 20},
	}, stats)
}

func TestStoreGameStats(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	empty, err := store.GetGameStats("junkover")
	require.NoError(t, err)
	assert.Zero(t, empty.GamesCount)
	assert.True(t, empty.LastPlayed.IsZero())

	store.SaveRun(Run{GameID: "junkover", Score: 10})
	store.SaveRun(Run{GameID: "junkover", Score: 30})

	stats, err := store.GetGameStats("junkover")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 30, stats.HighScore)
	assert.InDelta(t, 20.0, stats.AvgScore, 1e-9)
	assert.Equal(t, int64(40), stats.TotalScore)
}
