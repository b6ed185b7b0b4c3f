package storage

import (
	"fmt"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRun(runID, levelID string, score int) RunRecord {
	return RunRecord{
		RunID:        runID,
		LevelID:      levelID,
		Score:        score,
		PercentMowed: 100,
		Duration:     90,
		Completed:    true,
		Players:      1,
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "scores.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open should create parent directories: %v", err)
	}
	store.Close()
}

func TestRecordRunAndTopScores(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		sampleRun("run-1", "1-1", 300),
		sampleRun("run-2", "1-1", 500),
		sampleRun("run-3", "1-1", 400),
		sampleRun("run-4", "1-2", 900),
	}
	for _, run := range runs {
		if err := store.RecordRun(run); err != nil {
			t.Fatalf("RecordRun failed: %v", err)
		}
	}

	// 单关排行：按得分降序
	scores, err := store.TopScores("1-1", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores for level 1-1, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not sorted descending: %d, %d, %d",
			scores[0].Score, scores[1].Score, scores[2].Score)
	}

	// 空关卡ID返回全部关卡的成绩
	all, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores all levels failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Expected 4 scores across all levels, got %d", len(all))
	}
	if all[0].LevelID != "1-2" || all[0].Score != 900 {
		t.Errorf("Expected top score 900 from level 1-2, got %d from %s", all[0].Score, all[0].LevelID)
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		run := sampleRun(fmt.Sprintf("run-%d", i), "1-1", 100+i)
		if err := store.RecordRun(run); err != nil {
			t.Fatalf("RecordRun failed: %v", err)
		}
	}

	scores, err := store.TopScores("1-1", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected limit of 10 scores, got %d", len(scores))
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	// 无记录时为 0
	high, err := store.HighScore("1-1")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty table, got %d", high)
	}

	store.RecordRun(sampleRun("run-1", "1-1", 250))
	store.RecordRun(sampleRun("run-2", "1-1", 750))

	high, err = store.HighScore("1-1")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if high != 750 {
		t.Errorf("Expected high score 750, got %d", high)
	}
}

func TestRunCount(t *testing.T) {
	store := openTestStore(t)

	store.RecordRun(sampleRun("run-1", "1-1", 100))
	store.RecordRun(sampleRun("run-2", "1-1", 200))
	store.RecordRun(sampleRun("run-3", "2-1", 300))

	count, err := store.RunCount("1-1")
	if err != nil {
		t.Fatalf("RunCount failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 runs for level 1-1, got %d", count)
	}
}

func TestRecordRunDuplicateID(t *testing.T) {
	store := openTestStore(t)

	if err := store.RecordRun(sampleRun("same-id", "1-1", 100)); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}
	// run_id 唯一约束
	if err := store.RecordRun(sampleRun("same-id", "1-1", 200)); err == nil {
		t.Error("Expected error for duplicate run ID")
	}
}
