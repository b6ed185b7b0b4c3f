package game

import "testing"

func TestGetGameStateSingleton(t *testing.T) {
	resetGlobalGameState()
	defer resetGlobalGameState()

	gs1 := GetGameState()
	gs2 := GetGameState()

	if gs1 != gs2 {
		t.Error("GetGameState should return the same instance")
	}
	if gs1.GetSettingsManager() == nil {
		t.Error("SettingsManager should be initialized")
	}
	if gs1.GetProgressManager() == nil {
		t.Error("ProgressManager should be initialized")
	}
	if gs1.Phase != PhasePlaying {
		t.Errorf("Expected initial phase PhasePlaying, got %v", gs1.Phase)
	}
}

func TestAddScore(t *testing.T) {
	gs := &GameState{}

	gs.AddScore(10)
	gs.AddScore(25)

	if gs.Score != 35 {
		t.Errorf("Expected score 35, got %d", gs.Score)
	}
}

func TestTogglePause(t *testing.T) {
	gs := &GameState{}

	gs.TogglePause()
	if !gs.IsPaused {
		t.Error("Expected paused after first toggle")
	}
	gs.TogglePause()
	if gs.IsPaused {
		t.Error("Expected resumed after second toggle")
	}
}

func TestToggleDebugDraw(t *testing.T) {
	gs := &GameState{}

	gs.ToggleDebugDraw()
	if !gs.DebugDraw {
		t.Error("Expected debug draw enabled after toggle")
	}
}

func TestRequestQuit(t *testing.T) {
	gs := &GameState{}

	gs.RequestQuit()
	if !gs.QuitRequested {
		t.Error("Expected QuitRequested set")
	}
}

func TestLoadLevelMissing(t *testing.T) {
	// 嵌入资源未初始化且文件系统里没有该文件
	gs := &GameState{}

	if err := gs.LoadLevel("9-9"); err == nil {
		t.Error("Expected error for missing level")
	}
	if gs.CurrentLevel != nil {
		t.Error("CurrentLevel should stay nil after failed load")
	}
}
