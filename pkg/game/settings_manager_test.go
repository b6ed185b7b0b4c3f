package game

import "testing"

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if !settings.SoundEnabled {
		t.Error("Sound should be enabled by default")
	}
	if settings.SoundVolume != 0.8 {
		t.Errorf("Expected default volume 0.8, got %f", settings.SoundVolume)
	}
	if settings.Fullscreen {
		t.Error("Fullscreen should be off by default")
	}
	if settings.TwoPlayer {
		t.Error("Two-player should be off by default")
	}
}

func TestSettingsManagerDegradedMode(t *testing.T) {
	// gdata 为 nil 时降级为纯内存设置，所有操作不报错
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("Expected no error in degraded mode, got %v", err)
	}

	if sm.GetSettings() == nil {
		t.Fatal("Settings should never be nil")
	}

	if err := sm.SetSoundEnabled(false); err != nil {
		t.Errorf("SetSoundEnabled failed: %v", err)
	}
	if sm.GetSettings().SoundEnabled {
		t.Error("Sound should be disabled after SetSoundEnabled(false)")
	}

	if err := sm.SetTwoPlayer(true); err != nil {
		t.Errorf("SetTwoPlayer failed: %v", err)
	}
	if !sm.GetSettings().TwoPlayer {
		t.Error("Two-player should be enabled")
	}

	if err := sm.Save(); err != nil {
		t.Errorf("Save should be a no-op in degraded mode, got %v", err)
	}
}

func TestSetSoundVolumeClamping(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetSoundVolume(1.5)
	if got := sm.GetSettings().SoundVolume; got != 1.0 {
		t.Errorf("Expected volume clamped to 1.0, got %f", got)
	}

	sm.SetSoundVolume(-0.5)
	if got := sm.GetSettings().SoundVolume; got != 0 {
		t.Errorf("Expected volume clamped to 0, got %f", got)
	}

	sm.SetSoundVolume(0.5)
	if got := sm.GetSettings().SoundVolume; got != 0.5 {
		t.Errorf("Expected volume 0.5, got %f", got)
	}
}
