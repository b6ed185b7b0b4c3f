package game

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音效ID常量
const (
	// SoundClick 菜单按键音
	SoundClick = "SOUND_CLICK"
	// SoundMow 割到新格子
	SoundMow = "SOUND_MOW"
	// SoundBump 撞上障碍物
	SoundBump = "SOUND_BUMP"
	// SoundWin 关卡胜利
	SoundWin = "SOUND_WIN"
	// SoundLose 关卡失败
	SoundLose = "SOUND_LOSE"
)

// AudioManager 音频管理器
//
// 职责：
//   - 统一管理游戏中所有音效的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 提供按音效ID播放的便捷接口
//
// 所有音效在构造时由 audio_synth.go 合成，无外部素材依赖
type AudioManager struct {
	audioContext    *audio.Context           // 可为 nil（无音频环境，播放退化为空操作）
	settingsManager *SettingsManager         // 设置管理器（用于读取音量设置，可为 nil）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（音效ID -> 播放器）
}

// NewAudioManager 创建新的音频管理器并合成全部音效
//
// 参数：
//   - ctx: Ebitengine 音频上下文，可为 nil（测试或无声环境）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(ctx *audio.Context, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		audioContext:    ctx,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}

	if ctx == nil {
		log.Debugf("[AudioManager] No audio context, sound disabled")
		return am
	}

	clips := map[string][]byte{
		SoundClick: synthTone(880, 0.05, 0.4),
		SoundMow:   synthNoise(0.09, 0.5),
		SoundBump:  synthTone(110, 0.12, 0.6),
		SoundWin: synthSequence(
			synthTone(523.25, 0.12, 0.5), // C5
			synthTone(659.25, 0.12, 0.5), // E5
			synthTone(783.99, 0.20, 0.5), // G5
		),
		SoundLose: synthSequence(
			synthTone(392.00, 0.18, 0.5), // G4
			synthTone(293.66, 0.30, 0.5), // D4
		),
	}

	for id, pcm := range clips {
		am.soundPlayers[id] = ctx.NewPlayerFromBytes(pcm)
	}
	log.Debugf("[AudioManager] Synthesized %d sound effects", len(clips))

	return am
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放
//
// 返回是否实际触发了播放（音效禁用或未知ID时为 false）
func (am *AudioManager) PlaySound(soundID string) bool {
	volume := 1.0
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.SoundEnabled {
			return false
		}
		volume = settings.SoundVolume
	}

	player, ok := am.soundPlayers[soundID]
	if !ok || player == nil {
		log.Warnf("[AudioManager] Unknown sound id: %s", soundID)
		return false
	}

	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Warnf("[AudioManager] Failed to rewind %s: %v", soundID, err)
		return false
	}
	player.Play()
	return true
}
