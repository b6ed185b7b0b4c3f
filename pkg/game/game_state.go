package game

import (
	"github.com/charmbracelet/log"
	"github.com/gonewx/powerlawn/internal/storage"
	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/quasilyte/gdata/v2"
)

// GamePhase 关卡阶段
type GamePhase int

const (
	// PhasePlaying 正常游玩中
	PhasePlaying GamePhase = iota
	// PhaseWon 达到目标割草率，关卡胜利
	PhaseWon
	// PhaseLost 时间耗尽，关卡失败
	PhaseLost
)

// GameState 存储全局游戏状态
// 这是一个单例，用于管理跨场景和跨系统的全局状态数据
type GameState struct {
	Score       int     // 本局得分
	IsPaused    bool    // 是否暂停（ESC切换）
	DebugDraw   bool    // 是否绘制调试叠加层（F3切换）
	TwoPlayer   bool    // 是否双人模式
	Phase       GamePhase
	ElapsedTime float64 // 本局已进行时间（秒），暂停时不累计

	// CurrentLevel 当前关卡配置，由 LoadLevel 加载
	CurrentLevel *config.LevelConfig

	// QuitRequested 主菜单请求退出游戏，app 在下一帧返回 ebiten.Termination
	QuitRequested bool

	gdataManager    *gdata.Manager
	settingsManager *SettingsManager
	progressManager *ProgressManager
	audioManager    *AudioManager
	scoreStore      *storage.Store
}

// 全局单例实例（这是架构规范允许的唯一全局变量）
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 使用延迟初始化模式，确保整个游戏生命周期只有一个实例
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = newGameState()
	}
	return globalGameState
}

// newGameState 创建并初始化 GameState
// gdata 打开失败时降级为纯内存模式（设置和进度不持久化）
func newGameState() *GameState {
	gs := &GameState{
		Phase: PhasePlaying,
	}

	manager, err := gdata.Open(gdata.Config{AppName: "powerlawn"})
	if err != nil {
		log.Warnf("[GameState] Failed to open gdata storage: %v (settings and progress will not persist)", err)
		manager = nil
	}
	gs.gdataManager = manager

	gs.settingsManager, _ = NewSettingsManager(manager)
	gs.progressManager, _ = NewProgressManager(manager)

	return gs
}

// resetGlobalGameState 重置全局单例（仅测试使用）
func resetGlobalGameState() {
	globalGameState = nil
}

// LoadLevel 加载指定ID的关卡配置并重置本局状态
func (gs *GameState) LoadLevel(levelID string) error {
	level, err := config.LoadLevelByID(levelID)
	if err != nil {
		return err
	}
	gs.CurrentLevel = level
	gs.Score = 0
	gs.ElapsedTime = 0
	gs.IsPaused = false
	gs.Phase = PhasePlaying
	return nil
}

// AddScore 增加得分
func (gs *GameState) AddScore(amount int) {
	gs.Score += amount
}

// TogglePause 切换暂停状态
func (gs *GameState) TogglePause() {
	gs.IsPaused = !gs.IsPaused
}

// RequestQuit 请求退出游戏
func (gs *GameState) RequestQuit() {
	gs.QuitRequested = true
}

// ToggleDebugDraw 切换调试叠加层
func (gs *GameState) ToggleDebugDraw() {
	gs.DebugDraw = !gs.DebugDraw
}

// GetGdataManager 返回 gdata 存储管理器，可能为 nil（降级模式）
func (gs *GameState) GetGdataManager() *gdata.Manager {
	return gs.gdataManager
}

// GetSettingsManager 返回设置管理器
func (gs *GameState) GetSettingsManager() *SettingsManager {
	return gs.settingsManager
}

// GetProgressManager 返回进度管理器
func (gs *GameState) GetProgressManager() *ProgressManager {
	return gs.progressManager
}

// SetAudioManager 设置音频管理器（由 app 在音频上下文就绪后注入）
func (gs *GameState) SetAudioManager(am *AudioManager) {
	gs.audioManager = am
}

// GetAudioManager 返回音频管理器，可能为 nil
func (gs *GameState) GetAudioManager() *AudioManager {
	return gs.audioManager
}

// SetScoreStore 设置成绩数据库（由 app 注入）
func (gs *GameState) SetScoreStore(store *storage.Store) {
	gs.scoreStore = store
}

// GetScoreStore 返回成绩数据库，可能为 nil
func (gs *GameState) GetScoreStore() *storage.Store {
	return gs.scoreStore
}
