// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：命令行入口只负责解析参数，
// 音频、存储、场景管理器的装配都在这里完成。
package app

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/gonewx/powerlawn/internal/storage"
	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/gonewx/powerlawn/pkg/game"
	"github.com/gonewx/powerlawn/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 指定直接进入的关卡（如 "1-2"），为空则进入主菜单
	Level string
	// TwoPlayer 以双人模式启动
	TwoPlayer bool
	// Fullscreen 以全屏模式启动
	Fullscreen bool
	// DBPath 成绩数据库路径，为空则不记录排行榜
	DBPath string
	// Seed 草屑粒子随机种子，0 表示随机
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	gameState                *game.GameState
	scoreStore               *storage.Store
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	// 初始化音频上下文并合成音效
	audioContext := audio.NewContext(game.AudioSampleRate)

	gameState := game.GetGameState()
	gameState.TwoPlayer = cfg.TwoPlayer

	audioManager := game.NewAudioManager(audioContext, gameState.GetSettingsManager())
	gameState.SetAudioManager(audioManager)
	log.Debugf("[App] AudioManager initialized")

	// 打开成绩数据库（失败时降级为不记录）
	var scoreStore *storage.Store
	if cfg.DBPath != "" {
		store, err := storage.Open(cfg.DBPath)
		if err != nil {
			log.Warnf("[App] Failed to open score database %s: %v (scores will not be recorded)", cfg.DBPath, err)
		} else {
			scoreStore = store
			gameState.SetScoreStore(store)
			log.Debugf("[App] Score database opened: %s", cfg.DBPath)
		}
	}

	scenes.SetRandomSeed(cfg.Seed)

	// 创建场景管理器
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(levelID string) game.Scene {
		if scene := scenes.NewGameScene(sceneManager, levelID); scene != nil {
			return scene
		}
		return nil
	})

	// --level 跳过主菜单直接进入关卡
	if cfg.Level != "" {
		log.Infof("[App] Starting level: %s", cfg.Level)
		sceneManager.LoadLevel(cfg.Level)
	}
	if sceneManager.GetCurrentScene() == nil {
		sceneManager.SwitchTo(scenes.NewMainMenuScene(sceneManager))
	}

	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager: sceneManager,
		gameState:    gameState,
		scoreStore:   scoreStore,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.gameState.QuitRequested {
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Debugf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Debugf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		if err := a.gameState.GetSettingsManager().SetFullscreen(ebiten.IsFullscreen()); err != nil {
			log.Warnf("[App] Failed to save fullscreen setting: %v", err)
		}
	}

	a.sceneManager.Update(config.FixedDeltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 释放应用持有的资源（目前只有成绩数据库）
func (a *App) Close() error {
	if a.scoreStore != nil {
		return a.scoreStore.Close()
	}
	return nil
}
