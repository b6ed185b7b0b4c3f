package scenes

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gonewx/powerlawn/internal/storage"
	"github.com/gonewx/powerlawn/pkg/components"
	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/gonewx/powerlawn/pkg/ecs"
	"github.com/gonewx/powerlawn/pkg/entities"
	"github.com/gonewx/powerlawn/pkg/game"
	"github.com/gonewx/powerlawn/pkg/systems"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// randomSeed 草屑粒子随机源的种子，0 表示每局随机
// 由 app 在启动时通过 SetRandomSeed 设置（--seed 标志）
var randomSeed int64

// SetRandomSeed 设置粒子随机源种子（0 = 按时间随机）
func SetRandomSeed(seed int64) {
	randomSeed = seed
}

// 场景背景色（草坪网格之外的部分）
var colorSceneBackground = color.RGBA{R: 40, G: 96, B: 36, A: 255}

// GameScene 关卡场景
// 持有本关的实体管理器和全部系统，按固定顺序推进一帧：
// 输入 → 移动 → 割草 → 车辙 → 草屑 → 生命周期 → 关卡进程 → 清理
type GameScene struct {
	sceneManager  *game.SceneManager
	gameState     *game.GameState
	entityManager *ecs.EntityManager
	grid          *components.LawnGridComponent

	inputSystem    *systems.InputSystem
	movementSystem *systems.MovementSystem
	mowingSystem   *systems.MowingSystem
	trailSystem    *systems.TrailSystem
	clippingSystem *systems.ClippingSystem
	lifetimeSystem *systems.LifetimeSystem
	levelSystem    *systems.LevelSystem
	renderSystem   *systems.RenderSystem
	hudSystem      *systems.HUDRenderSystem
}

// NewGameScene 创建指定关卡的场景
// 关卡加载失败时返回 nil（SceneManager 会保持当前场景不变）
func NewGameScene(sceneManager *game.SceneManager, levelID string) *GameScene {
	gameState := game.GetGameState()
	if err := gameState.LoadLevel(levelID); err != nil {
		log.Errorf("[GameScene] Failed to load level %s: %v", levelID, err)
		return nil
	}
	level := gameState.CurrentLevel

	entityManager := ecs.NewEntityManager()
	_, grid := entities.NewLawnGrid(entityManager, level)

	// 双人模式：关卡强制开启，或玩家在菜单/命令行里选择
	playerCount := 1
	if level.TwoPlayer || gameState.TwoPlayer {
		playerCount = 2
	}
	starts := level.MowerStarts
	for i := 0; i < playerCount; i++ {
		start := config.MowerStart{Col: 0, Row: level.Rows - 1}
		if i < len(starts) {
			start = starts[i]
		}
		entities.NewMower(entityManager, i+1, level, start, entities.BuildMowerSprite(i+1))
	}

	seed := randomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	scene := &GameScene{
		sceneManager:  sceneManager,
		gameState:     gameState,
		entityManager: entityManager,
		grid:          grid,

		inputSystem:    systems.NewInputSystem(entityManager, gameState),
		movementSystem: systems.NewMovementSystem(entityManager, gameState, grid),
		mowingSystem:   systems.NewMowingSystem(entityManager, gameState, grid, rng),
		trailSystem:    systems.NewTrailSystem(entityManager),
		clippingSystem: systems.NewClippingSystem(entityManager),
		lifetimeSystem: systems.NewLifetimeSystem(entityManager),
		levelSystem:    systems.NewLevelSystem(entityManager, gameState, grid),
		renderSystem:   systems.NewRenderSystem(entityManager, gameState, grid),
		hudSystem: systems.NewHUDRenderSystem(gameState, grid,
			loadFont(44), loadFont(18)),
	}
	scene.levelSystem.SetLevelEndCallback(scene.onLevelEnd)

	log.Infof("[GameScene] Level %s started: %dx%d lawn, %d player(s), target %.0f%%",
		level.ID, level.Cols, level.Rows, playerCount, level.TargetPercent)
	return scene
}

// Update 推进场景一帧
func (s *GameScene) Update(deltaTime float64) {
	s.inputSystem.Update(deltaTime)

	if s.gameState.IsPaused {
		s.handlePausedInput()
		return
	}

	if s.gameState.Phase == game.PhasePlaying {
		s.movementSystem.Update(deltaTime)
		s.mowingSystem.Update(deltaTime)
		s.trailSystem.Update(deltaTime)
		s.levelSystem.Update(deltaTime)
	} else {
		s.handleEndedInput()
	}

	// 草屑在结算遮罩下继续飘落
	s.clippingSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景一帧
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorSceneBackground)
	s.renderSystem.Draw(screen)
	s.hudSystem.Draw(screen)
}

// handlePausedInput 处理暂停遮罩下的按键
func (s *GameScene) handlePausedInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.backToMenu()
	}
}

// handleEndedInput 处理胜利/失败遮罩下的按键
func (s *GameScene) handleEndedInput() {
	switch {
	case s.gameState.Phase == game.PhaseWon && inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		if next := s.nextLevelID(); next != "" {
			s.sceneManager.LoadLevel(next)
		} else {
			s.backToMenu()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		s.sceneManager.LoadLevel(s.gameState.CurrentLevel.ID)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		s.backToMenu()
	}
}

// backToMenu 返回主菜单
func (s *GameScene) backToMenu() {
	if audioManager := s.gameState.GetAudioManager(); audioManager != nil {
		audioManager.PlaySound(game.SoundClick)
	}
	s.sceneManager.SwitchTo(NewMainMenuScene(s.sceneManager))
}

// nextLevelID 返回当前关卡之后的下一关ID，没有则返回空串
func (s *GameScene) nextLevelID() string {
	ids, err := config.ListLevelIDs()
	if err != nil {
		log.Warnf("[GameScene] Failed to list levels: %v", err)
		return ""
	}
	for i, id := range ids {
		if id == s.gameState.CurrentLevel.ID && i+1 < len(ids) {
			return ids[i+1]
		}
	}
	return ""
}

// onLevelEnd 关卡结束回调：播放音效并持久化成绩
func (s *GameScene) onLevelEnd(won bool) {
	if audioManager := s.gameState.GetAudioManager(); audioManager != nil {
		if won {
			audioManager.PlaySound(game.SoundWin)
		} else {
			audioManager.PlaySound(game.SoundLose)
		}
	}

	level := s.gameState.CurrentLevel
	percent := s.grid.MowedPercent()
	elapsed := s.gameState.ElapsedTime

	// 通关进度写入 gdata（解锁下一关、刷新最佳成绩）
	if won {
		if improved := s.gameState.GetProgressManager().RecordCompletion(level.ID, percent, elapsed); improved {
			log.Infof("[GameScene] New best for level %s: %.1f%% in %.1fs", level.ID, percent, elapsed)
		}
	}

	// 本局流水写入 SQLite 排行榜
	store := s.gameState.GetScoreStore()
	if store == nil {
		return
	}
	players := 1
	if level.TwoPlayer || s.gameState.TwoPlayer {
		players = 2
	}
	record := storage.RunRecord{
		RunID:        uuid.NewString(),
		LevelID:      level.ID,
		Score:        s.gameState.Score,
		PercentMowed: percent,
		Duration:     elapsed,
		Completed:    won,
		Players:      players,
	}
	if err := store.RecordRun(record); err != nil {
		log.Warnf("[GameScene] Failed to record run: %v", err)
	}
}
