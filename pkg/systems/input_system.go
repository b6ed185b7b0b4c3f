package systems

import (
	"github.com/charmbracelet/log"
	"github.com/gonewx/powerlawn/pkg/components"
	"github.com/gonewx/powerlawn/pkg/ecs"
	"github.com/gonewx/powerlawn/pkg/game"
	"github.com/gonewx/powerlawn/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem 处理所有用户输入
//
// 职责：
//   - ESC 切换暂停
//   - F3 切换调试叠加层
//   - 按住方向键/WASD 时调整各台割草机的朝向和速度
//
// 操控模型来自街机原型：左右键以固定速率转向，上键加速、下键减速，
// 速度不会低于 0。松开按键后速度保持，割草机继续直行
type InputSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewInputSystem 创建一个新的输入系统
func NewInputSystem(em *ecs.EntityManager, gs *game.GameState) *InputSystem {
	return &InputSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// Update 处理用户输入
// deltaTime 为自上次更新以来的时间（秒）
func (s *InputSystem) Update(deltaTime float64) {
	// ESC 键切换暂停/恢复
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.gameState.TogglePause()
		if audioManager := s.gameState.GetAudioManager(); audioManager != nil {
			audioManager.PlaySound(game.SoundClick)
		}
		if s.gameState.IsPaused {
			log.Debugf("[InputSystem] Game paused (ESC)")
		} else {
			log.Debugf("[InputSystem] Game resumed (ESC)")
		}
		return // 处理暂停切换后立即返回，避免响应其他输入
	}

	// F3 切换调试叠加层
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.gameState.ToggleDebugDraw()
		log.Debugf("[InputSystem] Debug overlay: %v", s.gameState.DebugDraw)
	}

	// 暂停或关卡结束时屏蔽操控输入
	if s.gameState.IsPaused || s.gameState.Phase != game.PhasePlaying {
		return
	}

	mowers := ecs.GetEntitiesWith1[*components.MowerComponent](s.entityManager)
	for _, id := range mowers {
		mower, ok := ecs.GetComponent[*components.MowerComponent](s.entityManager, id)
		if !ok {
			continue
		}
		s.applySteering(mower,
			ebiten.IsKeyPressed(mower.KeyUp),
			ebiten.IsKeyPressed(mower.KeyDown),
			ebiten.IsKeyPressed(mower.KeyLeft),
			ebiten.IsKeyPressed(mower.KeyRight),
			deltaTime,
		)
	}
}

// applySteering 根据按键状态调整单台割草机的朝向和速度
// 拆分为独立方法以便在无窗口环境下测试
func (s *InputSystem) applySteering(mower *components.MowerComponent, up, down, left, right bool, deltaTime float64) {
	if right {
		mower.HeadingDeg -= mower.TurnSpeed * deltaTime
	}
	if left {
		mower.HeadingDeg += mower.TurnSpeed * deltaTime
	}
	// 朝向角保持在 [0, 360)，避免长时间转圈后角度无限增长
	mower.HeadingDeg = utils.NormalizeDeg(mower.HeadingDeg)
	if up {
		mower.Speed += mower.Accel * deltaTime
	}
	if down {
		mower.Speed -= mower.Accel * deltaTime
	}

	if mower.Speed < 0 {
		mower.Speed = 0
	}
	if mower.Speed > mower.MaxSpeed {
		mower.Speed = mower.MaxSpeed
	}
}
