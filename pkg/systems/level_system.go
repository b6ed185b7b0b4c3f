package systems

import (
	"github.com/charmbracelet/log"
	"github.com/gonewx/powerlawn/pkg/components"
	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/gonewx/powerlawn/pkg/ecs"
	"github.com/gonewx/powerlawn/pkg/game"
)

// LevelEndCallback 关卡结束回调
// won 表示是否达成目标；回调在阶段切换的那一帧触发一次
type LevelEndCallback func(won bool)

// LevelSystem 关卡进程系统
//
// 职责：
//   - 累计本局用时
//   - 判定胜利（割草率达标）与失败（限时耗尽）
//   - 胜利时按剩余时间发放通关加分
//   - 通过回调通知场景做持久化和音效
type LevelSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	grid          *components.LawnGridComponent
	onLevelEnd    LevelEndCallback
	ended         bool
}

// NewLevelSystem 创建关卡进程系统
func NewLevelSystem(em *ecs.EntityManager, gs *game.GameState, grid *components.LawnGridComponent) *LevelSystem {
	return &LevelSystem{
		entityManager: em,
		gameState:     gs,
		grid:          grid,
	}
}

// SetLevelEndCallback 设置关卡结束回调
func (s *LevelSystem) SetLevelEndCallback(cb LevelEndCallback) {
	s.onLevelEnd = cb
}

// Update 推进关卡进程
func (s *LevelSystem) Update(deltaTime float64) {
	if s.ended || s.gameState.Phase != game.PhasePlaying {
		return
	}

	level := s.gameState.CurrentLevel
	if level == nil || s.grid == nil {
		return
	}

	s.gameState.ElapsedTime += deltaTime

	percent := s.grid.MowedPercent()
	if percent >= level.TargetPercent {
		s.finish(true, level.TimeLimit)
		return
	}

	if level.TimeLimit > 0 && s.gameState.ElapsedTime >= level.TimeLimit {
		s.finish(false, level.TimeLimit)
	}
}

// finish 结束关卡，切换阶段并发放加分
func (s *LevelSystem) finish(won bool, timeLimit float64) {
	s.ended = true

	if won {
		s.gameState.Phase = game.PhaseWon
		// 限时关按剩余秒数发放通关加分
		if timeLimit > 0 {
			remaining := timeLimit - s.gameState.ElapsedTime
			if remaining > 0 {
				s.gameState.AddScore(int(remaining) * config.TimeBonusPerSecond)
			}
		}
		log.Infof("[LevelSystem] Level won: %.1f%% mowed in %.1fs, score %d",
			s.grid.MowedPercent(), s.gameState.ElapsedTime, s.gameState.Score)
	} else {
		s.gameState.Phase = game.PhaseLost
		log.Infof("[LevelSystem] Level lost: %.1f%% mowed when time ran out",
			s.grid.MowedPercent())
	}

	if s.onLevelEnd != nil {
		s.onLevelEnd(won)
	}
}
