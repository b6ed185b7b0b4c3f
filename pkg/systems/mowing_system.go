package systems

import (
	"math"
	"math/rand"

	"github.com/gonewx/powerlawn/pkg/components"
	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/gonewx/powerlawn/pkg/ecs"
	"github.com/gonewx/powerlawn/pkg/entities"
	"github.com/gonewx/powerlawn/pkg/game"
	"github.com/gonewx/powerlawn/pkg/utils"
)

// MowingSystem 割草系统
//
// 职责：
//   - 把刀盘覆盖范围内的未割格子翻转为已割
//   - 更新割草计数、得分
//   - 每割到新格子喷出草屑并播放音效
//
// 判定规则：格子中心与割草机中心的距离不超过 CutRadius 时割掉该格。
// 刀盘半径略大于半格，因此直线推过去能割出约一格宽的条带
type MowingSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	grid          *components.LawnGridComponent
	rng           *rand.Rand
}

// NewMowingSystem 创建割草系统
// rng 用于草屑粒子的随机参数，由场景按全局种子构造
func NewMowingSystem(em *ecs.EntityManager, gs *game.GameState, grid *components.LawnGridComponent, rng *rand.Rand) *MowingSystem {
	return &MowingSystem{
		entityManager: em,
		gameState:     gs,
		grid:          grid,
		rng:           rng,
	}
}

// Update 执行一帧割草判定
func (s *MowingSystem) Update(deltaTime float64) {
	mowers := ecs.GetEntitiesWith2[*components.MowerComponent, *components.PositionComponent](s.entityManager)

	mowedThisFrame := 0
	for _, id := range mowers {
		mower, _ := ecs.GetComponent[*components.MowerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		mowedThisFrame += s.mowAround(mower, pos.X, pos.Y)
	}

	// 音效按帧去重：同一帧割掉多格也只响一次
	if mowedThisFrame > 0 {
		if audioManager := s.gameState.GetAudioManager(); audioManager != nil {
			audioManager.PlaySound(game.SoundMow)
		}
	}
}

// mowAround 割掉 (x, y) 周围刀盘范围内的格子，返回新割的格子数
func (s *MowingSystem) mowAround(mower *components.MowerComponent, x, y float64) int {
	if s.grid == nil {
		return 0
	}

	// 只遍历刀盘包围盒覆盖的格子
	minCol, minRow := utils.WorldToTile(x-mower.CutRadius, y-mower.CutRadius, s.grid.OriginX, s.grid.OriginY, s.grid.TileSize)
	maxCol, maxRow := utils.WorldToTile(x+mower.CutRadius, y+mower.CutRadius, s.grid.OriginX, s.grid.OriginY, s.grid.TileSize)

	mowed := 0
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if !s.grid.InBounds(col, row) {
				continue
			}
			if s.grid.Tiles[row][col] != components.TileUnmowed {
				continue
			}

			cx, cy := s.grid.TileCenter(col, row)
			if math.Hypot(cx-x, cy-y) > mower.CutRadius {
				continue
			}

			s.grid.Tiles[row][col] = components.TileMowed
			s.grid.MowedCount++
			mower.TilesMowed++
			mowed++

			s.gameState.AddScore(config.ScorePerTile)
			entities.CreateClippingBurst(s.entityManager, cx, cy, s.rng, config.ClippingsPerTile)
		}
	}
	return mowed
}
