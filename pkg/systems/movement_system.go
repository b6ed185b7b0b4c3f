package systems

import (
	"github.com/gonewx/powerlawn/pkg/components"
	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/gonewx/powerlawn/pkg/ecs"
	"github.com/gonewx/powerlawn/pkg/game"
	"github.com/gonewx/powerlawn/pkg/utils"
)

// bumpSpeedThreshold 触发撞击音效的最低速度（像素/秒）
const bumpSpeedThreshold = 60.0

// MovementSystem 割草机移动系统
//
// 职责：
//   - 按朝向角和速度积分割草机位置
//   - 撞上障碍物格子时停车（逐轴判定，贴边可滑行）
//   - 将中心点限制在屏幕范围内
//   - 同步贴图旋转角
type MovementSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	grid          *components.LawnGridComponent
}

// NewMovementSystem 创建移动系统
// grid 为当前关卡的草坪网格组件
func NewMovementSystem(em *ecs.EntityManager, gs *game.GameState, grid *components.LawnGridComponent) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		gameState:     gs,
		grid:          grid,
	}
}

// Update 更新所有割草机位置
func (s *MovementSystem) Update(deltaTime float64) {
	mowers := ecs.GetEntitiesWith2[*components.MowerComponent, *components.PositionComponent](s.entityManager)

	for _, id := range mowers {
		mower, _ := ecs.GetComponent[*components.MowerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		vx, vy := utils.HeadingVector(mower.HeadingDeg, mower.Speed)

		var box *components.CollisionComponent
		if collision, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
			box = collision
		}

		bumped := false

		// 逐轴移动：一个轴撞墙时另一个轴仍可滑动
		newX := utils.Clamp(pos.X+vx*deltaTime, 0, config.GameWindowWidth)
		if box == nil || !s.hitsObstacle(newX, pos.Y, box) {
			pos.X = newX
		} else {
			bumped = true
		}

		newY := utils.Clamp(pos.Y+vy*deltaTime, 0, config.GameWindowHeight)
		if box == nil || !s.hitsObstacle(pos.X, newY, box) {
			pos.Y = newY
		} else {
			bumped = true
		}

		if bumped {
			if mower.Speed >= bumpSpeedThreshold {
				if audioManager := s.gameState.GetAudioManager(); audioManager != nil {
					audioManager.PlaySound(game.SoundBump)
				}
			}
			mower.Speed = 0
		}

		// 同步贴图朝向
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			sprite.RotationDeg = mower.HeadingDeg
		}
	}
}

// hitsObstacle 检查以 (x, y) 为中心的碰撞盒是否与障碍物格子重叠
func (s *MovementSystem) hitsObstacle(x, y float64, box *components.CollisionComponent) bool {
	if s.grid == nil {
		return false
	}

	left := x + box.OffsetX - box.Width/2
	top := y + box.OffsetY - box.Height/2
	right := left + box.Width
	bottom := top + box.Height

	minCol, minRow := utils.WorldToTile(left, top, s.grid.OriginX, s.grid.OriginY, s.grid.TileSize)
	maxCol, maxRow := utils.WorldToTile(right, bottom, s.grid.OriginX, s.grid.OriginY, s.grid.TileSize)

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if !s.grid.InBounds(col, row) {
				continue
			}
			if s.grid.Tiles[row][col] == components.TileObstacle {
				return true
			}
		}
	}
	return false
}
