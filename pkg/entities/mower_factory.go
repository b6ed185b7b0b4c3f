package entities

import (
	"github.com/charmbracelet/log"
	"github.com/gonewx/powerlawn/pkg/components"
	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/gonewx/powerlawn/pkg/ecs"
	"github.com/gonewx/powerlawn/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewMower 创建一台玩家控制的割草机实体
//
// 参数：
//   - em: EntityManager 实例
//   - playerIndex: 玩家编号（1 = 方向键，2 = WASD）
//   - level: 当前关卡配置（用于定位出生格子）
//   - start: 出生点配置
//   - sprite: 车体贴图，可为 nil（测试环境下不渲染）
//
// 出生位置为出生格子的中心；轨迹以出生点为第一个采样点
func NewMower(em *ecs.EntityManager, playerIndex int, level *config.LevelConfig, start config.MowerStart, sprite *ebiten.Image) ecs.EntityID {
	originX, originY := config.GridOrigin(level.Cols, level.Rows)
	x, y := utils.TileToWorld(start.Col, start.Row, originX, originY, config.TileSize)

	mower := &components.MowerComponent{
		PlayerIndex: playerIndex,
		HeadingDeg:  start.Heading,
		Speed:       0,
		TurnSpeed:   config.MowerTurnSpeed,
		Accel:       config.MowerAccel,
		MaxSpeed:    config.MowerMaxSpeed,
		CutRadius:   config.MowerCutRadius,
	}
	switch playerIndex {
	case 2:
		mower.KeyUp = ebiten.KeyW
		mower.KeyDown = ebiten.KeyS
		mower.KeyLeft = ebiten.KeyA
		mower.KeyRight = ebiten.KeyD
	default:
		mower.KeyUp = ebiten.KeyArrowUp
		mower.KeyDown = ebiten.KeyArrowDown
		mower.KeyLeft = ebiten.KeyArrowLeft
		mower.KeyRight = ebiten.KeyArrowRight
	}

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entity, mower)
	ecs.AddComponent(em, entity, &components.SpriteComponent{
		Image:       sprite,
		RotationDeg: start.Heading,
	})
	ecs.AddComponent(em, entity, &components.CollisionComponent{
		Width:  config.MowerBodySize,
		Height: config.MowerBodySize,
	})
	ecs.AddComponent(em, entity, &components.TrailComponent{
		Points:       []components.TrailPoint{{X: x, Y: y}},
		EmitInterval: config.TrailEmitInterval,
		MaxPoints:    config.TrailMaxPoints,
		StripWidth:   config.TrailStripWidth,
	})

	log.Debugf("[MowerFactory] Created mower for player %d at tile (%d,%d)", playerIndex, start.Col, start.Row)
	return entity
}
