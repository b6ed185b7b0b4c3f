package entities

import (
	"math"
	"math/rand"

	"github.com/gonewx/powerlawn/pkg/components"
	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/gonewx/powerlawn/pkg/ecs"
)

// 草屑的几种绿色（RGBA），随机取用增加层次感
var clippingColors = [][4]uint8{
	{88, 160, 60, 255},
	{110, 180, 72, 255},
	{70, 140, 52, 255},
}

// CreateClippingBurst 在 (x, y) 喷出一簇草屑粒子
// 粒子向四周随机飞散，由 LifetimeSystem 在到期后清理
//
// rng 由调用方传入，便于测试复现和全局 --seed 控制
func CreateClippingBurst(em *ecs.EntityManager, x, y float64, rng *rand.Rand, count int) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, count)

	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := 60 + rng.Float64()*120

		entity := em.CreateEntity()
		ecs.AddComponent(em, entity, &components.PositionComponent{X: x, Y: y})
		ecs.AddComponent(em, entity, &components.ClippingComponent{
			VelX:     math.Cos(angle) * speed,
			VelY:     math.Sin(angle) * speed,
			Drag:     3.0,
			Size:     3 + rng.Float64()*3,
			Color:    clippingColors[rng.Intn(len(clippingColors))],
			RotDeg:   rng.Float64() * 360,
			RotSpeed: (rng.Float64() - 0.5) * 720,
		})
		ecs.AddComponent(em, entity, &components.LifetimeComponent{
			MaxLifetime: config.ClippingLifetime,
		})
		ids = append(ids, entity)
	}
	return ids
}
