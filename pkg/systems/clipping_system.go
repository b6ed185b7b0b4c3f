package systems

import (
	"github.com/gonewx/powerlawn/pkg/components"
	"github.com/gonewx/powerlawn/pkg/ecs"
)

// ClippingSystem 草屑粒子运动系统
// 按速度积分位置，施加空气阻力衰减，并更新旋转角。
// 粒子的清理由 LifetimeSystem 负责
type ClippingSystem struct {
	entityManager *ecs.EntityManager
}

// NewClippingSystem 创建草屑系统
func NewClippingSystem(em *ecs.EntityManager) *ClippingSystem {
	return &ClippingSystem{entityManager: em}
}

// Update 更新所有草屑粒子
func (s *ClippingSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.ClippingComponent, *components.PositionComponent](s.entityManager)

	for _, id := range ids {
		clipping, _ := ecs.GetComponent[*components.ClippingComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		pos.X += clipping.VelX * deltaTime
		pos.Y += clipping.VelY * deltaTime

		// 指数式阻力衰减
		decay := 1 - clipping.Drag*deltaTime
		if decay < 0 {
			decay = 0
		}
		clipping.VelX *= decay
		clipping.VelY *= decay

		clipping.RotDeg += clipping.RotSpeed * deltaTime
	}
}
