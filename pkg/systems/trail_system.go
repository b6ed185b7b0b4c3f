package systems

import (
	"github.com/gonewx/powerlawn/pkg/components"
	"github.com/gonewx/powerlawn/pkg/ecs"
)

// TrailSystem 割草轨迹系统
// 割草机移动时按固定间隔采样中心点，供渲染系统绘制割过的条带。
// 原型的做法是移动中每10帧记一个点，这里换算成时间间隔
type TrailSystem struct {
	entityManager *ecs.EntityManager
}

// NewTrailSystem 创建轨迹系统
func NewTrailSystem(em *ecs.EntityManager) *TrailSystem {
	return &TrailSystem{entityManager: em}
}

// Update 更新所有割草机的轨迹采样
func (s *TrailSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith3[*components.MowerComponent, *components.PositionComponent, *components.TrailComponent](s.entityManager)

	for _, id := range ids {
		mower, _ := ecs.GetComponent[*components.MowerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		trail, _ := ecs.GetComponent[*components.TrailComponent](s.entityManager, id)

		// 静止时不计时也不采样
		if mower.Speed <= 0 {
			continue
		}

		trail.EmitTimer += deltaTime
		if trail.EmitTimer < trail.EmitInterval {
			continue
		}
		trail.EmitTimer = 0

		trail.Points = append(trail.Points, components.TrailPoint{X: pos.X, Y: pos.Y})
		if trail.MaxPoints > 0 && len(trail.Points) > trail.MaxPoints {
			// 丢弃最旧的采样点
			trail.Points = trail.Points[len(trail.Points)-trail.MaxPoints:]
		}
	}
}
