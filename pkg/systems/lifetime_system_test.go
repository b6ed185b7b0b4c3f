package systems

import (
	"testing"

	"github.com/gonewx/powerlawn/pkg/components"
	"github.com/gonewx/powerlawn/pkg/ecs"
)

func TestLifetimeUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	// 创建测试实体
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.LifetimeComponent{
		MaxLifetime:     10.0,
		CurrentLifetime: 0,
		IsExpired:       false,
	})

	// 模拟5秒更新
	system.Update(5.0)

	// 验证生命周期增加
	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if lifetime.CurrentLifetime != 5.0 {
		t.Errorf("Expected CurrentLifetime=5.0, got %f", lifetime.CurrentLifetime)
	}
	if lifetime.IsExpired {
		t.Error("Entity should not be expired yet")
	}
}

func TestLifetimeExpiration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.LifetimeComponent{
		MaxLifetime: 10.0,
	})

	// 模拟超过最大生命周期
	system.Update(12.0)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !lifetime.IsExpired {
		t.Error("Entity should be expired")
	}

	// 过期实体在清理后移除
	em.RemoveMarkedEntities()
	if em.IsAlive(id) {
		t.Error("Expired entity should be removed")
	}
}

func TestLifetimeMultipleEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	short := em.CreateEntity()
	ecs.AddComponent(em, short, &components.LifetimeComponent{MaxLifetime: 1.0})

	long := em.CreateEntity()
	ecs.AddComponent(em, long, &components.LifetimeComponent{MaxLifetime: 10.0})

	system.Update(2.0)
	em.RemoveMarkedEntities()

	if em.IsAlive(short) {
		t.Error("Short-lived entity should be removed")
	}
	if !em.IsAlive(long) {
		t.Error("Long-lived entity should survive")
	}
}
