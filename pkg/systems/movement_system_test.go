package systems

import (
	"testing"

	"github.com/gonewx/powerlawn/pkg/components"
	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/gonewx/powerlawn/pkg/ecs"
	"github.com/gonewx/powerlawn/pkg/game"
)

// newTestGrid 构造一个居中的 cols x rows 测试网格
func newTestGrid(cols, rows int) *components.LawnGridComponent {
	originX, originY := config.GridOrigin(cols, rows)
	tiles := make([][]components.TileState, rows)
	for row := range tiles {
		tiles[row] = make([]components.TileState, cols)
	}
	return &components.LawnGridComponent{
		Cols:         cols,
		Rows:         rows,
		TileSize:     config.TileSize,
		OriginX:      originX,
		OriginY:      originY,
		Tiles:        tiles,
		MowableCount: cols * rows,
	}
}

// spawnTestMower 创建带位置和碰撞盒的割草机实体
func spawnTestMower(em *ecs.EntityManager, x, y, headingDeg, speed float64) ecs.EntityID {
	id := em.CreateEntity()
	mower := newTestMower()
	mower.HeadingDeg = headingDeg
	mower.Speed = speed
	ecs.AddComponent(em, id, mower)
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  config.MowerBodySize,
		Height: config.MowerBodySize,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{})
	return id
}

func TestMovementStraightLine(t *testing.T) {
	em := ecs.NewEntityManager()
	grid := newTestGrid(16, 9)
	system := NewMovementSystem(em, &game.GameState{}, grid)

	// 朝右以 100 px/s 行驶 1 秒
	id := spawnTestMower(em, 200, 360, 0, 100)
	system.Update(1.0)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 300 || pos.Y != 360 {
		t.Errorf("Expected position (300,360), got (%f,%f)", pos.X, pos.Y)
	}
}

func TestMovementStopsAtObstacle(t *testing.T) {
	em := ecs.NewEntityManager()
	grid := newTestGrid(16, 9)
	// 第4列第4行放一块石头
	grid.Tiles[4][4] = components.TileObstacle

	system := NewMovementSystem(em, &game.GameState{}, grid)

	// 从石头左侧的格子中心向右行驶
	startX, startY := grid.TileCenter(3, 4)
	id := spawnTestMower(em, startX, startY, 0, 200)

	// 多帧推进，撞上石头后停车
	for i := 0; i < 60; i++ {
		system.Update(1.0 / 60.0)
	}

	mower, _ := ecs.GetComponent[*components.MowerComponent](em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

	if mower.Speed != 0 {
		t.Errorf("Expected mower stopped at obstacle, speed %f", mower.Speed)
	}

	// 车身不会越进石头格：碰撞盒右缘不超过石头格左缘
	rockLeft := grid.OriginX + 4*grid.TileSize
	if pos.X+config.MowerBodySize/2 > rockLeft+1e-9 {
		t.Errorf("Mower overlaps obstacle: right edge %f, rock left edge %f",
			pos.X+config.MowerBodySize/2, rockLeft)
	}
}

func TestMovementSlidesAlongObstacle(t *testing.T) {
	em := ecs.NewEntityManager()
	grid := newTestGrid(16, 9)
	grid.Tiles[4][4] = components.TileObstacle

	system := NewMovementSystem(em, &game.GameState{}, grid)

	// 斜向（45度，右上）撞石头：X轴被挡、Y轴继续滑动
	startX, startY := grid.TileCenter(3, 4)
	id := spawnTestMower(em, startX, startY, 45, 200)

	system.Update(1.0 / 60.0)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.Y >= startY {
		t.Errorf("Expected Y to decrease while sliding up, start %f got %f", startY, pos.Y)
	}
}

func TestMovementClampedToWindow(t *testing.T) {
	em := ecs.NewEntityManager()
	grid := newTestGrid(16, 9)
	system := NewMovementSystem(em, &game.GameState{}, grid)

	// 贴着左边界向左行驶
	id := spawnTestMower(em, 5, 360, 180, 300)
	system.Update(1.0)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X < 0 {
		t.Errorf("Expected X clamped to window, got %f", pos.X)
	}
}

func TestMovementSyncsSpriteRotation(t *testing.T) {
	em := ecs.NewEntityManager()
	grid := newTestGrid(16, 9)
	system := NewMovementSystem(em, &game.GameState{}, grid)

	id := spawnTestMower(em, 400, 360, 135, 0)
	system.Update(1.0 / 60.0)

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.RotationDeg != 135 {
		t.Errorf("Expected sprite rotation 135, got %f", sprite.RotationDeg)
	}
}
