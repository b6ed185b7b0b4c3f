package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/powerlawn/pkg/components"
	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/gonewx/powerlawn/pkg/ecs"
	"github.com/gonewx/powerlawn/pkg/game"
)

func TestMowingFlipsTileUnderMower(t *testing.T) {
	em := ecs.NewEntityManager()
	grid := newTestGrid(16, 9)
	gameState := &game.GameState{}
	system := NewMowingSystem(em, gameState, grid, rand.New(rand.NewSource(1)))

	// 停在 (5,4) 格子中心
	x, y := grid.TileCenter(5, 4)
	spawnTestMower(em, x, y, 0, 0)

	system.Update(1.0 / 60.0)

	if grid.Tiles[4][5] != components.TileMowed {
		t.Error("Tile under mower should be mowed")
	}
	if grid.MowedCount == 0 {
		t.Error("MowedCount should increase")
	}
	if gameState.Score < config.ScorePerTile {
		t.Errorf("Expected at least %d points, got %d", config.ScorePerTile, gameState.Score)
	}
}

func TestMowingRespectsCutRadius(t *testing.T) {
	em := ecs.NewEntityManager()
	grid := newTestGrid(16, 9)
	system := NewMowingSystem(em, &game.GameState{}, grid, rand.New(rand.NewSource(1)))

	x, y := grid.TileCenter(5, 4)
	spawnTestMower(em, x, y, 0, 0)

	system.Update(1.0 / 60.0)

	// 远处的格子不受影响（刀盘半径不到一格）
	if grid.Tiles[4][8] != components.TileUnmowed {
		t.Error("Distant tile should stay unmowed")
	}
	if grid.Tiles[0][0] != components.TileUnmowed {
		t.Error("Corner tile should stay unmowed")
	}
}

func TestMowingSkipsObstacles(t *testing.T) {
	em := ecs.NewEntityManager()
	grid := newTestGrid(16, 9)
	grid.Tiles[4][5] = components.TileObstacle
	grid.MowableCount--

	system := NewMowingSystem(em, &game.GameState{}, grid, rand.New(rand.NewSource(1)))

	x, y := grid.TileCenter(5, 4)
	spawnTestMower(em, x, y, 0, 0)

	system.Update(1.0 / 60.0)

	if grid.Tiles[4][5] != components.TileObstacle {
		t.Error("Obstacle tile must never be mowed")
	}
}

func TestMowingCountsTileOnlyOnce(t *testing.T) {
	em := ecs.NewEntityManager()
	grid := newTestGrid(16, 9)
	gameState := &game.GameState{}
	system := NewMowingSystem(em, gameState, grid, rand.New(rand.NewSource(1)))

	x, y := grid.TileCenter(5, 4)
	spawnTestMower(em, x, y, 0, 0)

	system.Update(1.0 / 60.0)
	countAfterFirst := grid.MowedCount
	scoreAfterFirst := gameState.Score

	// 原地再割一帧：无新格子，计数和得分不变
	system.Update(1.0 / 60.0)

	if grid.MowedCount != countAfterFirst {
		t.Errorf("Expected MowedCount unchanged (%d), got %d", countAfterFirst, grid.MowedCount)
	}
	if gameState.Score != scoreAfterFirst {
		t.Errorf("Expected score unchanged (%d), got %d", scoreAfterFirst, gameState.Score)
	}
}

func TestMowingSpawnsClippings(t *testing.T) {
	em := ecs.NewEntityManager()
	grid := newTestGrid(16, 9)
	system := NewMowingSystem(em, &game.GameState{}, grid, rand.New(rand.NewSource(1)))

	x, y := grid.TileCenter(5, 4)
	spawnTestMower(em, x, y, 0, 0)

	system.Update(1.0 / 60.0)

	clippings := ecs.GetEntitiesWith1[*components.ClippingComponent](em)
	if len(clippings) == 0 {
		t.Error("Mowing a tile should spawn clipping particles")
	}
	// 每割一格喷固定数量
	if len(clippings)%config.ClippingsPerTile != 0 {
		t.Errorf("Expected clippings in bursts of %d, got %d", config.ClippingsPerTile, len(clippings))
	}
}

func TestMowingUpdatesMowerCounter(t *testing.T) {
	em := ecs.NewEntityManager()
	grid := newTestGrid(16, 9)
	system := NewMowingSystem(em, &game.GameState{}, grid, rand.New(rand.NewSource(1)))

	x, y := grid.TileCenter(5, 4)
	id := spawnTestMower(em, x, y, 0, 0)

	system.Update(1.0 / 60.0)

	mower, _ := ecs.GetComponent[*components.MowerComponent](em, id)
	if mower.TilesMowed != grid.MowedCount {
		t.Errorf("Expected mower counter %d to match grid count %d", mower.TilesMowed, grid.MowedCount)
	}
}
