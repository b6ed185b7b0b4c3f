package entities

import (
	"testing"

	"github.com/gonewx/powerlawn/pkg/components"
	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/gonewx/powerlawn/pkg/ecs"
)

func testLevel() *config.LevelConfig {
	return &config.LevelConfig{
		ID:            "1-1",
		Name:          "Test",
		Cols:          16,
		Rows:          9,
		TargetPercent: 100,
		Obstacles: []config.TileRef{
			{Col: 4, Row: 2},
			{Col: 8, Row: 4},
		},
		MowerStarts: []config.MowerStart{
			{Col: 0, Row: 0, Heading: 0},
			{Col: 0, Row: 8, Heading: 0},
		},
	}
}

func TestNewLawnGrid(t *testing.T) {
	em := ecs.NewEntityManager()
	level := testLevel()

	id, grid := NewLawnGrid(em, level)

	if !em.IsAlive(id) {
		t.Fatal("Grid entity should exist")
	}
	if grid.Cols != 16 || grid.Rows != 9 {
		t.Errorf("Expected 16x9 grid, got %dx%d", grid.Cols, grid.Rows)
	}

	// 障碍物格子已标记
	if grid.Tiles[2][4] != components.TileObstacle {
		t.Error("Tile (4,2) should be an obstacle")
	}
	if grid.Tiles[4][8] != components.TileObstacle {
		t.Error("Tile (8,4) should be an obstacle")
	}
	if grid.Tiles[0][0] != components.TileUnmowed {
		t.Error("Tile (0,0) should start unmowed")
	}

	// 可割总数扣除障碍物
	if grid.MowableCount != 16*9-2 {
		t.Errorf("Expected %d mowable tiles, got %d", 16*9-2, grid.MowableCount)
	}
	if grid.MowedCount != 0 {
		t.Errorf("Expected no mowed tiles at start, got %d", grid.MowedCount)
	}

	// 满屏网格原点在窗口左上角
	if grid.OriginX != 0 || grid.OriginY != 0 {
		t.Errorf("Expected origin (0,0), got (%f,%f)", grid.OriginX, grid.OriginY)
	}

	// 组件可通过 ECS 查询到
	queried, ok := ecs.GetComponent[*components.LawnGridComponent](em, id)
	if !ok || queried != grid {
		t.Error("Grid component should be retrievable from entity manager")
	}
}
