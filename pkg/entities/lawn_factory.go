package entities

import (
	"github.com/charmbracelet/log"
	"github.com/gonewx/powerlawn/pkg/components"
	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/gonewx/powerlawn/pkg/ecs"
)

// NewLawnGrid 根据关卡配置创建草坪网格实体
// 网格在窗口中居中；障碍物格子标记为 TileObstacle 且不计入可割总数
//
// 返回网格实体ID和组件引用（组件为指针，调用方可直接持有）
func NewLawnGrid(em *ecs.EntityManager, level *config.LevelConfig) (ecs.EntityID, *components.LawnGridComponent) {
	originX, originY := config.GridOrigin(level.Cols, level.Rows)

	tiles := make([][]components.TileState, level.Rows)
	for row := range tiles {
		tiles[row] = make([]components.TileState, level.Cols)
	}
	for _, ob := range level.Obstacles {
		tiles[ob.Row][ob.Col] = components.TileObstacle
	}

	grid := &components.LawnGridComponent{
		Cols:         level.Cols,
		Rows:         level.Rows,
		TileSize:     config.TileSize,
		OriginX:      originX,
		OriginY:      originY,
		Tiles:        tiles,
		MowableCount: level.Cols*level.Rows - len(level.Obstacles),
		MowedCount:   0,
	}

	entity := em.CreateEntity()
	ecs.AddComponent(em, entity, grid)

	log.Debugf("[LawnFactory] Created %dx%d lawn grid, %d mowable tiles, %d obstacles",
		level.Cols, level.Rows, grid.MowableCount, len(level.Obstacles))
	return entity, grid
}
