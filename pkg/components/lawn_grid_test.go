package components

import "testing"

func makeGrid(cols, rows int) *LawnGridComponent {
	tiles := make([][]TileState, rows)
	for row := range tiles {
		tiles[row] = make([]TileState, cols)
	}
	return &LawnGridComponent{
		Cols:         cols,
		Rows:         rows,
		TileSize:     80,
		Tiles:        tiles,
		MowableCount: cols * rows,
	}
}

func TestInBounds(t *testing.T) {
	grid := makeGrid(4, 3)

	if !grid.InBounds(0, 0) || !grid.InBounds(3, 2) {
		t.Error("Corner tiles should be in bounds")
	}
	for _, tc := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}} {
		if grid.InBounds(tc[0], tc[1]) {
			t.Errorf("Tile (%d,%d) should be out of bounds", tc[0], tc[1])
		}
	}
}

func TestTileCenter(t *testing.T) {
	grid := makeGrid(4, 3)
	grid.OriginX = 100
	grid.OriginY = 40

	x, y := grid.TileCenter(0, 0)
	if x != 140 || y != 80 {
		t.Errorf("Expected center (140,80), got (%f,%f)", x, y)
	}

	x, y = grid.TileCenter(2, 1)
	if x != 100+2.5*80 || y != 40+1.5*80 {
		t.Errorf("Expected center (%f,%f), got (%f,%f)", 100+2.5*80.0, 40+1.5*80.0, x, y)
	}
}

func TestMowedPercent(t *testing.T) {
	grid := makeGrid(4, 3) // 12 mowable tiles

	if got := grid.MowedPercent(); got != 0 {
		t.Errorf("Expected 0%%, got %f", got)
	}

	grid.MowedCount = 6
	if got := grid.MowedPercent(); got != 50 {
		t.Errorf("Expected 50%%, got %f", got)
	}

	grid.MowedCount = 12
	if got := grid.MowedPercent(); got != 100 {
		t.Errorf("Expected 100%%, got %f", got)
	}
}

func TestMowedPercentEmptyGrid(t *testing.T) {
	// 可割数为 0 的空关卡视为已完成
	grid := &LawnGridComponent{}
	if got := grid.MowedPercent(); got != 100 {
		t.Errorf("Expected 100%% for empty grid, got %f", got)
	}
}
