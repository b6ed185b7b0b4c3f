package config

import (
	"strings"
	"testing"
)

// 一个完整合法的关卡配置
const validLevelYAML = `
id: "1-1"
name: "Front Yard"
cols: 16
rows: 9
targetPercent: 90
timeLimit: 120
obstacles:
  - { col: 4, row: 2 }
  - { col: 8, row: 4 }
mowerStarts:
  - { col: 0, row: 0, heading: 0 }
  - { col: 0, row: 8, heading: 90 }
`

func TestParseLevelConfig(t *testing.T) {
	level, err := ParseLevelConfig([]byte(validLevelYAML), "test")
	if err != nil {
		t.Fatalf("Expected valid config, got error: %v", err)
	}

	if level.ID != "1-1" {
		t.Errorf("Expected ID 1-1, got %s", level.ID)
	}
	if level.Cols != 16 || level.Rows != 9 {
		t.Errorf("Expected 16x9 grid, got %dx%d", level.Cols, level.Rows)
	}
	if level.TargetPercent != 90 {
		t.Errorf("Expected targetPercent 90, got %f", level.TargetPercent)
	}
	if level.TimeLimit != 120 {
		t.Errorf("Expected timeLimit 120, got %f", level.TimeLimit)
	}
	if len(level.Obstacles) != 2 {
		t.Errorf("Expected 2 obstacles, got %d", len(level.Obstacles))
	}
	if len(level.MowerStarts) != 2 {
		t.Errorf("Expected 2 mower starts, got %d", len(level.MowerStarts))
	}
	if level.MowerStarts[1].Heading != 90 {
		t.Errorf("Expected second start heading 90, got %f", level.MowerStarts[1].Heading)
	}
}

func TestParseLevelConfigDefaults(t *testing.T) {
	// 只给必填字段，其余走默认值
	minimal := `
id: "1-2"
name: "Minimal"
`
	level, err := ParseLevelConfig([]byte(minimal), "test")
	if err != nil {
		t.Fatalf("Expected valid config, got error: %v", err)
	}

	if level.Cols != DefaultGridCols || level.Rows != DefaultGridRows {
		t.Errorf("Expected default %dx%d grid, got %dx%d",
			DefaultGridCols, DefaultGridRows, level.Cols, level.Rows)
	}
	if level.TargetPercent != 100 {
		t.Errorf("Expected default targetPercent 100, got %f", level.TargetPercent)
	}
	if level.TimeLimit != 0 {
		t.Errorf("Expected no time limit, got %f", level.TimeLimit)
	}
	if len(level.MowerStarts) != 2 {
		t.Fatalf("Expected 2 default mower starts, got %d", len(level.MowerStarts))
	}
	// 默认出生点：玩家1左上角，玩家2左下角
	if level.MowerStarts[0].Col != 0 || level.MowerStarts[0].Row != 0 {
		t.Errorf("Expected player 1 default start (0,0), got (%d,%d)",
			level.MowerStarts[0].Col, level.MowerStarts[0].Row)
	}
	if level.MowerStarts[1].Row != level.Rows-1 {
		t.Errorf("Expected player 2 default start row %d, got %d",
			level.Rows-1, level.MowerStarts[1].Row)
	}
}

func TestParseLevelConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			"missing id",
			`name: "No ID"`,
			"level id is required",
		},
		{
			"missing name",
			`id: "1-1"`,
			"level name is required",
		},
		{
			"too many columns",
			"id: \"1-1\"\nname: \"Wide\"\ncols: 100",
			"cols must be between",
		},
		{
			"obstacle out of bounds",
			"id: \"1-1\"\nname: \"Bad rock\"\nobstacles:\n  - { col: 99, row: 0 }",
			"outside",
		},
		{
			"start on obstacle",
			"id: \"1-1\"\nname: \"Stuck\"\nobstacles:\n  - { col: 0, row: 0 }\nmowerStarts:\n  - { col: 0, row: 0 }",
			"overlaps an obstacle",
		},
		{
			"negative time limit",
			"id: \"1-1\"\nname: \"Bad clock\"\ntimeLimit: -5",
			"timeLimit must be",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevelConfig([]byte(tt.yaml), "test")
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error containing %q, got %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestParseLevelID(t *testing.T) {
	chapter, number, err := ParseLevelID("2-3")
	if err != nil {
		t.Fatalf("Expected valid ID, got error: %v", err)
	}
	if chapter != 2 || number != 3 {
		t.Errorf("Expected (2,3), got (%d,%d)", chapter, number)
	}

	for _, bad := range []string{"", "1", "a-b", "1-2-3", "1-"} {
		if _, _, err := ParseLevelID(bad); err == nil {
			t.Errorf("Expected error for %q, got nil", bad)
		}
	}
}

func TestCompareLevelIDs(t *testing.T) {
	tests := []struct {
		a, b string
		want int // 符号即可
	}{
		{"1-1", "1-2", -1},
		{"1-2", "1-1", 1},
		{"1-1", "1-1", 0},
		{"1-9", "2-1", -1},
		{"2-1", "1-9", 1},
		{"10-1", "9-1", 1},
	}
	for _, tt := range tests {
		got := CompareLevelIDs(tt.a, tt.b)
		switch {
		case tt.want < 0 && got >= 0,
			tt.want > 0 && got <= 0,
			tt.want == 0 && got != 0:
			t.Errorf("CompareLevelIDs(%q,%q) = %d, want sign %d", tt.a, tt.b, got, tt.want)
		}
	}

	// 非法ID排在合法ID之后
	if CompareLevelIDs("1-1", "bogus") >= 0 {
		t.Error("Valid ID should sort before invalid ID")
	}
}

func TestGridOrigin(t *testing.T) {
	// 满屏网格的原点应为 (0,0)
	x, y := GridOrigin(16, 9)
	if x != 0 || y != 0 {
		t.Errorf("Expected origin (0,0) for full-screen grid, got (%f,%f)", x, y)
	}

	// 小网格居中
	x, y = GridOrigin(8, 5)
	if x != (GameWindowWidth-8*TileSize)/2 || y != (GameWindowHeight-5*TileSize)/2 {
		t.Errorf("Expected centered origin, got (%f,%f)", x, y)
	}
}
