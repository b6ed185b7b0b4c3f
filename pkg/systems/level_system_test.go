package systems

import (
	"testing"

	"github.com/gonewx/powerlawn/pkg/components"
	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/gonewx/powerlawn/pkg/ecs"
	"github.com/gonewx/powerlawn/pkg/game"
)

// newLevelFixture 构造关卡系统测试环境
func newLevelFixture(targetPercent, timeLimit float64) (*LevelSystem, *game.GameState, *components.LawnGridComponent) {
	grid := newTestGrid(4, 3) // 12 格
	gameState := &game.GameState{
		Phase: game.PhasePlaying,
		CurrentLevel: &config.LevelConfig{
			ID:            "1-1",
			Name:          "Test",
			Cols:          4,
			Rows:          3,
			TargetPercent: targetPercent,
			TimeLimit:     timeLimit,
		},
	}
	system := NewLevelSystem(ecs.NewEntityManager(), gameState, grid)
	return system, gameState, grid
}

func TestLevelElapsedTimeAccumulates(t *testing.T) {
	system, gameState, _ := newLevelFixture(100, 0)

	for i := 0; i < 90; i++ {
		system.Update(1.0 / 60.0)
	}

	if gameState.ElapsedTime < 1.49 || gameState.ElapsedTime > 1.51 {
		t.Errorf("Expected ~1.5s elapsed, got %f", gameState.ElapsedTime)
	}
	if gameState.Phase != game.PhasePlaying {
		t.Error("Level should still be in progress")
	}
}

func TestLevelWinAtTargetPercent(t *testing.T) {
	system, gameState, grid := newLevelFixture(50, 0)

	var endedWon bool
	var callbackCount int
	system.SetLevelEndCallback(func(won bool) {
		endedWon = won
		callbackCount++
	})

	// 割到 6/12 = 50%
	grid.MowedCount = 6
	system.Update(1.0 / 60.0)

	if gameState.Phase != game.PhaseWon {
		t.Errorf("Expected PhaseWon, got %v", gameState.Phase)
	}
	if !endedWon {
		t.Error("Callback should report a win")
	}

	// 继续推进不会二次触发
	system.Update(1.0 / 60.0)
	if callbackCount != 1 {
		t.Errorf("Expected callback exactly once, got %d", callbackCount)
	}
}

func TestLevelWinTimeBonus(t *testing.T) {
	system, gameState, grid := newLevelFixture(100, 60)

	// 先推进 10 秒
	for i := 0; i < 600; i++ {
		system.Update(1.0 / 60.0)
	}

	grid.MowedCount = 12
	scoreBefore := gameState.Score
	system.Update(1.0 / 60.0)

	if gameState.Phase != game.PhaseWon {
		t.Fatalf("Expected PhaseWon, got %v", gameState.Phase)
	}

	// 剩余约 50 秒，按整秒发放加分
	bonus := gameState.Score - scoreBefore
	if bonus < 49*config.TimeBonusPerSecond || bonus > 50*config.TimeBonusPerSecond {
		t.Errorf("Expected time bonus around %d, got %d", 50*config.TimeBonusPerSecond, bonus)
	}
}

func TestLevelWinWithoutTimeLimitNoBonus(t *testing.T) {
	system, gameState, grid := newLevelFixture(100, 0)

	grid.MowedCount = 12
	system.Update(1.0 / 60.0)

	if gameState.Phase != game.PhaseWon {
		t.Fatalf("Expected PhaseWon, got %v", gameState.Phase)
	}
	if gameState.Score != 0 {
		t.Errorf("Untimed level should grant no time bonus, got %d", gameState.Score)
	}
}

func TestLevelLoseOnTimeout(t *testing.T) {
	system, gameState, _ := newLevelFixture(100, 1)

	var endedWon = true
	system.SetLevelEndCallback(func(won bool) {
		endedWon = won
	})

	// 推进超过时限
	for i := 0; i < 120; i++ {
		system.Update(1.0 / 60.0)
	}

	if gameState.Phase != game.PhaseLost {
		t.Errorf("Expected PhaseLost, got %v", gameState.Phase)
	}
	if endedWon {
		t.Error("Callback should report a loss")
	}
}

func TestLevelExactTargetBoundary(t *testing.T) {
	// 刚好达标也算胜利（>= 而不是 >）
	system, gameState, grid := newLevelFixture(90, 0)

	grid.MowedCount = 11 // 11/12 = 91.7%
	system.Update(1.0 / 60.0)
	if gameState.Phase != game.PhaseWon {
		t.Errorf("Expected win above target, got %v", gameState.Phase)
	}
}
