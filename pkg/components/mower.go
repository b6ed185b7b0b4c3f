package components

import "github.com/hajimehoshi/ebiten/v2"

// MowerComponent 割草机组件
// 保存玩家控制的割草机的运动状态和按键绑定
//
// 运动模型：HeadingDeg 为朝向角（度，0 朝右，逆时针为正），
// Speed 为标量速度（像素/秒）。速度分量为
// vx = cos(-heading) * speed, vy = sin(-heading) * speed
type MowerComponent struct {
	PlayerIndex int     // 玩家编号（1 或 2）
	HeadingDeg  float64 // 当前朝向角（度）
	Speed       float64 // 当前速度（像素/秒），始终 >= 0
	TurnSpeed   float64 // 转向速率（度/秒）
	Accel       float64 // 加减速速率（像素/秒²）
	MaxSpeed    float64 // 速度上限（像素/秒）
	CutRadius   float64 // 刀盘切割半径（像素）
	TilesMowed  int     // 本局已割格子数（计分用）

	// 按键绑定（玩家1方向键，玩家2 WASD）
	KeyUp    ebiten.Key
	KeyDown  ebiten.Key
	KeyLeft  ebiten.Key
	KeyRight ebiten.Key
}
