package components

// ClippingComponent 草屑粒子组件
// 割到新格子时从刀盘喷出的小方块，向外飞散并随生命周期淡出
// 与 PositionComponent 和 LifetimeComponent 配合使用
type ClippingComponent struct {
	VelX     float64  // X方向速度（像素/秒）
	VelY     float64  // Y方向速度（像素/秒）
	Drag     float64  // 速度衰减系数（每秒），模拟空气阻力
	Size     float64  // 粒子边长（像素）
	Color    [4]uint8 // RGBA 颜色
	RotDeg   float64  // 当前旋转角（度）
	RotSpeed float64  // 旋转速率（度/秒）
}
