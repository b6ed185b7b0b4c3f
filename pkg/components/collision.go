package components

// CollisionComponent 定义实体的碰撞检测边界框
// 用于移动系统检测割草机与障碍物格子的碰撞
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度（像素）
	Height  float64 // 碰撞盒高度（像素）
	OffsetX float64 // 碰撞盒相对于实体中心的X偏移量（像素），正值向右偏移
	OffsetY float64 // 碰撞盒相对于实体中心的Y偏移量（像素），正值向下偏移
}
