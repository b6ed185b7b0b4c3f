package components

// PositionComponent 存储实体中心点的世界坐标
// 本项目屏幕与世界坐标一致（无摄像机滚动），单位为像素
type PositionComponent struct {
	X float64
	Y float64
}
