package components

// TileState 草坪格子状态
type TileState int

const (
	// TileUnmowed 未割的草
	TileUnmowed TileState = iota
	// TileMowed 已割的草
	TileMowed
	// TileObstacle 障碍物格子（石头、花坛），不可割且阻挡移动
	TileObstacle
)

// LawnGridComponent 草坪网格组件
// 挂载在一个全局实体上，保存整张草坪的格子状态
//
// Tiles 按 [row][col] 索引；OriginX/OriginY 为网格左上角的世界坐标
type LawnGridComponent struct {
	Cols     int
	Rows     int
	TileSize float64
	OriginX  float64
	OriginY  float64
	Tiles    [][]TileState

	// MowableCount 可割格子总数（不含障碍物），关卡加载时计算一次
	MowableCount int
	// MowedCount 已割格子数
	MowedCount int
}

// InBounds 检查格子坐标是否落在网格内
func (g *LawnGridComponent) InBounds(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

// TileCenter 返回指定格子中心的世界坐标
func (g *LawnGridComponent) TileCenter(col, row int) (float64, float64) {
	x := g.OriginX + (float64(col)+0.5)*g.TileSize
	y := g.OriginY + (float64(row)+0.5)*g.TileSize
	return x, y
}

// MowedPercent 返回已割比例（0~100）
// 可割格子为 0 时返回 100，避免空关卡除零
func (g *LawnGridComponent) MowedPercent() float64 {
	if g.MowableCount == 0 {
		return 100
	}
	return float64(g.MowedCount) / float64(g.MowableCount) * 100
}
