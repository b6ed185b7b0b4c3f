package components

// TrailPoint 轨迹上的单个采样点（世界坐标）
type TrailPoint struct {
	X float64
	Y float64
}

// TrailComponent 割草轨迹组件
// 割草机移动时周期性记录中心点，渲染系统将其绘制为割过的条带
type TrailComponent struct {
	Points []TrailPoint // 采样点序列，按时间先后排列
	// EmitTimer 距上次采样的累计时间（秒）
	EmitTimer float64
	// EmitInterval 采样间隔（秒），仅在移动时计时
	EmitInterval float64
	// MaxPoints 采样点上限，超过后丢弃最旧的点
	MaxPoints int
	// StripWidth 条带绘制宽度（像素）
	StripWidth float64
}
