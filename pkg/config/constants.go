package config

// 布局与手感常量
// 本文件定义窗口尺寸、草坪网格规格和割草机的默认运动参数。
// 运动参数换算自 60 帧定步长下的每帧增量（转向 1 度/帧，加速 0.1 像素/帧）

const (
	// GameWindowWidth 游戏逻辑屏幕宽度（像素）
	GameWindowWidth = 1280
	// GameWindowHeight 游戏逻辑屏幕高度（像素）
	GameWindowHeight = 720

	// TileSize 草坪格子边长（像素）
	// 1280x720 的窗口正好容纳 16x9 个格子
	TileSize = 80.0

	// DefaultGridCols 关卡未指定时的默认列数
	DefaultGridCols = 16
	// DefaultGridRows 关卡未指定时的默认行数
	DefaultGridRows = 9

	// MowerTurnSpeed 割草机转向速率（度/秒）
	MowerTurnSpeed = 60.0
	// MowerAccel 割草机加减速速率（像素/秒²）
	MowerAccel = 360.0
	// MowerMaxSpeed 割草机速度上限（像素/秒）
	MowerMaxSpeed = 300.0
	// MowerCutRadius 刀盘切割半径（像素）
	// 略大于半格，保证擦边经过的格子也能割到
	MowerCutRadius = 44.0
	// MowerBodySize 割草机车身边长（像素），用于碰撞盒和贴图
	MowerBodySize = 48.0

	// TrailEmitInterval 轨迹采样间隔（秒）
	// 原型为移动中每10帧记一个点，换算为 1/6 秒
	TrailEmitInterval = 10.0 / 60.0
	// TrailMaxPoints 单条轨迹的采样点上限
	TrailMaxPoints = 2048
	// TrailStripWidth 轨迹条带宽度（像素）
	TrailStripWidth = 56.0

	// ClippingLifetime 草屑粒子生命周期（秒）
	ClippingLifetime = 0.8
	// ClippingsPerTile 每割一格喷出的草屑数量
	ClippingsPerTile = 6

	// ScorePerTile 每割一格的基础得分
	ScorePerTile = 10
	// TimeBonusPerSecond 限时关卡剩余每秒的通关加分
	TimeBonusPerSecond = 5

	// FixedDeltaTime 固定更新步长（秒），Ebitengine 默认 60 TPS
	FixedDeltaTime = 1.0 / 60.0
)

// GridOrigin 计算让 cols x rows 的网格在窗口中居中的左上角世界坐标
func GridOrigin(cols, rows int) (float64, float64) {
	originX := (float64(GameWindowWidth) - float64(cols)*TileSize) / 2
	originY := (float64(GameWindowHeight) - float64(rows)*TileSize) / 2
	return originX, originY
}
