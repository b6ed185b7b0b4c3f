// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供网格坐标与世界坐标的转换，以及朝向角的速度分解。
//
// # 坐标系统概述
//
//   - **世界坐标**：相对于窗口左上角（本项目无摄像机滚动，与屏幕坐标一致）
//   - **格子坐标**：草坪网格内的 (col, row)，0-based
//   - **实体锚点**：PositionComponent.X/Y 代表实体的视觉中心
//
// # 朝向角约定
//
// 朝向角以度为单位，0 度朝右，逆时针为正。屏幕Y轴向下，
// 因此速度分解为 vx = cos(-angle)、vy = sin(-angle)。
package utils

import "math"

// WorldToTile 将世界坐标转换为网格格子坐标
// originX/originY 为网格左上角世界坐标，tileSize 为格子边长
// 返回的 col/row 可能越界，调用方需自行检查
func WorldToTile(x, y, originX, originY, tileSize float64) (col, row int) {
	col = int(math.Floor((x - originX) / tileSize))
	row = int(math.Floor((y - originY) / tileSize))
	return col, row
}

// TileToWorld 返回格子中心的世界坐标
func TileToWorld(col, row int, originX, originY, tileSize float64) (x, y float64) {
	x = originX + (float64(col)+0.5)*tileSize
	y = originY + (float64(row)+0.5)*tileSize
	return x, y
}

// HeadingVector 将朝向角和标量速度分解为速度分量
// 角度约定见包文档：0 度朝右，逆时针为正，Y轴向下
func HeadingVector(headingDeg, speed float64) (vx, vy float64) {
	rad := -headingDeg * math.Pi / 180
	return math.Cos(rad) * speed, math.Sin(rad) * speed
}

// NormalizeDeg 将角度归一化到 [0, 360) 区间
func NormalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Clamp 将 v 限制在 [min, max] 区间内
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
