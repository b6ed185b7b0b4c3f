package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
// 图像以实体中心为锚点绘制，可随 RotationDeg 旋转
type SpriteComponent struct {
	Image *ebiten.Image
	// RotationDeg 绘制时围绕图像中心旋转的角度（度，逆时针为正）
	RotationDeg float64
}
