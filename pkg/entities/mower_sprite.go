package entities

import (
	"image/color"

	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BuildMowerSprite 程序化绘制割草机贴图
// 项目不携带图片素材，车体在启动时用矢量图形画进离屏图像。
// 贴图默认朝右（与朝向角 0 度一致）
//
// 注意：本函数创建 GPU 图像，只能在 Ebitengine 启动后的渲染环境中调用，
// 单元测试中应传 nil 贴图
func BuildMowerSprite(playerIndex int) *ebiten.Image {
	size := int(config.MowerBodySize)
	img := ebiten.NewImage(size, size)

	bodyColor := color.RGBA{R: 200, G: 40, B: 40, A: 255} // 玩家1红色车身
	if playerIndex == 2 {
		bodyColor = color.RGBA{R: 40, G: 80, B: 200, A: 255} // 玩家2蓝色车身
	}

	cx := float32(size) / 2
	cy := float32(size) / 2

	// 刀盘（深灰圆底）
	vector.DrawFilledCircle(img, cx, cy, float32(size)/2-2, color.RGBA{R: 60, G: 60, B: 60, A: 255}, true)
	// 车身（居中矩形，前端略短露出刀盘）
	vector.DrawFilledRect(img, 6, float32(size)/2-12, float32(size)-16, 24, bodyColor, true)
	// 手柄（车尾两条短杆，贴图朝右因此在左侧）
	handleColor := color.RGBA{R: 30, G: 30, B: 30, A: 255}
	vector.StrokeLine(img, 2, cy-10, 10, cy-4, 3, handleColor, true)
	vector.StrokeLine(img, 2, cy+10, 10, cy+4, 3, handleColor, true)
	// 车头方向标记（右侧浅色三角改用小矩形近似）
	vector.DrawFilledRect(img, float32(size)-12, float32(size)/2-5, 8, 10, color.RGBA{R: 255, G: 220, B: 80, A: 255}, true)

	return img
}
