package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gonewx/powerlawn/pkg/components"
	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/gonewx/powerlawn/pkg/ecs"
	"github.com/gonewx/powerlawn/pkg/game"
	"github.com/gonewx/powerlawn/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteImage 用于绘制带旋转的纯色矩形（草屑粒子）
// 取 3x3 中心 1x1 子图，避免线性采样吃到边缘
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.White)
}

// 草坪配色
var (
	colorUnmowedA = color.RGBA{R: 62, G: 142, B: 50, A: 255}  // 未割（深）
	colorUnmowedB = color.RGBA{R: 70, G: 152, B: 56, A: 255}  // 未割（浅，棋盘错色）
	colorMowedA   = color.RGBA{R: 128, G: 192, B: 92, A: 255} // 已割（深）
	colorMowedB   = color.RGBA{R: 140, G: 202, B: 100, A: 255}
	colorRock     = color.RGBA{R: 130, G: 126, B: 118, A: 255}
	colorRockHi   = color.RGBA{R: 168, G: 164, B: 154, A: 255}
	colorRut      = color.RGBA{R: 96, G: 78, B: 44, A: 255} // 车辙
)

// RenderSystem 游戏世界渲染系统
//
// 绘制顺序（自底向上）：
//  1. 草坪格子（未割/已割/障碍物）
//  2. 车辙轨迹
//  3. 草屑粒子
//  4. 割草机
//  5. 调试叠加层（F3）
type RenderSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	grid          *components.LawnGridComponent
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, gs *game.GameState, grid *components.LawnGridComponent) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		gameState:     gs,
		grid:          grid,
	}
}

// Draw 绘制一帧游戏世界
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawLawn(screen)
	s.drawTrails(screen)
	s.drawClippings(screen)
	s.drawMowers(screen)

	if s.gameState.DebugDraw {
		s.drawDebugOverlay(screen)
	}
}

// drawLawn 绘制草坪格子
func (s *RenderSystem) drawLawn(screen *ebiten.Image) {
	if s.grid == nil {
		return
	}

	ts := float32(s.grid.TileSize)
	for row := 0; row < s.grid.Rows; row++ {
		for col := 0; col < s.grid.Cols; col++ {
			x := float32(s.grid.OriginX) + float32(col)*ts
			y := float32(s.grid.OriginY) + float32(row)*ts

			checker := (col+row)%2 == 0
			var clr color.RGBA
			switch s.grid.Tiles[row][col] {
			case components.TileMowed:
				clr = colorMowedA
				if checker {
					clr = colorMowedB
				}
			case components.TileObstacle:
				// 障碍物格子底色用已割色，石头画在上面
				clr = colorMowedA
			default:
				clr = colorUnmowedA
				if checker {
					clr = colorUnmowedB
				}
			}
			vector.DrawFilledRect(screen, x, y, ts, ts, clr, false)

			if s.grid.Tiles[row][col] == components.TileObstacle {
				cx := x + ts/2
				cy := y + ts/2
				vector.DrawFilledCircle(screen, cx, cy, ts*0.34, colorRock, true)
				vector.DrawFilledCircle(screen, cx-ts*0.1, cy-ts*0.1, ts*0.16, colorRockHi, true)
			}
		}
	}
}

// drawTrails 绘制割草机车辙
// 每段轨迹画两条平行细线，模拟左右轮印
func (s *RenderSystem) drawTrails(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.TrailComponent, *components.PositionComponent](s.entityManager)

	for _, id := range ids {
		trail, _ := ecs.GetComponent[*components.TrailComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		// 末尾补上当前位置，轨迹始终连到车底
		points := trail.Points
		if len(points) == 0 {
			continue
		}
		last := components.TrailPoint{X: pos.X, Y: pos.Y}

		prev := points[0]
		for i := 1; i <= len(points); i++ {
			var cur components.TrailPoint
			if i < len(points) {
				cur = points[i]
			} else {
				cur = last
			}
			s.drawRutSegment(screen, prev, cur, trail.StripWidth)
			prev = cur
		}
	}
}

// drawRutSegment 绘制一段车辙（两条平行线）
func (s *RenderSystem) drawRutSegment(screen *ebiten.Image, a, b components.TrailPoint, stripWidth float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Hypot(dx, dy)
	if length < 1 {
		return
	}

	// 单位法向量，车辙间距为条带宽度的 60%
	nx := -dy / length * stripWidth * 0.3
	ny := dx / length * stripWidth * 0.3

	vector.StrokeLine(screen,
		float32(a.X+nx), float32(a.Y+ny),
		float32(b.X+nx), float32(b.Y+ny),
		3, colorRut, false)
	vector.StrokeLine(screen,
		float32(a.X-nx), float32(a.Y-ny),
		float32(b.X-nx), float32(b.Y-ny),
		3, colorRut, false)
}

// drawClippings 绘制草屑粒子（随生命周期淡出的旋转小方块）
func (s *RenderSystem) drawClippings(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith2[*components.ClippingComponent, *components.PositionComponent](s.entityManager)

	src := whiteImage.SubImage(whiteImage.Bounds().Inset(1)).(*ebiten.Image)
	for _, id := range ids {
		clipping, _ := ecs.GetComponent[*components.ClippingComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		alpha := 1.0
		if lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id); ok && lifetime.MaxLifetime > 0 {
			alpha = 1 - lifetime.CurrentLifetime/lifetime.MaxLifetime
			alpha = utils.Clamp(alpha, 0, 1)
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(clipping.Size, clipping.Size)
		op.GeoM.Translate(-clipping.Size/2, -clipping.Size/2)
		op.GeoM.Rotate(clipping.RotDeg * math.Pi / 180)
		op.GeoM.Translate(pos.X, pos.Y)
		op.ColorScale.Scale(
			float32(clipping.Color[0])/255,
			float32(clipping.Color[1])/255,
			float32(clipping.Color[2])/255,
			1,
		)
		op.ColorScale.ScaleAlpha(float32(alpha))
		screen.DrawImage(src, op)
	}
}

// drawMowers 绘制割草机（贴图围绕中心旋转）
func (s *RenderSystem) drawMowers(screen *ebiten.Image) {
	ids := ecs.GetEntitiesWith3[*components.MowerComponent, *components.PositionComponent, *components.SpriteComponent](s.entityManager)

	for _, id := range ids {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if sprite.Image == nil {
			continue
		}

		bounds := sprite.Image.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
		// 朝向角逆时针为正，屏幕Y轴向下，因此取负
		op.GeoM.Rotate(-sprite.RotationDeg * math.Pi / 180)
		op.GeoM.Translate(pos.X, pos.Y)
		screen.DrawImage(sprite.Image, op)
	}
}

// drawDebugOverlay 绘制调试叠加层（F3）
// 原型同款：碰撞盒、朝向向量，外加网格线和帧率
func (s *RenderSystem) drawDebugOverlay(screen *ebiten.Image) {
	// 网格线
	if s.grid != nil {
		ts := float32(s.grid.TileSize)
		ox := float32(s.grid.OriginX)
		oy := float32(s.grid.OriginY)
		w := float32(s.grid.Cols) * ts
		h := float32(s.grid.Rows) * ts
		gridColor := color.RGBA{R: 255, G: 255, B: 255, A: 60}
		for col := 0; col <= s.grid.Cols; col++ {
			x := ox + float32(col)*ts
			vector.StrokeLine(screen, x, oy, x, oy+h, 1, gridColor, false)
		}
		for row := 0; row <= s.grid.Rows; row++ {
			y := oy + float32(row)*ts
			vector.StrokeLine(screen, ox, y, ox+w, y, 1, gridColor, false)
		}
	}

	// 碰撞盒与朝向向量
	ids := ecs.GetEntitiesWith2[*components.MowerComponent, *components.PositionComponent](s.entityManager)
	for _, id := range ids {
		mower, _ := ecs.GetComponent[*components.MowerComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		if box, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
			vector.StrokeRect(screen,
				float32(pos.X+box.OffsetX-box.Width/2),
				float32(pos.Y+box.OffsetY-box.Height/2),
				float32(box.Width), float32(box.Height),
				1, color.RGBA{B: 255, A: 255}, false)
		}

		vx, vy := utils.HeadingVector(mower.HeadingDeg, mower.Speed)
		vector.StrokeLine(screen,
			float32(pos.X), float32(pos.Y),
			float32(pos.X+vx*0.5), float32(pos.Y+vy*0.5),
			2, color.RGBA{R: 255, A: 255}, false)

		// 刀盘范围
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(mower.CutRadius), 1, color.RGBA{R: 255, G: 255, A: 180}, true)
	}

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("TPS: %0.1f  FPS: %0.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		4, config.GameWindowHeight-18)
}
