package systems

import (
	"fmt"
	"image/color"

	"github.com/gonewx/powerlawn/pkg/components"
	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/gonewx/powerlawn/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD 布局常量
const (
	hudMargin          = 12.0
	hudBarWidth        = 320.0
	hudBarHeight       = 18.0
	hudOverlayDimAlpha = 160
)

// HUDRenderSystem 界面渲染系统
//
// 职责：
//   - 左上角：关卡名与得分
//   - 顶部中央：割草进度条
//   - 右上角：限时倒计时（或已用时间）
//   - 暂停/胜利/失败时的全屏遮罩与提示
type HUDRenderSystem struct {
	gameState *game.GameState
	grid      *components.LawnGridComponent
	titleFont *text.GoTextFace // 大号字体（遮罩标题）
	hudFont   *text.GoTextFace // 常规字体（状态栏与提示）
}

// NewHUDRenderSystem 创建界面渲染系统
func NewHUDRenderSystem(gs *game.GameState, grid *components.LawnGridComponent, titleFont, hudFont *text.GoTextFace) *HUDRenderSystem {
	return &HUDRenderSystem{
		gameState: gs,
		grid:      grid,
		titleFont: titleFont,
		hudFont:   hudFont,
	}
}

// Draw 绘制一帧 HUD
func (s *HUDRenderSystem) Draw(screen *ebiten.Image) {
	s.drawStatusBar(screen)

	switch {
	case s.gameState.Phase == game.PhaseWon:
		s.drawOverlay(screen, "LAWN COMPLETE!",
			fmt.Sprintf("Score: %d   Time: %s", s.gameState.Score, formatClock(s.gameState.ElapsedTime)),
			"Enter: next level   R: replay   M: menu")
	case s.gameState.Phase == game.PhaseLost:
		s.drawOverlay(screen, "OUT OF TIME",
			fmt.Sprintf("Mowed %.1f%% of the lawn", s.mowedPercent()),
			"R: retry   M: menu")
	case s.gameState.IsPaused:
		s.drawOverlay(screen, "PAUSED", "", "ESC: resume   M: menu")
	}
}

// drawStatusBar 绘制顶部状态栏
func (s *HUDRenderSystem) drawStatusBar(screen *ebiten.Image) {
	if s.hudFont == nil {
		return
	}
	level := s.gameState.CurrentLevel

	// 左上角：关卡名与得分
	if level != nil {
		s.drawText(screen, fmt.Sprintf("%s  %s", level.ID, level.Name), s.hudFont, hudMargin, hudMargin, colorHUDText)
	}
	s.drawText(screen, fmt.Sprintf("Score: %d", s.gameState.Score), s.hudFont, hudMargin, hudMargin+22, colorHUDText)

	// 顶部中央：进度条
	barX := (config.GameWindowWidth - hudBarWidth) / 2
	percent := s.mowedPercent()
	vector.DrawFilledRect(screen, float32(barX), hudMargin, hudBarWidth, hudBarHeight, color.RGBA{A: 120}, false)
	vector.DrawFilledRect(screen, float32(barX), hudMargin, float32(hudBarWidth*percent/100), hudBarHeight, color.RGBA{R: 150, G: 220, B: 90, A: 255}, false)
	vector.StrokeRect(screen, float32(barX), hudMargin, hudBarWidth, hudBarHeight, 1, color.RGBA{R: 20, G: 50, B: 16, A: 255}, false)
	s.drawText(screen, fmt.Sprintf("%.1f%%", percent), s.hudFont, barX+hudBarWidth+10, hudMargin, colorHUDText)

	// 右上角：倒计时或已用时间
	var clock string
	if level != nil && level.TimeLimit > 0 {
		remaining := level.TimeLimit - s.gameState.ElapsedTime
		if remaining < 0 {
			remaining = 0
		}
		clock = formatClock(remaining)
	} else {
		clock = formatClock(s.gameState.ElapsedTime)
	}
	w, _ := text.Measure(clock, s.hudFont, 0)
	s.drawText(screen, clock, s.hudFont, config.GameWindowWidth-hudMargin-w, hudMargin, colorHUDText)
}

// drawOverlay 绘制全屏遮罩与居中文字
func (s *HUDRenderSystem) drawOverlay(screen *ebiten.Image, title, detail, hint string) {
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight,
		color.RGBA{A: hudOverlayDimAlpha}, false)

	centerY := float64(config.GameWindowHeight) / 2
	if s.titleFont != nil {
		s.drawTextCentered(screen, title, s.titleFont, centerY-60, color.RGBA{R: 255, G: 250, B: 220, A: 255})
	}
	if s.hudFont != nil {
		if detail != "" {
			s.drawTextCentered(screen, detail, s.hudFont, centerY+4, colorHUDText)
		}
		if hint != "" {
			s.drawTextCentered(screen, hint, s.hudFont, centerY+40, color.RGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
}

var colorHUDText = color.RGBA{R: 245, G: 245, B: 235, A: 255}

// drawText 在指定位置绘制文字（左上角锚点）
func (s *HUDRenderSystem) drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawTextCentered 水平居中绘制文字
func (s *HUDRenderSystem) drawTextCentered(screen *ebiten.Image, str string, face *text.GoTextFace, y float64, clr color.Color) {
	w, _ := text.Measure(str, face, 0)
	s.drawText(screen, str, face, (config.GameWindowWidth-w)/2, y, clr)
}

// formatClock 将秒数格式化为 mm:ss
func formatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// mowedPercent 返回当前割草率（网格缺失时为 0）
func (s *HUDRenderSystem) mowedPercent() float64 {
	if s.grid == nil {
		return 0
	}
	return s.grid.MowedPercent()
}
