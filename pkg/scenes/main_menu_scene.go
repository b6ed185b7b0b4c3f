package scenes

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/gonewx/powerlawn/pkg/config"
	"github.com/gonewx/powerlawn/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 菜单项索引
const (
	menuItemStart = iota
	menuItemLevel
	menuItemTwoPlayer
	menuItemSound
	menuItemQuit
	menuItemCount
)

// 菜单配色
var (
	colorMenuTitle    = color.RGBA{R: 230, G: 250, B: 200, A: 255}
	colorMenuItem     = color.RGBA{R: 200, G: 210, B: 190, A: 255}
	colorMenuSelected = color.RGBA{R: 255, G: 250, B: 180, A: 255}
	colorMenuLocked   = color.RGBA{R: 130, G: 140, B: 125, A: 255}
	colorMenuHint     = color.RGBA{R: 160, G: 175, B: 150, A: 255}
)

// MainMenuScene 主菜单场景
//
// 键盘操作：上下选择、左右调整（选关/开关）、Enter 确认
type MainMenuScene struct {
	sceneManager *game.SceneManager
	gameState    *game.GameState

	levelIDs    []string // 全部关卡ID，已排序
	selected    int      // 当前选中的菜单项
	levelCursor int      // 选关光标（levelIDs 下标）

	titleFont *text.GoTextFace
	itemFont  *text.GoTextFace
	hintFont  *text.GoTextFace
}

// NewMainMenuScene 创建主菜单场景
// 选关光标初始指向最高已解锁关卡
func NewMainMenuScene(sceneManager *game.SceneManager) *MainMenuScene {
	gameState := game.GetGameState()

	levelIDs, err := config.ListLevelIDs()
	if err != nil {
		log.Errorf("[MainMenu] Failed to list levels: %v", err)
	}

	scene := &MainMenuScene{
		sceneManager: sceneManager,
		gameState:    gameState,
		levelIDs:     levelIDs,
		titleFont:    loadFont(56),
		itemFont:     loadFont(24),
		hintFont:     loadFont(15),
	}

	// 光标停在最高已解锁关卡上
	progress := gameState.GetProgressManager()
	for i, id := range levelIDs {
		if progress.IsLevelUnlocked(levelIDs, id) {
			scene.levelCursor = i
		}
	}

	// 双人开关沿用上次保存的设置
	if settings := gameState.GetSettingsManager().GetSettings(); settings != nil {
		gameState.TwoPlayer = gameState.TwoPlayer || settings.TwoPlayer
	}

	return scene
}

// Update 处理菜单输入
func (s *MainMenuScene) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		s.selected = (s.selected + menuItemCount - 1) % menuItemCount
		s.playClick()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.selected = (s.selected + 1) % menuItemCount
		s.playClick()
	}

	left := inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA)
	right := inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD)
	if left || right {
		s.adjust(right)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.activate()
	}
}

// adjust 处理左右键：选关移动光标，开关项直接翻转
func (s *MainMenuScene) adjust(forward bool) {
	switch s.selected {
	case menuItemLevel:
		if len(s.levelIDs) == 0 {
			return
		}
		if forward {
			s.levelCursor = (s.levelCursor + 1) % len(s.levelIDs)
		} else {
			s.levelCursor = (s.levelCursor + len(s.levelIDs) - 1) % len(s.levelIDs)
		}
		s.playClick()
	case menuItemTwoPlayer:
		s.toggleTwoPlayer()
	case menuItemSound:
		s.toggleSound()
	}
}

// activate 处理 Enter 键
func (s *MainMenuScene) activate() {
	switch s.selected {
	case menuItemStart, menuItemLevel:
		s.startSelectedLevel()
	case menuItemTwoPlayer:
		s.toggleTwoPlayer()
	case menuItemSound:
		s.toggleSound()
	case menuItemQuit:
		log.Infof("[MainMenu] Quit requested")
		s.gameState.RequestQuit()
	}
}

// startSelectedLevel 进入光标所在关卡；未解锁时播放撞击音提示
func (s *MainMenuScene) startSelectedLevel() {
	if len(s.levelIDs) == 0 {
		return
	}
	id := s.levelIDs[s.levelCursor]
	if !s.gameState.GetProgressManager().IsLevelUnlocked(s.levelIDs, id) {
		if audioManager := s.gameState.GetAudioManager(); audioManager != nil {
			audioManager.PlaySound(game.SoundBump)
		}
		log.Debugf("[MainMenu] Level %s is locked", id)
		return
	}
	s.playClick()
	s.sceneManager.LoadLevel(id)
}

func (s *MainMenuScene) toggleTwoPlayer() {
	s.gameState.TwoPlayer = !s.gameState.TwoPlayer
	if err := s.gameState.GetSettingsManager().SetTwoPlayer(s.gameState.TwoPlayer); err != nil {
		log.Warnf("[MainMenu] Failed to save two-player setting: %v", err)
	}
	s.playClick()
}

func (s *MainMenuScene) toggleSound() {
	settingsManager := s.gameState.GetSettingsManager()
	enabled := !settingsManager.GetSettings().SoundEnabled
	if err := settingsManager.SetSoundEnabled(enabled); err != nil {
		log.Warnf("[MainMenu] Failed to save sound setting: %v", err)
	}
	s.playClick()
}

func (s *MainMenuScene) playClick() {
	if audioManager := s.gameState.GetAudioManager(); audioManager != nil {
		audioManager.PlaySound(game.SoundClick)
	}
}

// Draw 绘制主菜单
func (s *MainMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorSceneBackground)
	s.drawBackdrop(screen)

	centerX := float64(config.GameWindowWidth) / 2
	s.drawCentered(screen, "POWERLAWN", s.titleFont, centerX, 120, colorMenuTitle)
	s.drawCentered(screen, "mow every last blade", s.hintFont, centerX, 190, colorMenuHint)

	for i, label := range s.itemLabels() {
		y := 280.0 + float64(i)*52
		clr := colorMenuItem
		if i == s.selected {
			clr = colorMenuSelected
			label = "> " + label + " <"
		}
		if i == menuItemLevel && s.selectedLevelLocked() {
			clr = colorMenuLocked
		}
		s.drawCentered(screen, label, s.itemFont, centerX, y, clr)
	}

	s.drawBestScores(screen, centerX)
	s.drawCentered(screen, "Up/Down: select   Left/Right: adjust   Enter: confirm",
		s.hintFont, centerX, float64(config.GameWindowHeight)-40, colorMenuHint)
}

// drawBackdrop 绘制菜单背景的条纹草坪
func (s *MainMenuScene) drawBackdrop(screen *ebiten.Image) {
	stripe := float32(config.TileSize)
	for i := 0; float32(i)*stripe < float32(config.GameWindowWidth); i++ {
		if i%2 == 0 {
			continue
		}
		vector.DrawFilledRect(screen, float32(i)*stripe, 0, stripe, float32(config.GameWindowHeight),
			color.RGBA{R: 44, G: 104, B: 40, A: 255}, false)
	}
}

// itemLabels 按当前状态生成各菜单项文本
func (s *MainMenuScene) itemLabels() []string {
	levelLabel := "Level: (none)"
	if len(s.levelIDs) > 0 {
		id := s.levelIDs[s.levelCursor]
		levelLabel = fmt.Sprintf("Level: %s", id)
		if s.selectedLevelLocked() {
			levelLabel += "  [locked]"
		}
	}

	twoPlayerLabel := "Two Player: OFF"
	if s.gameState.TwoPlayer {
		twoPlayerLabel = "Two Player: ON"
	}

	soundLabel := "Sound: OFF"
	if settings := s.gameState.GetSettingsManager().GetSettings(); settings != nil && settings.SoundEnabled {
		soundLabel = "Sound: ON"
	}

	return []string{"Start Mowing", levelLabel, twoPlayerLabel, soundLabel, "Quit"}
}

// selectedLevelLocked 光标所在关卡是否未解锁
func (s *MainMenuScene) selectedLevelLocked() bool {
	if len(s.levelIDs) == 0 {
		return false
	}
	return !s.gameState.GetProgressManager().IsLevelUnlocked(s.levelIDs, s.levelIDs[s.levelCursor])
}

// drawBestScores 显示光标所在关卡的最佳成绩（gdata 进度 + SQLite 最高分）
func (s *MainMenuScene) drawBestScores(screen *ebiten.Image, centerX float64) {
	if len(s.levelIDs) == 0 || s.hintFont == nil {
		return
	}
	id := s.levelIDs[s.levelCursor]
	progress := s.gameState.GetProgressManager()

	parts := ""
	if percent, ok := progress.BestPercentFor(id); ok {
		parts = fmt.Sprintf("best %.1f%%", percent)
	}
	if best, ok := progress.BestTimeFor(id); ok {
		if parts != "" {
			parts += "   "
		}
		parts += fmt.Sprintf("fastest %02d:%02d", int(best)/60, int(best)%60)
	}
	if store := s.gameState.GetScoreStore(); store != nil {
		if high, err := store.HighScore(id); err == nil && high > 0 {
			if parts != "" {
				parts += "   "
			}
			parts += fmt.Sprintf("high score %d", high)
		}
	}
	if parts == "" {
		return
	}
	s.drawCentered(screen, fmt.Sprintf("%s: %s", id, parts), s.hintFont, centerX,
		280+float64(menuItemCount)*52+16, colorMenuHint)
}

// drawCentered 以 x 为中心绘制一行文字
func (s *MainMenuScene) drawCentered(screen *ebiten.Image, str string, face *text.GoTextFace, centerX, y float64, clr color.Color) {
	if face == nil {
		return
	}
	w, _ := text.Measure(str, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX-w/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
