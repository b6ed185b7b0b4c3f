package scenes

import (
	"bytes"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// 项目不携带字体素材，HUD 和菜单统一使用 Go Regular。
// 字体源全局共享，按需创建不同字号的 GoTextFace

var (
	fontSourceOnce sync.Once
	fontSource     *text.GoTextFaceSource
)

// loadFont 返回指定字号的字体
// 字体源加载失败时返回 nil，渲染系统对 nil 字体做空操作
func loadFont(size float64) *text.GoTextFace {
	fontSourceOnce.Do(func() {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Errorf("[Scenes] Failed to load font source: %v", err)
			return
		}
		fontSource = source
	})

	if fontSource == nil {
		return nil
	}
	return &text.GoTextFace{
		Source:    fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
}
