package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/tipcarousel/pkg/config"
	"github.com/decker502/tipcarousel/pkg/game"
	"github.com/decker502/tipcarousel/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// doneIntroDuration 勾选标记弹出动画时长（秒）
const doneIntroDuration = 0.6

var (
	doneBadgeColor = color.RGBA{R: 96, G: 190, B: 120, A: 255}
	doneTextColor  = color.RGBA{R: 240, G: 244, B: 250, A: 255}
)

// DoneScene 引导完成场景
// 显示“已完成”，点击屏幕（或按回车/空格）重新观看提示
type DoneScene struct {
	settingsManager *game.SettingsManager
	sceneManager    *game.SceneManager

	titleFace *text.GoTextFace
	hintFace  *text.GoTextFace

	elapsed float64
}

// NewDoneScene 创建引导完成场景
func NewDoneScene(deps Dependencies) *DoneScene {
	scene := &DoneScene{
		settingsManager: deps.SettingsManager,
		sceneManager:    deps.SceneManager,
	}
	if deps.ResourceManager != nil {
		scene.titleFace = loadFace(deps.ResourceManager, config.CardTitleSize+4)
		scene.hintFace = loadFace(deps.ResourceManager, config.CardSummarySize)
	}
	return scene
}

// Update 更新场景
func (s *DoneScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	// 动画结束前不响应，避免关闭轮播的那次点击直接触发重播
	if s.elapsed < doneIntroDuration {
		return
	}

	tapped, _, _ := utils.IsJustTouchedOrClicked()
	if tapped || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.replay()
	}
}

// replay 清除引导进度并回到轮播
func (s *DoneScene) replay() {
	log.Printf("[DoneScene] Replaying tips")
	if s.settingsManager != nil {
		s.settingsManager.ResetOnboarding()
		if err := s.settingsManager.Save(); err != nil {
			log.Printf("[DoneScene] Warning: failed to save settings: %v", err)
		}
	}
	if s.sceneManager != nil {
		s.sceneManager.Load(game.SceneCarousel)
	}
}

// badgeScale 勾选标记的缩放（缓出弹出）
func (s *DoneScene) badgeScale() float64 {
	return utils.EaseOutCubic(utils.Clamp01(s.elapsed / doneIntroDuration))
}

// Draw 绘制场景
func (s *DoneScene) Draw(screen *ebiten.Image) {
	screen.Fill(carouselBackgroundColor)

	cx, cy := config.ScreenCenter()
	r := float32(56 * s.badgeScale())
	if r > 0 {
		vector.DrawFilledCircle(screen, float32(cx), float32(cy-80), r, doneBadgeColor, true)
		// 勾
		w := r / 7
		vector.StrokeLine(screen, float32(cx)-r*0.45, float32(cy-80), float32(cx)-r*0.1, float32(cy-80)+r*0.35, w, doneTextColor, true)
		vector.StrokeLine(screen, float32(cx)-r*0.1, float32(cy-80)+r*0.35, float32(cx)+r*0.5, float32(cy-80)-r*0.35, w, doneTextColor, true)
	}

	if s.titleFace != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(cx, cy+10)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(doneTextColor)
		text.Draw(screen, "You're all set", s.titleFace, op)
	}
	if s.hintFace != nil && s.elapsed >= doneIntroDuration {
		op := &text.DrawOptions{}
		op.GeoM.Translate(cx, cy+60)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(carouselHintColor)
		text.Draw(screen, "Tap anywhere to see the tips again", s.hintFace, op)
	}
}
