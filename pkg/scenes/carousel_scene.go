package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/tipcarousel/pkg/carousel"
	"github.com/decker502/tipcarousel/pkg/config"
	"github.com/decker502/tipcarousel/pkg/dynamics"
	"github.com/decker502/tipcarousel/pkg/ecs"
	"github.com/decker502/tipcarousel/pkg/entities"
	"github.com/decker502/tipcarousel/pkg/game"
	"github.com/decker502/tipcarousel/pkg/systems"
	"github.com/decker502/tipcarousel/pkg/utils"
	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	carouselBackgroundColor = color.RGBA{R: 46, G: 58, B: 89, A: 255}
	carouselHintColor       = color.RGBA{R: 220, G: 226, B: 240, A: 200}
)

// CarouselScene 新手引导提示轮播场景
//
// 每帧 Update 的顺序：
//  1. 键盘快捷键（桌面端）
//  2. 手势输入 -> Controller
//  3. Controller 延迟任务（切换卡片）
//  4. 物理动画
//  5. 页码指示器缓动
//  6. 清理已销毁实体
type CarouselScene struct {
	settingsManager *game.SettingsManager
	audioManager    *game.AudioManager
	sceneManager    *game.SceneManager

	entityManager *ecs.EntityManager
	animator      *dynamics.Animator
	stage         *entities.CardStage
	controller    *carousel.Controller

	inputSystem      *systems.GestureInputSystem
	cardRenderSystem *systems.CardRenderSystem
	indicatorSystem  *systems.PageIndicatorSystem

	hintFace *text.GoTextFace
	finished bool
}

// NewCarouselScene 创建轮播场景并从 start 开始展示
func NewCarouselScene(deps Dependencies, start int) *CarouselScene {
	cfg := deps.CarouselConfig
	if cfg == nil {
		cfg = config.DefaultCarouselConfig()
	}

	em := ecs.NewEntityManager()
	cx, cy := config.ScreenCenter()

	scene := &CarouselScene{
		settingsManager: deps.SettingsManager,
		audioManager:    deps.AudioManager,
		sceneManager:    deps.SceneManager,
		entityManager:   em,
		animator:        dynamics.NewAnimator(em),
		indicatorSystem: systems.NewPageIndicatorSystem(em),
	}

	var textures entities.TextureSource
	var titleFace, summaryFace *text.GoTextFace
	if deps.ResourceManager != nil {
		textures = deps.ResourceManager
		titleFace = loadFace(deps.ResourceManager, config.CardTitleSize)
		summaryFace = loadFace(deps.ResourceManager, config.CardSummarySize)
		scene.hintFace = loadFace(deps.ResourceManager, config.CardSummarySize)
	}
	scene.cardRenderSystem = systems.NewCardRenderSystem(em, titleFace, summaryFace)

	scene.stage = entities.NewCardStage(em, textures, ebimath.V(cx, cy), cfg.Card.Width, cfg.Card.Height)
	scene.stage.OnDismiss = scene.onDismiss

	scene.controller = carousel.NewController(scene.animator, scene.stage, cfg.CarouselSettings())
	scene.controller.OnCommit = scene.onCommit
	scene.controller.OnTipShown = scene.onTipShown

	scene.inputSystem = systems.NewGestureInputSystem(utils.NewDragManager(), scene.controller)

	log.Printf("[CarouselScene] Presenting %d tips from index %d", len(deps.Tips), start)
	scene.controller.PresentFrom(deps.Tips, start)
	return scene
}

// loadFace 加载默认字体，失败时返回 nil（只绘制卡片背景）
func loadFace(rm *game.ResourceManager, size float64) *text.GoTextFace {
	face, err := rm.DefaultFace(size)
	if err != nil {
		log.Printf("[CarouselScene] Warning: failed to load font: %v", err)
		return nil
	}
	return face
}

// Update 更新场景
func (s *CarouselScene) Update(deltaTime float64) {
	s.handleKeyboard()
	s.inputSystem.Update()
	s.step(deltaTime)
}

// step 推进除输入采集以外的所有逻辑
func (s *CarouselScene) step(deltaTime float64) {
	s.controller.Update(deltaTime)
	s.animator.Update(deltaTime)
	s.indicatorSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()

	if s.finished && s.sceneManager != nil {
		s.finished = false
		s.sceneManager.Load(game.SceneDone)
	}
}

// handleKeyboard 桌面端快捷键：方向键翻页，Esc 跳过引导
func (s *CarouselScene) handleKeyboard() {
	if utils.IsMobile() {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		s.controller.Flick(carousel.DirectionForward)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		s.controller.Flick(carousel.DirectionBackward)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		log.Printf("[CarouselScene] Skipped by keyboard")
		s.controller.Dismiss()
	}
}

func (s *CarouselScene) onCommit(d carousel.Decision) {
	if s.audioManager != nil {
		s.audioManager.PlayWhoosh(d.Direction)
	}
}

func (s *CarouselScene) onTipShown(index, total int) {
	if s.settingsManager == nil {
		return
	}
	s.settingsManager.SetLastTipIndex(index)
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[CarouselScene] Warning: failed to save progress: %v", err)
	}
}

// onDismiss 所有提示已看完（或被跳过），记录引导完成
func (s *CarouselScene) onDismiss() {
	if s.settingsManager != nil {
		s.settingsManager.MarkOnboardingCompleted()
		if err := s.settingsManager.Save(); err != nil {
			log.Printf("[CarouselScene] Warning: failed to save completion: %v", err)
		}
	}
	s.finished = true
}

// Draw 绘制场景
func (s *CarouselScene) Draw(screen *ebiten.Image) {
	screen.Fill(carouselBackgroundColor)

	if s.hintFace != nil && s.controller.Active() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(config.ScreenWidth/2, 48)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(carouselHintColor)
		text.Draw(screen, "Swipe the card to continue", s.hintFace, op)
	}

	s.cardRenderSystem.Draw(screen)
	s.indicatorSystem.Draw(screen)
}

// SaveOnExit 实现 game.Saveable，窗口关闭时保存当前进度
func (s *CarouselScene) SaveOnExit() bool {
	if s.settingsManager == nil {
		return true
	}
	if err := s.settingsManager.Save(); err != nil {
		log.Printf("[CarouselScene] Failed to save on exit: %v", err)
		return false
	}
	return true
}

// Controller 返回轮播控制器（调试工具使用）
func (s *CarouselScene) Controller() *carousel.Controller {
	return s.controller
}

// EntityManager 返回场景的实体管理器（调试工具使用）
func (s *CarouselScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Animator 返回场景的物理动画引擎（调试工具使用）
func (s *CarouselScene) Animator() *dynamics.Animator {
	return s.animator
}
