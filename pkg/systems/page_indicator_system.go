package systems

import (
	"image/color"
	"math"

	"github.com/decker502/tipcarousel/pkg/components"
	"github.com/decker502/tipcarousel/pkg/config"
	"github.com/decker502/tipcarousel/pkg/ecs"
	"github.com/decker502/tipcarousel/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// pageIndicatorFollowRate 高亮圆点跟随速度（每秒衰减率）
const pageIndicatorFollowRate = 10.0

var (
	pageDotColor       = color.RGBA{R: 255, G: 255, B: 255, A: 90}
	pageDotActiveColor = color.RGBA{R: 255, G: 255, B: 255, A: 235}
)

// PageIndicatorSystem 页码指示器系统
// Update 让高亮位置平滑跟随当前页，Draw 在屏幕底部绘制圆点
type PageIndicatorSystem struct {
	entityManager *ecs.EntityManager
}

// NewPageIndicatorSystem 创建页码指示器系统
func NewPageIndicatorSystem(em *ecs.EntityManager) *PageIndicatorSystem {
	return &PageIndicatorSystem{entityManager: em}
}

// Update 推进高亮圆点的缓动
func (s *PageIndicatorSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.PageIndicatorComponent](s.entityManager) {
		indicator, _ := ecs.GetComponent[*components.PageIndicatorComponent](s.entityManager, id)
		indicator.DisplayCurrent = utils.Approach(indicator.DisplayCurrent, float64(indicator.Current), pageIndicatorFollowRate, dt)
	}
}

// Draw 绘制页码圆点
func (s *PageIndicatorSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.PageIndicatorComponent](s.entityManager) {
		indicator, _ := ecs.GetComponent[*components.PageIndicatorComponent](s.entityManager, id)
		s.drawIndicator(screen, indicator)
	}
}

func (s *PageIndicatorSystem) drawIndicator(screen *ebiten.Image, indicator *components.PageIndicatorComponent) {
	if indicator.Total <= 1 {
		return
	}

	for i := 0; i < indicator.Total; i++ {
		x := DotCenterX(i, indicator.Total)
		vector.DrawFilledCircle(screen, float32(x), config.PageIndicatorY, config.PageIndicatorRadius, pageDotColor, true)
	}

	// 高亮圆点在相邻两点之间插值，并在移动途中略微放大
	pos := indicator.DisplayCurrent
	lo := math.Floor(pos)
	x := utils.Lerp(DotCenterX(int(lo), indicator.Total), DotCenterX(int(lo)+1, indicator.Total), utils.EaseInOutCubic(pos-lo))
	stretch := 1 + 0.35*math.Sin(math.Pi*(pos-lo))
	vector.DrawFilledCircle(screen, float32(x), config.PageIndicatorY, float32(config.PageIndicatorRadius*stretch), pageDotActiveColor, true)
}

// DotCenterX 第 index 个圆点的中心 X 坐标（圆点整体水平居中）
func DotCenterX(index, total int) float64 {
	width := float64(total-1) * config.PageIndicatorSpacing
	return float64(config.ScreenWidth)/2 - width/2 + float64(index)*config.PageIndicatorSpacing
}
