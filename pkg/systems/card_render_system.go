package systems

import (
	"image/color"

	"github.com/decker502/tipcarousel/pkg/components"
	"github.com/decker502/tipcarousel/pkg/config"
	"github.com/decker502/tipcarousel/pkg/ecs"
	"github.com/decker502/tipcarousel/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 卡片配色
var (
	cardBackgroundColor  = color.RGBA{R: 250, G: 248, B: 242, A: 255}
	cardShadowColor      = color.RGBA{A: 70}
	cardImagePlaceholder = color.RGBA{R: 226, G: 222, B: 212, A: 255}
	cardTitleColor       = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	cardSummaryColor     = color.RGBA{R: 90, G: 90, B: 100, A: 255}
)

// cardCanvas 单张卡片的离屏画布及其内容签名
type cardCanvas struct {
	image *ebiten.Image

	bound   bool
	title   string
	summary string
	picture *ebiten.Image
}

func (c *cardCanvas) matches(card *components.CardComponent) bool {
	return c.bound == card.Bound && c.title == card.Title && c.summary == card.Summary && c.picture == card.Image
}

// CardRenderSystem 提示卡片渲染系统
//
// 卡片内容先绘制到离屏画布（内容变化时重绘），
// 再按 TransformComponent 的位置和旋转绘制到屏幕上。
type CardRenderSystem struct {
	entityManager *ecs.EntityManager
	titleFace     *text.GoTextFace
	summaryFace   *text.GoTextFace

	canvases map[ecs.EntityID]*cardCanvas
}

// NewCardRenderSystem 创建卡片渲染系统
// 字体可为 nil，此时只绘制卡片背景和配图
func NewCardRenderSystem(em *ecs.EntityManager, titleFace, summaryFace *text.GoTextFace) *CardRenderSystem {
	return &CardRenderSystem{
		entityManager: em,
		titleFace:     titleFace,
		summaryFace:   summaryFace,
		canvases:      make(map[ecs.EntityID]*cardCanvas),
	}
}

// Draw 渲染所有卡片
func (s *CardRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.CardComponent, *components.TransformComponent](s.entityManager)

	alive := make(map[ecs.EntityID]bool, len(entities))
	for _, id := range entities {
		alive[id] = true
		s.drawCard(screen, id)
	}

	// 释放已销毁卡片的画布
	for id, canvas := range s.canvases {
		if !alive[id] {
			canvas.image.Deallocate()
			delete(s.canvases, id)
		}
	}
}

func (s *CardRenderSystem) drawCard(screen *ebiten.Image, id ecs.EntityID) {
	card, ok := ecs.GetComponent[*components.CardComponent](s.entityManager, id)
	if !ok || card.Width <= 0 || card.Height <= 0 {
		return
	}
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	if !ok {
		return
	}

	canvas := s.canvasFor(id, card)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-card.Width/2, -card.Height/2)
	op.GeoM.Rotate(transform.Rotation)
	op.GeoM.Translate(transform.Position.X, transform.Position.Y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(canvas.image, op)
}

// canvasFor 返回卡片画布，内容变化时重绘
func (s *CardRenderSystem) canvasFor(id ecs.EntityID, card *components.CardComponent) *cardCanvas {
	canvas, exists := s.canvases[id]
	if exists && canvas.matches(card) {
		return canvas
	}
	if !exists {
		canvas = &cardCanvas{
			image: ebiten.NewImage(int(card.Width), int(card.Height)),
		}
		s.canvases[id] = canvas
	}

	canvas.bound = card.Bound
	canvas.title = card.Title
	canvas.summary = card.Summary
	canvas.picture = card.Image
	s.paint(canvas.image, card)
	return canvas
}

// paint 绘制卡片内容：背景、配图区域、标题、正文
func (s *CardRenderSystem) paint(dst *ebiten.Image, card *components.CardComponent) {
	dst.Clear()
	w, h := float32(card.Width), float32(card.Height)
	r := float32(config.CardCornerRadius)

	drawRoundedRect(dst, 2, 4, w-2, h-2, r, cardShadowColor)
	drawRoundedRect(dst, 0, 0, w-3, h-5, r, cardBackgroundColor)

	if !card.Bound {
		return
	}

	pad := config.CardPadding
	imageW := card.Width - 3 - 2*pad
	s.drawPicture(dst, card.Image, pad, pad, imageW, config.CardImageHeight)

	y := pad + config.CardImageHeight + pad
	if s.titleFace != nil {
		for _, line := range utils.WrapText(card.Title, s.titleFace, imageW) {
			op := &text.DrawOptions{}
			op.GeoM.Translate(pad, y)
			op.ColorScale.ScaleWithColor(cardTitleColor)
			text.Draw(dst, line, s.titleFace, op)
			y += s.titleFace.Size * 1.25
		}
		y += pad / 2
	}
	if s.summaryFace != nil {
		for _, line := range utils.WrapText(card.Summary, s.summaryFace, imageW) {
			if y+s.summaryFace.Size > card.Height-pad {
				break
			}
			op := &text.DrawOptions{}
			op.GeoM.Translate(pad, y)
			op.ColorScale.ScaleWithColor(cardSummaryColor)
			text.Draw(dst, line, s.summaryFace, op)
			y += s.summaryFace.Size * 1.4
		}
	}
}

// drawPicture 把配图按比例缩放并居中到指定区域；没有配图时绘制占位底色
func (s *CardRenderSystem) drawPicture(dst, picture *ebiten.Image, x, y, w, h float64) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), cardImagePlaceholder, true)
	if picture == nil {
		return
	}

	bounds := picture.Bounds()
	pw, ph := float64(bounds.Dx()), float64(bounds.Dy())
	if pw <= 0 || ph <= 0 {
		return
	}
	scale := min(w/pw, h/ph)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x+(w-pw*scale)/2, y+(h-ph*scale)/2)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(picture, op)
}

// drawRoundedRect 用两个矩形加四个圆角拼出圆角矩形
func drawRoundedRect(dst *ebiten.Image, x, y, w, h, r float32, clr color.Color) {
	if r*2 > w {
		r = w / 2
	}
	if r*2 > h {
		r = h / 2
	}
	vector.DrawFilledRect(dst, x+r, y, w-2*r, h, clr, true)
	vector.DrawFilledRect(dst, x, y+r, w, h-2*r, clr, true)
	vector.DrawFilledCircle(dst, x+r, y+r, r, clr, true)
	vector.DrawFilledCircle(dst, x+w-r, y+r, r, clr, true)
	vector.DrawFilledCircle(dst, x+r, y+h-r, r, clr, true)
	vector.DrawFilledCircle(dst, x+w-r, y+h-r, r, clr, true)
}
