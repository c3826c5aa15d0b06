package entities

import (
	"image"
	"log"

	"github.com/decker502/tipcarousel/pkg/carousel"
	"github.com/decker502/tipcarousel/pkg/components"
	"github.com/decker502/tipcarousel/pkg/ecs"
	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/hajimehoshi/ebiten/v2"
)

// TextureSource 把提示配图转换为可绘制的纹理
// game.ResourceManager 实现了该接口
type TextureSource interface {
	Texture(img image.Image) *ebiten.Image
}

// CardStage 基于 ECS 的轮播宿主
//
// 实现 carousel.Host：卡片和页码指示器都是实体，
// 渲染由 CardRenderSystem 和 PageIndicatorRenderSystem 完成。
type CardStage struct {
	entityManager *ecs.EntityManager
	textures      TextureSource // 可为 nil，此时卡片不显示配图

	center                ebimath.Vector
	cardWidth, cardHeight float64

	indicator ecs.EntityID
	dismissed bool

	// OnDismiss 轮播关闭时调用
	OnDismiss func()
}

// NewCardStage 创建轮播宿主
func NewCardStage(em *ecs.EntityManager, textures TextureSource, center ebimath.Vector, cardWidth, cardHeight float64) *CardStage {
	return &CardStage{
		entityManager: em,
		textures:      textures,
		center:        center,
		cardWidth:     cardWidth,
		cardHeight:    cardHeight,
		indicator:     ecs.InvalidEntity,
	}
}

// ScreenCenter 返回卡片居中时的中心点
func (s *CardStage) ScreenCenter() ebimath.Vector {
	return s.center
}

// CreateCard 创建新卡片
func (s *CardStage) CreateCard() ecs.EntityID {
	id := NewCardEntity(s.entityManager, s.center, s.cardWidth, s.cardHeight)
	log.Printf("[CardStage] Created card %d", id)
	return id
}

// DestroyCard 标记卡片待删除，实体在帧末统一清理
func (s *CardStage) DestroyCard(card ecs.EntityID) {
	if card == ecs.InvalidEntity {
		return
	}
	s.entityManager.DestroyEntity(card)
	log.Printf("[CardStage] Destroyed card %d", card)
}

// CardPose 返回卡片当前姿态；卡片不存在时返回居中姿态
func (s *CardStage) CardPose(card ecs.EntityID) carousel.Pose {
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, card)
	if !ok {
		return carousel.Pose{Center: s.center}
	}
	return carousel.Pose{Center: transform.Position, Rotation: transform.Rotation}
}

// SetCardPose 瞬间设置卡片姿态
func (s *CardStage) SetCardPose(card ecs.EntityID, pose carousel.Pose) {
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, card)
	if !ok {
		return
	}
	transform.Position = pose.Center
	transform.Rotation = pose.Rotation
}

// BindCard 绑定提示内容；tip 为 nil 时清空
func (s *CardStage) BindCard(card ecs.EntityID, tip *carousel.Tip) {
	cardComp, ok := ecs.GetComponent[*components.CardComponent](s.entityManager, card)
	if !ok {
		return
	}
	if tip == nil {
		cardComp.Clear()
		return
	}

	cardComp.Bound = true
	cardComp.Title = tip.Title
	cardComp.Summary = tip.Summary
	cardComp.Image = nil
	if tip.HasImage() && s.textures != nil {
		cardComp.Image = s.textures.Texture(tip.Image)
	}
}

// SetPage 更新页码指示器，首次调用时创建指示器实体
func (s *CardStage) SetPage(current, total int) {
	if s.indicator == ecs.InvalidEntity || !s.entityManager.Exists(s.indicator) {
		s.indicator = NewPageIndicatorEntity(s.entityManager)
	}
	if indicator, ok := ecs.GetComponent[*components.PageIndicatorComponent](s.entityManager, s.indicator); ok {
		indicator.SetPage(current, total)
	}
}

// Dismiss 移除页码指示器并通知场景
func (s *CardStage) Dismiss() {
	if s.indicator != ecs.InvalidEntity {
		s.entityManager.DestroyEntity(s.indicator)
		s.indicator = ecs.InvalidEntity
	}
	s.dismissed = true
	log.Printf("[CardStage] Carousel dismissed")
	if s.OnDismiss != nil {
		s.OnDismiss()
	}
}

// Dismissed 是否已关闭
func (s *CardStage) Dismissed() bool {
	return s.dismissed
}

// Indicator 返回页码指示器实体（尚未创建时为 InvalidEntity）
func (s *CardStage) Indicator() ecs.EntityID {
	return s.indicator
}
