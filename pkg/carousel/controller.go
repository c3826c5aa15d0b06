// Package carousel 实现新手引导的提示轮播
//
// Controller 持有提示列表和当前索引，驱动动画引擎：创建卡片、挂载弹簧/吸附行为、
// 根据拖动手势决定弹回还是切换到上一条/下一条提示。
//
// 所有方法都必须在游戏主循环中调用；唯一的异步元素是切换卡片前的延迟任务，
// 它由 Update 驱动，同样运行在主循环中。
package carousel

import (
	"log"

	"github.com/decker502/tipcarousel/pkg/dynamics"
	"github.com/decker502/tipcarousel/pkg/ecs"
	ebimath "github.com/edwinsyarief/ebi-math"
)

// Controller 提示轮播控制器
//
// 每次展示创建一个独立的 Controller，没有全局状态。
type Controller struct {
	engine    AnimationEngine
	host      Host
	cfg       Config
	scheduler *Scheduler
	gesture   *GestureStateMachine

	tips     []Tip
	index    int
	position CardPosition
	card     ecs.EntityID

	// 常驻行为：卡片静止时挂在锚点上并吸附到中心
	attachment *dynamics.Attachment
	snap       *dynamics.Snap

	pendingSwap *Task
	active      bool
	dismissed   bool

	// OnCommit 手势确认切换时调用（卡片开始飞出）
	OnCommit func(d Decision)
	// OnTipShown 新提示绑定到卡片后调用
	OnTipShown func(index, total int)
}

// NewController 创建控制器
func NewController(engine AnimationEngine, host Host, cfg Config) *Controller {
	c := &Controller{
		engine:    engine,
		host:      host,
		cfg:       cfg,
		scheduler: NewScheduler(),
		card:      ecs.InvalidEntity,
	}
	c.gesture = newGestureStateMachine(c)
	return c
}

// Present 从第一条开始展示提示
//
// 空列表不会创建卡片，直接请求宿主关闭。
func (c *Controller) Present(tips []Tip) {
	c.PresentFrom(tips, 0)
}

// PresentFrom 从指定索引开始展示提示，start 会被限制在有效范围内
func (c *Controller) PresentFrom(tips []Tip, start int) {
	if c.active {
		c.teardown()
	}
	c.tips = append([]Tip(nil), tips...)
	c.dismissed = false

	if len(c.tips) == 0 {
		log.Printf("[Carousel] No tips to present, dismissing immediately")
		c.dismissed = true
		c.host.Dismiss()
		return
	}

	if start < 0 {
		start = 0
	}
	if start >= len(c.tips) {
		start = len(c.tips) - 1
	}
	c.index = start
	c.active = true
	log.Printf("[Carousel] Presenting %d tips starting at %d", len(c.tips), start)
	c.setup()
}

// setup 创建卡片并从右侧播放入场动画
func (c *Controller) setup() {
	c.card = c.host.CreateCard()
	c.host.SetCardPose(c.card, Centered.Pose(c.host.ScreenCenter(), c.cfg.CardOffset))
	c.LoadTip(c.index)
	c.ResetCard(RotatedRight)
}

// ResetCard 把卡片瞬间放到 position 对应的姿态，然后重新挂上常驻行为
//
// 这是卡片回到"静止"动画的唯一途径；连续调用两次与调用一次结果相同。
func (c *Controller) ResetCard(position CardPosition) {
	if c.card == ecs.InvalidEntity {
		return
	}
	c.engine.RemoveAllBehaviors()
	c.gesture.reset()

	center := c.host.ScreenCenter()
	c.host.SetCardPose(c.card, position.Pose(center, c.cfg.CardOffset))
	c.engine.SyncState(c.card)
	c.position = position

	// 摆锤：卡片中心下方 CardOffset 处的点挂在屏幕中心下方 CardOffset 处的枢轴上，
	// 三个姿态下该点都与枢轴重合，卡片绕枢轴摆入摆出
	c.attachment = dynamics.NewAttachment(c.card,
		ebimath.V(0, c.cfg.CardOffset),
		center.Add(ebimath.V(0, c.cfg.CardOffset)))
	c.attachment.Frequency = c.cfg.AttachmentFrequency
	c.attachment.Damping = c.cfg.AttachmentDamping

	c.snap = dynamics.NewSnap(c.card, center)
	c.snap.Damping = c.cfg.SnapDamping
	c.engine.AddBehavior(c.attachment)
	c.engine.AddBehavior(c.snap)
}

// LoadTip 把第 index 条提示绑定到卡片并更新页码；越界时清空卡片
func (c *Controller) LoadTip(index int) {
	if c.card == ecs.InvalidEntity {
		return
	}
	if index < 0 || index >= len(c.tips) {
		c.host.BindCard(c.card, nil)
		return
	}
	c.host.BindCard(c.card, &c.tips[index])
	c.host.SetPage(index, len(c.tips))
	if c.OnTipShown != nil {
		c.OnTipShown(index, len(c.tips))
	}
}

// HandleGesture 处理拖动手势事件
func (c *Controller) HandleGesture(ev GestureEvent) {
	c.gesture.Handle(ev)
}

// Flick 模拟一次足以切换的拖动（键盘快捷键使用）
func (c *Controller) Flick(direction Direction) {
	if !c.acceptsGestures() || direction == DirectionNone {
		return
	}
	center := c.host.ScreenCenter()
	distance := c.cfg.CommitThreshold * 1.5
	end := ebimath.V(center.X-distance, center.Y)
	if direction == DirectionBackward {
		end = ebimath.V(center.X+distance, center.Y)
	}
	pose := c.host.CardPose(c.card)
	c.HandleGesture(GestureEvent{Phase: GestureBegan, Location: pose.Center})
	c.HandleGesture(GestureEvent{Phase: GestureEnded, Location: end})
}

// Update 推进延迟任务，每帧调用
func (c *Controller) Update(dt float64) {
	c.scheduler.Update(dt)
}

// commit 卡片已开始飞出，延迟后换入下一张卡片
func (c *Controller) commit(d Decision) {
	if c.OnCommit != nil {
		c.OnCommit(d)
	}
	c.pendingSwap = c.scheduler.After(c.cfg.SwapDelay, func() {
		c.pendingSwap = nil
		c.swap(d)
	})
}

// swap 销毁旧卡片，为新索引创建卡片并从 d.Incoming 入场
func (c *Controller) swap(d Decision) {
	if !c.active {
		return
	}
	if d.NextIndex >= len(c.tips) {
		log.Printf("[Carousel] All %d tips shown, dismissing", len(c.tips))
		c.Dismiss()
		return
	}

	c.engine.RemoveAllBehaviors()
	c.host.DestroyCard(c.card)
	c.card = c.host.CreateCard()

	c.index = d.NextIndex
	c.LoadTip(d.NextIndex)
	c.ResetCard(d.Incoming)
}

// Dismiss 关闭轮播：取消等待中的切换，销毁卡片并通知宿主
// 重复调用无效果
func (c *Controller) Dismiss() {
	if c.dismissed {
		return
	}
	c.teardown()
	c.dismissed = true
	log.Printf("[Carousel] Dismissed at tip %d/%d", c.index, len(c.tips))
	c.host.Dismiss()
}

// teardown 释放当前展示占用的卡片与行为（不通知宿主）
func (c *Controller) teardown() {
	c.active = false
	if c.pendingSwap != nil {
		c.pendingSwap.Cancel()
		c.pendingSwap = nil
	}
	c.scheduler.CancelAll()
	c.engine.RemoveAllBehaviors()
	c.gesture.reset()
	if c.card != ecs.InvalidEntity {
		c.host.DestroyCard(c.card)
		c.card = ecs.InvalidEntity
	}
	c.attachment = nil
	c.snap = nil
}

// acceptsGestures 是否可以开始新的拖动
// 卡片飞出等待切换期间不接受手势
func (c *Controller) acceptsGestures() bool {
	return c.active && c.card != ecs.InvalidEntity && c.pendingSwap == nil
}

// Index 当前提示索引
func (c *Controller) Index() int { return c.index }

// Count 提示数量
func (c *Controller) Count() int { return len(c.tips) }

// Card 当前卡片实体，没有卡片时为 ecs.InvalidEntity
func (c *Controller) Card() ecs.EntityID { return c.card }

// Position 卡片最近一次重置到的位置
func (c *Controller) Position() CardPosition { return c.position }

// Active 是否正在展示
func (c *Controller) Active() bool { return c.active }

// Dismissed 是否已关闭
func (c *Controller) Dismissed() bool { return c.dismissed }

// SwapPending 是否有等待执行的切换
func (c *Controller) SwapPending() bool { return c.pendingSwap.Pending() }

// SwapRemaining 距离换入下一张卡片还剩多少秒，没有等待中的切换时为 0
func (c *Controller) SwapRemaining() float64 { return c.pendingSwap.Remaining() }

// GestureState 手势状态机当前状态
func (c *Controller) GestureState() GestureState { return c.gesture.State() }
