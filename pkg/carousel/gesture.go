package carousel

import (
	"log"
	"math"

	"github.com/decker502/tipcarousel/pkg/dynamics"
	ebimath "github.com/edwinsyarief/ebi-math"
)

// GesturePhase 拖动手势的阶段
type GesturePhase int

const (
	GestureBegan GesturePhase = iota
	GestureChanged
	GestureEnded
	GestureCancelled
)

func (p GesturePhase) String() string {
	switch p {
	case GestureBegan:
		return "began"
	case GestureChanged:
		return "changed"
	case GestureEnded:
		return "ended"
	case GestureCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// GestureEvent 一次手势事件：阶段 + 当前触点位置（屏幕坐标）
type GestureEvent struct {
	Phase    GesturePhase
	Location ebimath.Vector
}

// GestureState 手势状态机的状态
type GestureState int

const (
	GestureIdle GestureState = iota
	GestureDragging
	GestureDeciding
)

func (s GestureState) String() string {
	switch s {
	case GestureIdle:
		return "Idle"
	case GestureDragging:
		return "Dragging"
	case GestureDeciding:
		return "Deciding"
	default:
		return "Unknown"
	}
}

// Direction 切换方向
type Direction int

const (
	DirectionNone Direction = iota
	// DirectionForward 向左甩，显示下一条提示
	DirectionForward
	// DirectionBackward 向右甩，显示上一条提示
	DirectionBackward
)

func (d Direction) String() string {
	switch d {
	case DirectionForward:
		return "forward"
	case DirectionBackward:
		return "backward"
	default:
		return "none"
	}
}

// Decision 松手时的决策结果
type Decision struct {
	// Commit 为 false 表示取消：卡片弹回中心，索引不变
	Commit    bool
	Direction Direction
	NextIndex int
	// Outgoing 当前卡片飞向的位置
	Outgoing CardPosition
	// Incoming 新卡片入场的起始位置
	Incoming CardPosition
	// Clamped 试图翻到第一条之前，索引被限制为 0
	Clamped bool
}

// Decide 根据松手时的水平偏移决定取消还是切换
//
// offset = 触点X - 屏幕中心X。|offset| < threshold 时取消；
// 向右（offset > 0）回到上一条，向左（offset < 0）前进到下一条。
// 在第一条上向右甩时索引保持 0，卡片从右侧飞出并重新从右侧飞入。
func Decide(offset float64, index int, threshold float64) Decision {
	if math.Abs(offset) < threshold {
		return Decision{NextIndex: index, Outgoing: Centered, Incoming: Centered}
	}

	d := Decision{Commit: true}
	if offset > 0 {
		d.Direction = DirectionBackward
		d.NextIndex = index - 1
		d.Outgoing = RotatedRight
		d.Incoming = RotatedLeft
	} else {
		d.Direction = DirectionForward
		d.NextIndex = index + 1
		d.Outgoing = RotatedLeft
		d.Incoming = RotatedRight
	}

	if d.NextIndex < 0 {
		d.NextIndex = 0
		d.Outgoing = RotatedRight
		d.Incoming = RotatedRight
		d.Clamped = true
	}
	return d
}

// GestureStateMachine 把拖动手势转换为动画行为和切换决策
//
// Idle --began--> Dragging --changed--> Dragging --ended/cancelled--> Deciding --> Idle
type GestureStateMachine struct {
	c         *Controller
	state     GestureState
	transient *dynamics.Attachment
}

func newGestureStateMachine(c *Controller) *GestureStateMachine {
	return &GestureStateMachine{c: c, state: GestureIdle}
}

// State 返回当前状态
func (g *GestureStateMachine) State() GestureState {
	return g.state
}

// reset 丢弃拖动状态（不操作动画引擎）
func (g *GestureStateMachine) reset() {
	g.state = GestureIdle
	g.transient = nil
}

// Handle 处理一次手势事件；当前状态无法处理的事件被忽略
func (g *GestureStateMachine) Handle(ev GestureEvent) {
	switch ev.Phase {
	case GestureBegan:
		if g.state != GestureIdle || !g.c.acceptsGestures() {
			return
		}
		g.begin(ev.Location)

	case GestureChanged:
		if g.state != GestureDragging || g.transient == nil {
			return
		}
		g.transient.SetAnchor(ev.Location)

	case GestureEnded, GestureCancelled:
		if g.state != GestureDragging {
			return
		}
		g.end(ev.Location)
	}
}

func (g *GestureStateMachine) begin(touch ebimath.Vector) {
	c := g.c
	c.engine.RemoveBehavior(c.snap)

	// 触点换算到卡片局部坐标，卡片以被按住的点跟随手指
	pose := c.host.CardPose(c.card)
	local := touch.Sub(pose.Center).Rotate(-pose.Rotation)

	g.transient = dynamics.NewAttachment(c.card, local, touch)
	g.transient.Frequency = c.cfg.DragFrequency
	g.transient.Damping = c.cfg.DragDamping
	c.engine.AddBehavior(g.transient)
	g.state = GestureDragging
}

func (g *GestureStateMachine) end(touch ebimath.Vector) {
	c := g.c
	g.state = GestureDeciding

	center := c.host.ScreenCenter()
	offset := touch.X - center.X
	d := Decide(offset, c.index, c.cfg.CommitThreshold)

	if !d.Commit {
		c.engine.RemoveBehavior(g.transient)
		c.engine.AddBehavior(c.snap)
		log.Printf("[Carousel] Gesture cancelled (offset %.1f), snapping back", offset)
	} else {
		target := d.Outgoing.Pose(center, c.cfg.CardOffset)
		g.transient.SetAnchor(target.Center)
		log.Printf("[Carousel] Gesture committed %s (offset %.1f): %d -> %d, out=%s in=%s",
			d.Direction, offset, c.index, d.NextIndex, d.Outgoing, d.Incoming)
		c.commit(d)
	}

	g.transient = nil
	g.state = GestureIdle
}
