package dynamics

import (
	"math"

	"github.com/decker502/tipcarousel/pkg/ecs"
	ebimath "github.com/edwinsyarief/ebi-math"
)

// 弹簧默认参数
const (
	// RigidFrequency 频率为 0 的附着行为按此频率（Hz）模拟"刚性"连接
	RigidFrequency = 6.0
	// SnapFrequency 吸附行为的固有频率（Hz）
	SnapFrequency = 3.0
	// DefaultSnapDamping 吸附行为的默认阻尼比
	DefaultSnapDamping = 0.7
)

// Behavior 可以添加到 Animator 的动画行为
//
// 行为只作用于 Item 指定的实体；实体被销毁后行为自动失效。
type Behavior interface {
	// Target 返回行为作用的实体
	Target() ecs.EntityID

	// apply 把行为产生的力和力矩累加到 body 上
	apply(body *bodyState)
}

// bodyState 单个积分步内的刚体快照
type bodyState struct {
	position        ebimath.Vector
	rotation        float64
	velocity        ebimath.Vector
	angularVelocity float64
	mass            float64
	inertia         float64

	force  ebimath.Vector
	torque float64
}

// applyForceAt 在世界坐标力臂 r（相对质心）处施加力 f
func (b *bodyState) applyForceAt(f, r ebimath.Vector) {
	b.force = b.force.Add(f)
	b.torque += cross(r, f)
}

// Attachment 附着行为：把卡片上的一个点用阻尼弹簧连接到世界坐标锚点
//
// ItemOffset 是卡片局部坐标系中的点（相对卡片中心，未旋转）；
// 偏离中心的附着点会产生力矩，卡片因此随拖动摆动。
type Attachment struct {
	Item       ecs.EntityID
	ItemOffset ebimath.Vector
	Anchor     ebimath.Vector

	// Length 弹簧静止长度，0 表示附着点与锚点重合
	Length float64
	// Frequency 弹簧固有频率（Hz），0 表示刚性连接
	Frequency float64
	// Damping 阻尼比，0 表示无阻尼，1 为临界阻尼
	Damping float64
}

// NewAttachment 创建刚性附着行为
func NewAttachment(item ecs.EntityID, itemOffset, anchor ebimath.Vector) *Attachment {
	return &Attachment{
		Item:       item,
		ItemOffset: itemOffset,
		Anchor:     anchor,
		Damping:    1,
	}
}

// Target 实现 Behavior
func (a *Attachment) Target() ecs.EntityID { return a.Item }

// SetAnchor 移动锚点（手指跟随）
func (a *Attachment) SetAnchor(anchor ebimath.Vector) { a.Anchor = anchor }

func (a *Attachment) apply(b *bodyState) {
	freq := a.Frequency
	if freq <= 0 {
		freq = RigidFrequency
	}
	omega := 2 * math.Pi * freq
	k := b.mass * omega * omega
	c := 2 * a.Damping * math.Sqrt(k*b.mass)

	r := a.ItemOffset.Rotate(b.rotation)
	delta := a.Anchor.Sub(b.position, r)
	dist := delta.Length()

	// 附着点速度 = v + ω × r
	pointVelocity := b.velocity.Add(perp(b.angularVelocity, r))

	var spring ebimath.Vector
	if dist > 1e-9 {
		stretch := dist - a.Length
		spring = delta.Mulf(k * stretch / dist)
	}
	damping := pointVelocity.Mulf(-c)
	b.applyForceAt(spring.Add(damping), r)
}

// Snap 吸附行为：把卡片中心拉向 Point，同时把旋转摆正到 0
type Snap struct {
	Item  ecs.EntityID
	Point ebimath.Vector
	// Damping 阻尼比，<= 0 时使用 DefaultSnapDamping
	Damping float64
}

// NewSnap 创建吸附行为
func NewSnap(item ecs.EntityID, point ebimath.Vector) *Snap {
	return &Snap{Item: item, Point: point, Damping: DefaultSnapDamping}
}

// Target 实现 Behavior
func (s *Snap) Target() ecs.EntityID { return s.Item }

func (s *Snap) apply(b *bodyState) {
	zeta := s.Damping
	if zeta <= 0 {
		zeta = DefaultSnapDamping
	}
	omega := 2 * math.Pi * SnapFrequency

	k := b.mass * omega * omega
	c := 2 * zeta * math.Sqrt(k*b.mass)
	f := s.Point.Sub(b.position).Mulf(k).Add(b.velocity.Mulf(-c))
	b.force = b.force.Add(f)

	kr := b.inertia * omega * omega
	cr := 2 * zeta * math.Sqrt(kr*b.inertia)
	b.torque += -kr*normalizeAngle(b.rotation) - cr*b.angularVelocity
}

// normalizeAngle 把角度归一化到 (-π, π]
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
