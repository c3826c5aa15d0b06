// Package dynamics 实现卡片使用的简化物理动画引擎
//
// Animator 持有一组行为（附着、吸附），每帧对受行为作用的实体做刚体积分。
// 没有任何行为作用的实体保持静止，与平台动画引擎"移出动画器即停止"的语义一致。
package dynamics

import (
	"log"

	"github.com/decker502/tipcarousel/pkg/components"
	"github.com/decker502/tipcarousel/pkg/ecs"
)

const (
	// FixedStep 固定积分步长（秒）
	FixedStep = 1.0 / 240.0
	// maxStepsPerUpdate 单次 Update 最多积分步数，防止掉帧后追帧过多
	maxStepsPerUpdate = 16
)

// Animator 物理动画引擎
//
// 所有方法必须在游戏主循环（单线程）中调用。
type Animator struct {
	entityManager *ecs.EntityManager
	behaviors     []Behavior
	accumulator   float64
}

// NewAnimator 创建动画引擎
func NewAnimator(em *ecs.EntityManager) *Animator {
	return &Animator{
		entityManager: em,
		behaviors:     make([]Behavior, 0, 4),
	}
}

// AddBehavior 添加行为，重复添加同一个行为无效果
func (a *Animator) AddBehavior(b Behavior) {
	if b == nil || a.indexOf(b) >= 0 {
		return
	}
	a.behaviors = append(a.behaviors, b)
}

// RemoveBehavior 移除行为，行为不存在时无效果
func (a *Animator) RemoveBehavior(b Behavior) {
	if i := a.indexOf(b); i >= 0 {
		a.behaviors = append(a.behaviors[:i], a.behaviors[i+1:]...)
	}
}

// RemoveAllBehaviors 移除所有行为
func (a *Animator) RemoveAllBehaviors() {
	a.behaviors = a.behaviors[:0]
}

// Behaviors 返回当前行为的快照
func (a *Animator) Behaviors() []Behavior {
	out := make([]Behavior, len(a.behaviors))
	copy(out, a.behaviors)
	return out
}

func (a *Animator) indexOf(b Behavior) int {
	for i, existing := range a.behaviors {
		if existing == b {
			return i
		}
	}
	return -1
}

// SyncState 让引擎以实体当前的 TransformComponent 为准重新开始模拟
// 实体被瞬间移动（例如重置卡片位置）之后必须调用，否则残留速度会把卡片甩走
func (a *Animator) SyncState(item ecs.EntityID) {
	body, ok := ecs.GetComponent[*components.BodyComponent](a.entityManager, item)
	if !ok {
		return
	}
	body.Velocity.X, body.Velocity.Y = 0, 0
	body.AngularVelocity = 0
}

// Update 推进模拟 dt 秒
func (a *Animator) Update(dt float64) {
	if dt <= 0 {
		return
	}
	a.pruneDetached()
	if len(a.behaviors) == 0 {
		a.accumulator = 0
		return
	}

	a.accumulator += dt
	steps := 0
	for a.accumulator >= FixedStep && steps < maxStepsPerUpdate {
		a.step(FixedStep)
		a.accumulator -= FixedStep
		steps++
	}
	if steps == maxStepsPerUpdate && a.accumulator >= FixedStep {
		log.Printf("[Animator] Dropping %.3fs of simulation time", a.accumulator)
		a.accumulator = 0
	}
}

// pruneDetached 移除作用于已销毁实体的行为
func (a *Animator) pruneDetached() {
	kept := a.behaviors[:0]
	for _, b := range a.behaviors {
		if a.entityManager.Exists(b.Target()) && !a.entityManager.IsMarkedForDestruction(b.Target()) {
			kept = append(kept, b)
		}
	}
	a.behaviors = kept
}

// step 执行一个固定步长的半隐式欧拉积分
func (a *Animator) step(dt float64) {
	states := make(map[ecs.EntityID]*bodyState)
	order := make([]ecs.EntityID, 0, 1)

	for _, b := range a.behaviors {
		id := b.Target()
		state, seen := states[id]
		if !seen {
			transform, ok := ecs.GetComponent[*components.TransformComponent](a.entityManager, id)
			if !ok {
				continue
			}
			body, ok := ecs.GetComponent[*components.BodyComponent](a.entityManager, id)
			if !ok {
				continue
			}
			state = &bodyState{
				position:        transform.Position,
				rotation:        transform.Rotation,
				velocity:        body.Velocity,
				angularVelocity: body.AngularVelocity,
				mass:            body.EffectiveMass(),
				inertia:         body.MomentOfInertia(),
			}
			states[id] = state
			order = append(order, id)
		}
		b.apply(state)
	}

	for _, id := range order {
		state := states[id]
		transform, _ := ecs.GetComponent[*components.TransformComponent](a.entityManager, id)
		body, _ := ecs.GetComponent[*components.BodyComponent](a.entityManager, id)

		body.Velocity = state.velocity.Add(state.force.Mulf(dt / state.mass))
		body.AngularVelocity = state.angularVelocity + state.torque*dt/state.inertia
		transform.Position = state.position.Add(body.Velocity.Mulf(dt))
		transform.Rotation = state.rotation + body.AngularVelocity*dt
	}
}
