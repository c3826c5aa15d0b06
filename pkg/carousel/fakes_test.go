package carousel

import (
	"github.com/decker502/tipcarousel/pkg/dynamics"
	"github.com/decker502/tipcarousel/pkg/ecs"
	ebimath "github.com/edwinsyarief/ebi-math"
)

// fakeHost 记录 Controller 对宿主的所有调用
type fakeHost struct {
	center ebimath.Vector
	nextID ecs.EntityID

	poses     map[ecs.EntityID]Pose
	bound     map[ecs.EntityID]*Tip
	bindCalls int
	created   []ecs.EntityID
	destroyed []ecs.EntityID

	pageCurrent, pageTotal int
	pageCalls              int
	dismissCount           int
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		center: ebimath.V(240, 400),
		nextID: 1,
		poses:  make(map[ecs.EntityID]Pose),
		bound:  make(map[ecs.EntityID]*Tip),
	}
}

func (h *fakeHost) ScreenCenter() ebimath.Vector { return h.center }

func (h *fakeHost) CreateCard() ecs.EntityID {
	id := h.nextID
	h.nextID++
	h.created = append(h.created, id)
	h.poses[id] = Pose{Center: h.center}
	return id
}

func (h *fakeHost) DestroyCard(card ecs.EntityID) {
	h.destroyed = append(h.destroyed, card)
	delete(h.poses, card)
	delete(h.bound, card)
}

func (h *fakeHost) CardPose(card ecs.EntityID) Pose { return h.poses[card] }

func (h *fakeHost) SetCardPose(card ecs.EntityID, pose Pose) { h.poses[card] = pose }

func (h *fakeHost) BindCard(card ecs.EntityID, tip *Tip) {
	h.bindCalls++
	h.bound[card] = tip
}

func (h *fakeHost) SetPage(current, total int) {
	h.pageCalls++
	h.pageCurrent, h.pageTotal = current, total
}

func (h *fakeHost) Dismiss() { h.dismissCount++ }

// fakeEngine 记录行为的添加与移除
type fakeEngine struct {
	behaviors []dynamics.Behavior
	synced    []ecs.EntityID
}

func (e *fakeEngine) AddBehavior(b dynamics.Behavior) {
	for _, existing := range e.behaviors {
		if existing == b {
			return
		}
	}
	e.behaviors = append(e.behaviors, b)
}

func (e *fakeEngine) RemoveBehavior(b dynamics.Behavior) {
	for i, existing := range e.behaviors {
		if existing == b {
			e.behaviors = append(e.behaviors[:i], e.behaviors[i+1:]...)
			return
		}
	}
}

func (e *fakeEngine) RemoveAllBehaviors() { e.behaviors = nil }

func (e *fakeEngine) SyncState(item ecs.EntityID) { e.synced = append(e.synced, item) }

// counts 返回附着行为与吸附行为的数量
func (e *fakeEngine) counts() (attachments, snaps int) {
	for _, b := range e.behaviors {
		switch b.(type) {
		case *dynamics.Attachment:
			attachments++
		case *dynamics.Snap:
			snaps++
		}
	}
	return attachments, snaps
}

func threeTips() []Tip {
	return []Tip{
		{Title: "Swipe", Summary: "Drag the card left to continue"},
		{Title: "Go back", Summary: "Drag right to see the previous tip"},
		{Title: "Done", Summary: "Swipe past the last tip to finish"},
	}
}

func newTestController() (*Controller, *fakeHost, *fakeEngine) {
	host := newFakeHost()
	engine := &fakeEngine{}
	return NewController(engine, host, DefaultConfig()), host, engine
}

// drag 模拟一次完整拖动：在屏幕中心按下，移动到 offset 处松手
func drag(c *Controller, host *fakeHost, offset float64) {
	start := host.center
	end := ebimath.V(host.center.X+offset, host.center.Y)
	c.HandleGesture(GestureEvent{Phase: GestureBegan, Location: start})
	c.HandleGesture(GestureEvent{Phase: GestureChanged, Location: end})
	c.HandleGesture(GestureEvent{Phase: GestureEnded, Location: end})
}
