package carousel

import (
	"testing"

	"github.com/decker502/tipcarousel/pkg/dynamics"
	"github.com/decker502/tipcarousel/pkg/ecs"
	ebimath "github.com/edwinsyarief/ebi-math"
)

func TestPresentEmptyDismissesImmediately(t *testing.T) {
	c, host, engine := newTestController()
	c.Present(nil)

	if host.dismissCount != 1 {
		t.Errorf("dismissCount = %d, want 1", host.dismissCount)
	}
	if len(host.created) != 0 {
		t.Errorf("created %d cards, want 0", len(host.created))
	}
	if len(engine.behaviors) != 0 {
		t.Errorf("engine has %d behaviors, want 0", len(engine.behaviors))
	}
	if c.Active() {
		t.Error("controller should not be active")
	}
}

func TestPresentSetsUpFirstCard(t *testing.T) {
	c, host, engine := newTestController()
	tips := threeTips()
	c.Present(tips)

	if len(host.created) != 1 {
		t.Fatalf("created %d cards, want 1", len(host.created))
	}
	card := c.Card()
	if got := host.bound[card]; got == nil || got.Title != tips[0].Title {
		t.Errorf("card bound to %+v, want tip 0", got)
	}
	if host.pageCurrent != 0 || host.pageTotal != 3 {
		t.Errorf("page = (%d, %d), want (0, 3)", host.pageCurrent, host.pageTotal)
	}

	// 入场动画从右侧开始
	want := RotatedRight.Pose(host.center, DefaultCardOffset)
	if host.poses[card] != want {
		t.Errorf("card pose = %+v, want %+v", host.poses[card], want)
	}
	if c.Position() != RotatedRight {
		t.Errorf("Position() = %s, want RotatedRight", c.Position())
	}

	attachments, snaps := engine.counts()
	if attachments != 1 || snaps != 1 {
		t.Errorf("attachments=%d snaps=%d, want 1 and 1", attachments, snaps)
	}
	if len(engine.synced) == 0 || engine.synced[len(engine.synced)-1] != card {
		t.Errorf("engine state not synced for card %d: %v", card, engine.synced)
	}
}

func TestPresentFromClampsStart(t *testing.T) {
	c, host, _ := newTestController()
	c.PresentFrom(threeTips(), 10)
	if c.Index() != 2 {
		t.Errorf("Index() = %d, want 2", c.Index())
	}
	if host.pageCurrent != 2 {
		t.Errorf("page current = %d, want 2", host.pageCurrent)
	}

	c.PresentFrom(threeTips(), -3)
	if c.Index() != 0 {
		t.Errorf("Index() = %d, want 0", c.Index())
	}
	// 重新展示会销毁上一张卡片
	if len(host.destroyed) != 1 {
		t.Errorf("destroyed %d cards, want 1", len(host.destroyed))
	}
}

func TestLoadTipInRange(t *testing.T) {
	c, host, _ := newTestController()
	tips := threeTips()
	c.Present(tips)

	for i := range tips {
		c.LoadTip(i)
		got := host.bound[c.Card()]
		if got == nil || *got != tips[i] {
			t.Errorf("LoadTip(%d) bound %+v, want %+v", i, got, tips[i])
		}
		if host.pageCurrent != i || host.pageTotal != len(tips) {
			t.Errorf("LoadTip(%d) page = (%d, %d), want (%d, %d)", i, host.pageCurrent, host.pageTotal, i, len(tips))
		}
	}
}

func TestLoadTipOutOfRangeClears(t *testing.T) {
	c, host, _ := newTestController()
	c.Present(threeTips())

	for _, index := range []int{3, 7, -1} {
		c.LoadTip(0)
		pageCalls := host.pageCalls
		c.LoadTip(index)
		if host.bound[c.Card()] != nil {
			t.Errorf("LoadTip(%d) should clear the card", index)
		}
		if host.pageCalls != pageCalls {
			t.Errorf("LoadTip(%d) should not touch the page indicator", index)
		}
	}
}

func TestResetCardIsIdempotent(t *testing.T) {
	c, host, engine := newTestController()
	c.Present(threeTips())

	c.ResetCard(RotatedLeft)
	firstPose := host.poses[c.Card()]
	firstCount := len(engine.behaviors)

	c.ResetCard(RotatedLeft)
	if host.poses[c.Card()] != firstPose {
		t.Errorf("pose after second reset = %+v, want %+v", host.poses[c.Card()], firstPose)
	}
	if len(engine.behaviors) != firstCount || firstCount != 2 {
		t.Errorf("behaviors = %d then %d, want 2 both times", firstCount, len(engine.behaviors))
	}
	if c.Position() != RotatedLeft {
		t.Errorf("Position() = %s, want RotatedLeft", c.Position())
	}
}

// 场景 A：三条提示，从 0 开始向左甩 150
func TestScenarioAdvanceForward(t *testing.T) {
	c, host, _ := newTestController()
	tips := threeTips()
	c.Present(tips)
	oldCard := c.Card()

	var committed Decision
	c.OnCommit = func(d Decision) { committed = d }

	drag(c, host, -150)
	if !c.SwapPending() {
		t.Fatal("swap should be pending after commit")
	}
	if committed.Outgoing != RotatedLeft {
		t.Errorf("outgoing = %s, want RotatedLeft", committed.Outgoing)
	}

	c.Update(0.39)
	if c.Index() != 0 {
		t.Fatalf("index changed before delay elapsed: %d", c.Index())
	}

	c.Update(0.01)
	if c.Index() != 1 {
		t.Fatalf("index = %d, want 1", c.Index())
	}
	if c.Card() == oldCard {
		t.Error("card entity must be replaced on swap")
	}
	if len(host.destroyed) != 1 || host.destroyed[0] != oldCard {
		t.Errorf("destroyed = %v, want [%d]", host.destroyed, oldCard)
	}
	if got := host.bound[c.Card()]; got == nil || *got != tips[1] {
		t.Errorf("card shows %+v, want tip 1", got)
	}
	if c.Position() != RotatedRight {
		t.Errorf("new card enters from %s, want RotatedRight", c.Position())
	}
	if host.pageCurrent != 1 || host.pageTotal != 3 {
		t.Errorf("page = (%d, %d), want (1, 3)", host.pageCurrent, host.pageTotal)
	}
}

// 场景 B：在第一条上向右甩，索引保持 0
func TestScenarioClampAtFirstTip(t *testing.T) {
	c, host, _ := newTestController()
	tips := threeTips()
	c.Present(tips)

	var committed Decision
	c.OnCommit = func(d Decision) { committed = d }

	drag(c, host, 150)
	if !committed.Clamped || committed.Outgoing != RotatedRight || committed.Incoming != RotatedRight {
		t.Errorf("decision = %+v, want clamped with both targets RotatedRight", committed)
	}

	c.Update(0.4)
	if c.Index() != 0 {
		t.Errorf("index = %d, want 0", c.Index())
	}
	if c.Position() != RotatedRight {
		t.Errorf("card re-enters from %s, want RotatedRight", c.Position())
	}
	if got := host.bound[c.Card()]; got == nil || *got != tips[0] {
		t.Errorf("card shows %+v, want tip 0", got)
	}
	if host.dismissCount != 0 {
		t.Error("clamped gesture must not dismiss")
	}
}

// 场景 C：在最后一条上向左甩，请求关闭且不重新绑定卡片
func TestScenarioPastLastTipDismisses(t *testing.T) {
	c, host, engine := newTestController()
	c.PresentFrom(threeTips(), 2)

	bindCalls := host.bindCalls
	created := len(host.created)

	drag(c, host, -150)
	c.Update(0.4)

	if host.dismissCount != 1 {
		t.Errorf("dismissCount = %d, want 1", host.dismissCount)
	}
	if host.bindCalls != bindCalls {
		t.Errorf("card was rebound %d times after dismissal", host.bindCalls-bindCalls)
	}
	if len(host.created) != created {
		t.Error("no new card should be created when running past the last tip")
	}
	if c.Card() != ecs.InvalidEntity {
		t.Errorf("Card() = %d, want InvalidEntity", c.Card())
	}
	if len(engine.behaviors) != 0 {
		t.Errorf("engine still has %d behaviors", len(engine.behaviors))
	}
}

func TestBackwardFromMiddleEntersFromLeft(t *testing.T) {
	c, host, _ := newTestController()
	c.PresentFrom(threeTips(), 1)

	drag(c, host, 150)
	c.Update(0.4)

	if c.Index() != 0 {
		t.Errorf("index = %d, want 0", c.Index())
	}
	if c.Position() != RotatedLeft {
		t.Errorf("position = %s, want RotatedLeft", c.Position())
	}
}

func TestDismissCancelsPendingSwap(t *testing.T) {
	c, host, _ := newTestController()
	c.Present(threeTips())

	drag(c, host, -150)
	created := len(host.created)
	c.Dismiss()
	c.Update(1)

	if c.Index() != 0 {
		t.Errorf("pending swap ran after dismissal: index = %d", c.Index())
	}
	if len(host.created) != created {
		t.Error("no card should be created after dismissal")
	}
	if host.dismissCount != 1 {
		t.Errorf("dismissCount = %d, want 1", host.dismissCount)
	}

	c.Dismiss()
	if host.dismissCount != 1 {
		t.Errorf("second Dismiss notified host again: %d", host.dismissCount)
	}
}

func TestGesturesIgnoredWhileSwapPending(t *testing.T) {
	c, host, engine := newTestController()
	c.Present(threeTips())

	drag(c, host, -150)
	before := len(engine.behaviors)
	drag(c, host, -150)

	if len(engine.behaviors) != before {
		t.Errorf("behaviors changed from %d to %d while swap pending", before, len(engine.behaviors))
	}
	c.Update(0.4)
	if c.Index() != 1 {
		t.Errorf("index = %d, want 1 (second drag ignored)", c.Index())
	}
}

func TestFlick(t *testing.T) {
	c, _, _ := newTestController()
	shown := -1
	c.OnTipShown = func(index, total int) { shown = index }
	c.Present(threeTips())

	c.Flick(DirectionForward)
	c.Update(0.4)
	if c.Index() != 1 || shown != 1 {
		t.Errorf("after forward flick index=%d shown=%d, want 1", c.Index(), shown)
	}

	c.Flick(DirectionBackward)
	c.Update(0.4)
	if c.Index() != 0 {
		t.Errorf("after backward flick index=%d, want 0", c.Index())
	}

	c.Flick(DirectionNone)
	if c.SwapPending() {
		t.Error("DirectionNone must not commit")
	}
}

func TestFullWalkThrough(t *testing.T) {
	c, host, _ := newTestController()
	c.Present(threeTips())

	for i := 0; i < 3; i++ {
		drag(c, host, -150)
		for f := 0; f < 30; f++ {
			c.Update(1.0 / 60.0)
		}
	}

	if host.dismissCount != 1 {
		t.Errorf("dismissCount = %d, want 1", host.dismissCount)
	}
	if len(host.created) != 3 {
		t.Errorf("created %d cards, want 3 (one per tip)", len(host.created))
	}
	if !c.Dismissed() || c.Active() {
		t.Errorf("Dismissed()=%v Active()=%v, want true/false", c.Dismissed(), c.Active())
	}
}

// 常驻附着是摆锤：三个姿态下卡片上的附着点都落在枢轴上
func TestRestingAttachmentPinnedAtEveryPose(t *testing.T) {
	tests := []struct {
		name     string
		position CardPosition
	}{
		{"centered", Centered},
		{"rotated left", RotatedLeft},
		{"rotated right", RotatedRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, host, _ := newTestController()
			c.Present(threeTips())
			c.ResetCard(tt.position)

			pivot := host.center.Add(ebimath.V(0, DefaultCardOffset))
			if c.attachment.Anchor != pivot {
				t.Errorf("anchor = %+v, want %+v", c.attachment.Anchor, pivot)
			}

			pose := host.poses[c.Card()]
			point := pose.Center.Add(c.attachment.ItemOffset.Rotate(pose.Rotation))
			if d := point.DistanceTo(c.attachment.Anchor); d > 1e-6 {
				t.Errorf("attached point %+v is %.3f away from the pivot", point, d)
			}
		})
	}
}

// 切换后拖动附着的锚点移到飞出位置的中心
func TestCommitSendsCardToOutgoingPose(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		offset float64
		want   CardPosition
	}{
		{"forward", 1, -150, RotatedLeft},
		{"backward", 1, 150, RotatedRight},
		{"clamped at first tip", 0, 150, RotatedRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, host, engine := newTestController()
			c.PresentFrom(threeTips(), tt.start)
			resting := c.attachment

			drag(c, host, tt.offset)
			if !c.SwapPending() {
				t.Fatal("swap should be pending after commit")
			}

			var transient *dynamics.Attachment
			for _, b := range engine.behaviors {
				if a, ok := b.(*dynamics.Attachment); ok && a != resting {
					transient = a
				}
			}
			if transient == nil {
				t.Fatal("drag attachment should stay on the card while it flies out")
			}

			want := tt.want.Pose(host.center, DefaultCardOffset).Center
			if transient.Anchor != want {
				t.Errorf("drag anchor = %+v, want %s center %+v", transient.Anchor, tt.want, want)
			}
		})
	}
}
