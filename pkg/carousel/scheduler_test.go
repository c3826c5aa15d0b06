package carousel

import "testing"

func TestSchedulerFiresOnceAfterDelay(t *testing.T) {
	s := NewScheduler()
	fired := 0
	task := s.After(0.4, func() { fired++ })

	s.Update(0.2)
	if fired != 0 || !task.Pending() {
		t.Fatalf("task fired early: fired=%d pending=%v", fired, task.Pending())
	}
	if r := task.Remaining(); r < 0.19 || r > 0.21 {
		t.Errorf("Remaining() = %v, want ~0.2", r)
	}

	s.Update(0.2)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	s.Update(1)
	if fired != 1 {
		t.Errorf("task fired again: fired = %d", fired)
	}
	if len(s.tasks) != 0 {
		t.Errorf("%d tasks left, want 0", len(s.tasks))
	}
}

func TestSchedulerToleratesFrameAccumulation(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(0.4, func() { fired = true })

	// 24 帧 * 1/60 秒在浮点下略小于 0.4
	for i := 0; i < 24; i++ {
		s.Update(1.0 / 60.0)
	}
	if !fired {
		t.Error("task should fire after 24 frames at 60 FPS")
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	task := s.After(0.1, func() { fired = true })
	task.Cancel()
	task.Cancel()

	s.Update(1)
	if fired {
		t.Error("cancelled task fired")
	}
	if task.Pending() {
		t.Error("cancelled task should not be pending")
	}

	var nilTask *Task
	nilTask.Cancel()
	if nilTask.Pending() {
		t.Error("nil task should not be pending")
	}
}

func TestSchedulerTaskAddedInCallbackWaitsForNextUpdate(t *testing.T) {
	s := NewScheduler()
	innerFired := false
	s.After(0, func() {
		s.After(0, func() { innerFired = true })
	})

	s.Update(0.016)
	if innerFired {
		t.Fatal("task scheduled inside a callback must not run in the same Update")
	}
	s.Update(0.016)
	if !innerFired {
		t.Error("inner task should run on the next Update")
	}
}

func TestSchedulerCancelAllFromCallback(t *testing.T) {
	s := NewScheduler()
	second := false
	s.After(0.1, func() { s.CancelAll() })
	s.After(0.1, func() { second = true })

	s.Update(0.1)
	if second {
		t.Error("task cancelled by an earlier callback in the same Update still fired")
	}
	if len(s.tasks) != 0 {
		t.Errorf("%d tasks left, want 0", len(s.tasks))
	}
}
