package carousel

// scheduleEpsilon 累计帧时间的浮点误差容限
const scheduleEpsilon = 1e-9

// Task 一次性延迟任务的句柄
type Task struct {
	delay     float64
	elapsed   float64
	fn        func()
	cancelled bool
	fired     bool
}

// Cancel 取消任务；已执行或已取消的任务调用无效果
func (t *Task) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Pending 任务是否仍在等待执行
func (t *Task) Pending() bool {
	return t != nil && !t.cancelled && !t.fired
}

// Remaining 距离执行还剩多少秒
func (t *Task) Remaining() float64 {
	if !t.Pending() {
		return 0
	}
	return t.delay - t.elapsed
}

// Scheduler 由游戏主循环驱动的延迟回调调度器
//
// 回调在 Update 内同步执行，与输入处理处于同一个 goroutine，不需要加锁。
type Scheduler struct {
	tasks []*Task
}

// NewScheduler 创建调度器
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After 在 delay 秒后执行 fn
func (s *Scheduler) After(delay float64, fn func()) *Task {
	if delay < 0 {
		delay = 0
	}
	t := &Task{delay: delay, fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

// Update 推进 dt 秒并执行到期的任务
// 在回调中新建的任务从下一次 Update 开始计时
func (s *Scheduler) Update(dt float64) {
	if len(s.tasks) == 0 {
		return
	}
	snapshot := append([]*Task(nil), s.tasks...)
	for _, t := range snapshot {
		if !t.Pending() {
			continue
		}
		t.elapsed += dt
		if t.elapsed+scheduleEpsilon >= t.delay {
			t.fired = true
			if t.fn != nil {
				t.fn()
			}
		}
	}

	kept := make([]*Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.Pending() {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
}

// CancelAll 取消所有等待中的任务
func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.Cancel()
	}
	s.tasks = nil
}
