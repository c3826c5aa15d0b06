package systems

import (
	"github.com/decker502/tipcarousel/pkg/carousel"
	"github.com/decker502/tipcarousel/pkg/utils"
	ebimath "github.com/edwinsyarief/ebi-math"
)

// GestureSink 接收手势事件（carousel.Controller 实现了该接口）
type GestureSink interface {
	HandleGesture(ev carousel.GestureEvent)
}

// GestureInputSystem 手势输入系统
//
// 职责：
//   - 每帧更新 DragManager（触摸和鼠标）
//   - 把拖拽状态转换为 Began/Changed/Ended/Cancelled 手势事件
//   - 位置没有变化的拖拽帧不产生 Changed 事件
type GestureInputSystem struct {
	dragManager *utils.DragManager
	sink        GestureSink

	lastX, lastY int
}

// NewGestureInputSystem 创建手势输入系统
func NewGestureInputSystem(dm *utils.DragManager, sink GestureSink) *GestureInputSystem {
	return &GestureInputSystem{
		dragManager: dm,
		sink:        sink,
	}
}

// Update 读取本帧输入并分发手势事件
func (s *GestureInputSystem) Update() {
	s.dragManager.Update()
	s.Dispatch(s.dragManager.GetInfo())
}

// Dispatch 把一帧拖拽信息转换为手势事件并发送，返回是否发送了事件
func (s *GestureInputSystem) Dispatch(info utils.DragInfo) bool {
	ev, ok := GestureEventFor(info, s.lastX, s.lastY)
	if info.State != utils.DragStateNone {
		s.lastX, s.lastY = info.CurrentX, info.CurrentY
	}
	if !ok || s.sink == nil {
		return false
	}
	s.sink.HandleGesture(ev)
	return true
}

// GestureEventFor 拖拽状态到手势事件的映射
//
// lastX, lastY 是上一次发送事件时的位置，用于过滤静止的拖拽帧。
func GestureEventFor(info utils.DragInfo, lastX, lastY int) (carousel.GestureEvent, bool) {
	location := ebimath.V(float64(info.CurrentX), float64(info.CurrentY))

	switch info.State {
	case utils.DragStateStarted:
		return carousel.GestureEvent{Phase: carousel.GestureBegan, Location: location}, true
	case utils.DragStateDragging:
		if info.CurrentX == lastX && info.CurrentY == lastY {
			return carousel.GestureEvent{}, false
		}
		return carousel.GestureEvent{Phase: carousel.GestureChanged, Location: location}, true
	case utils.DragStateEnded:
		return carousel.GestureEvent{Phase: carousel.GestureEnded, Location: location}, true
	case utils.DragStateCancelled:
		return carousel.GestureEvent{Phase: carousel.GestureCancelled, Location: location}, true
	default:
		return carousel.GestureEvent{}, false
	}
}
