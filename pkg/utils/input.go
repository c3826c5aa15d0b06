// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ============================================================================
// 拖拽状态管理器 - 跟踪卡片拖拽的按下、移动、释放
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放）
	DragStateEnded
	// DragStateCancelled 拖拽被取消（窗口失去焦点）
	DragStateCancelled
)

// String 返回状态名称（用于日志）
func (s DragState) String() string {
	switch s {
	case DragStateNone:
		return "None"
	case DragStateStarted:
		return "Started"
	case DragStateDragging:
		return "Dragging"
	case DragStateEnded:
		return "Ended"
	case DragStateCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// DragInfo 拖拽信息
type DragInfo struct {
	// State 当前拖拽状态
	State DragState
	// StartX, StartY 拖拽起始位置（屏幕坐标）
	StartX, StartY int
	// CurrentX, CurrentY 当前位置（屏幕坐标），释放后保持最后位置
	CurrentX, CurrentY int
	// TouchID 当前跟踪的触摸ID（-1 表示鼠标）
	TouchID ebiten.TouchID
	// IsTouchInput 是否为触摸输入（区分触摸和鼠标）
	IsTouchInput bool
}

// PointerSample 单帧的指针采样
// 由 DragManager.Update 从 Ebitengine 读取，测试中可以直接构造
type PointerSample struct {
	// JustPressed 本帧刚按下
	JustPressed bool
	// Pressed 跟踪中的指针是否仍按住
	Pressed bool
	// X, Y 指针位置
	X, Y int
	// TouchID 触摸ID（鼠标为 -1）
	TouchID ebiten.TouchID
	// IsTouch 是否为触摸输入
	IsTouch bool
	// Focused 窗口是否有焦点
	Focused bool
}

// DragManager 拖拽管理器
// 跟踪触摸/鼠标的拖拽状态，同一时间只跟踪一个指针
type DragManager struct {
	info DragInfo
}

// NewDragManager 创建拖拽管理器
func NewDragManager() *DragManager {
	dm := &DragManager{}
	dm.Reset()
	return dm
}

// Update 更新拖拽状态（每帧调用一次）
func (dm *DragManager) Update() {
	dm.Step(dm.sample())
}

// sample 从 Ebitengine 读取本帧指针状态
func (dm *DragManager) sample() PointerSample {
	s := PointerSample{TouchID: -1, Focused: ebiten.IsFocused()}

	switch dm.info.State {
	case DragStateStarted, DragStateDragging:
		if dm.info.IsTouchInput {
			s.IsTouch = true
			s.TouchID = dm.info.TouchID
			for _, id := range ebiten.AppendTouchIDs(nil) {
				if id == dm.info.TouchID {
					s.Pressed = true
					s.X, s.Y = ebiten.TouchPosition(id)
					break
				}
			}
			return s
		}
		s.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		s.X, s.Y = ebiten.CursorPosition()
		return s
	}

	// 优先检测触摸输入
	if justPressed := inpututil.AppendJustPressedTouchIDs(nil); len(justPressed) > 0 {
		s.JustPressed = true
		s.Pressed = true
		s.IsTouch = true
		s.TouchID = justPressed[0]
		s.X, s.Y = ebiten.TouchPosition(justPressed[0])
		return s
	}

	// 检测鼠标输入
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.JustPressed = true
		s.Pressed = true
		s.X, s.Y = ebiten.CursorPosition()
	}
	return s
}

// Step 根据一帧采样推进状态机
//
// 状态转换：
//   - None -> Started：按下
//   - Started/Dragging -> Dragging：仍按住，更新位置
//   - Started/Dragging -> Ended：释放，位置保持在最后一次采样
//   - Started/Dragging -> Cancelled：窗口失去焦点
//   - Ended/Cancelled -> None：只持续一帧
func (dm *DragManager) Step(s PointerSample) {
	switch dm.info.State {
	case DragStateNone:
		if !s.Focused || !s.JustPressed {
			return
		}
		touchID := s.TouchID
		if !s.IsTouch {
			touchID = -1
		}
		dm.info = DragInfo{
			State:        DragStateStarted,
			StartX:       s.X,
			StartY:       s.Y,
			CurrentX:     s.X,
			CurrentY:     s.Y,
			TouchID:      touchID,
			IsTouchInput: s.IsTouch,
		}

	case DragStateStarted, DragStateDragging:
		switch {
		case !s.Focused:
			dm.info.State = DragStateCancelled
		case !s.Pressed:
			dm.info.State = DragStateEnded
		default:
			dm.info.State = DragStateDragging
			dm.info.CurrentX, dm.info.CurrentY = s.X, s.Y
		}

	case DragStateEnded, DragStateCancelled:
		dm.Reset()
	}
}

// Reset 重置拖拽状态
func (dm *DragManager) Reset() {
	dm.info = DragInfo{
		State:   DragStateNone,
		TouchID: -1,
	}
}

// GetState 获取当前拖拽状态
func (dm *DragManager) GetState() DragState {
	return dm.info.State
}

// GetInfo 获取完整拖拽信息
func (dm *DragManager) GetInfo() DragInfo {
	return dm.info
}

// IsDragging 是否正在拖拽
func (dm *DragManager) IsDragging() bool {
	return dm.info.State == DragStateDragging
}

// JustStarted 是否刚开始拖拽（本帧）
func (dm *DragManager) JustStarted() bool {
	return dm.info.State == DragStateStarted
}

// JustEnded 是否刚结束拖拽（本帧）
func (dm *DragManager) JustEnded() bool {
	return dm.info.State == DragStateEnded
}

// JustCancelled 是否刚取消拖拽（本帧）
func (dm *DragManager) JustCancelled() bool {
	return dm.info.State == DragStateCancelled
}

// GetDragDistance 获取拖拽距离（从起点到当前位置）
func (dm *DragManager) GetDragDistance() (dx, dy int) {
	return dm.info.CurrentX - dm.info.StartX, dm.info.CurrentY - dm.info.StartY
}

// IsTouchDrag 是否为触摸拖拽
func (dm *DragManager) IsTouchDrag() bool {
	return dm.info.IsTouchInput
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
