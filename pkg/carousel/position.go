package carousel

import (
	"math"

	ebimath "github.com/edwinsyarief/ebi-math"
)

// DefaultCardOffset 卡片飞出时相对屏幕中心的偏移量
// 纵向把卡片推出屏幕，横向偏向一侧，形成斜向"甩出"的效果
const DefaultCardOffset = 500.0

// CardPosition 卡片的逻辑位置
type CardPosition int

const (
	// Centered 居中，无旋转
	Centered CardPosition = iota
	// RotatedLeft 左下方屏幕外，逆时针旋转 90°
	RotatedLeft
	// RotatedRight 右下方屏幕外，顺时针旋转 90°
	RotatedRight
)

// String 返回位置名称（用于日志）
func (p CardPosition) String() string {
	switch p {
	case Centered:
		return "Centered"
	case RotatedLeft:
		return "RotatedLeft"
	case RotatedRight:
		return "RotatedRight"
	default:
		return "Unknown"
	}
}

// Pose 卡片的几何姿态：中心点与旋转角（弧度）
type Pose struct {
	Center   ebimath.Vector
	Rotation float64
}

// poseOffset 位置到 (dx, dy, 旋转) 的映射，偏移以 offset 为单位
var poseOffset = map[CardPosition]struct {
	dx, dy, rotation float64
}{
	Centered:     {0, 0, 0},
	RotatedLeft:  {-1, 1, -math.Pi / 2},
	RotatedRight: {1, 1, math.Pi / 2},
}

// Pose 计算卡片在该位置时的姿态
//
// 参数：
//   - center: 屏幕中心（卡片居中时的中心点）
//   - offset: 飞出偏移量，通常为 DefaultCardOffset
//
// 未知的位置按 Centered 处理。
func (p CardPosition) Pose(center ebimath.Vector, offset float64) Pose {
	o, ok := poseOffset[p]
	if !ok {
		o = poseOffset[Centered]
	}
	return Pose{
		Center:   ebimath.V(center.X+o.dx*offset, center.Y+o.dy*offset),
		Rotation: o.rotation,
	}
}
