package components

import ebimath "github.com/edwinsyarief/ebi-math"

// BodyComponent 动力学刚体状态
// 由 dynamics.Animator 读写；渲染系统只读 TransformComponent
type BodyComponent struct {
	Velocity        ebimath.Vector // 线速度（像素/秒）
	AngularVelocity float64        // 角速度（弧度/秒）

	Mass    float64 // 质量，<= 0 时按 1 处理
	Inertia float64 // 转动惯量，<= 0 时由 Width/Height 推导

	// 卡片尺寸，用于推导转动惯量
	Width, Height float64
}

// MomentOfInertia 返回有效转动惯量（矩形板绕中心）
func (b *BodyComponent) MomentOfInertia() float64 {
	if b.Inertia > 0 {
		return b.Inertia
	}
	m := b.EffectiveMass()
	i := m * (b.Width*b.Width + b.Height*b.Height) / 12
	if i <= 0 {
		return m
	}
	return i
}

// EffectiveMass 返回有效质量
func (b *BodyComponent) EffectiveMass() float64 {
	if b.Mass <= 0 {
		return 1
	}
	return b.Mass
}
