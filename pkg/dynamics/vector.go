package dynamics

import ebimath "github.com/edwinsyarief/ebi-math"

// ebimath.Vector 没有提供的二维刚体运算

// cross 二维叉积（标量），用于由力臂和力求力矩
func cross(a, b ebimath.Vector) float64 { return a.X*b.Y - a.Y*b.X }

// perp 角速度 ω 作用在力臂 r 上的线速度：ω × r
func perp(omega float64, r ebimath.Vector) ebimath.Vector {
	return ebimath.V(-omega*r.Y, omega*r.X)
}
