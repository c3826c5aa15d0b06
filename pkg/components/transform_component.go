package components

import ebimath "github.com/edwinsyarief/ebi-math"

// TransformComponent 卡片的几何姿态
// Position 是卡片中心的屏幕坐标，Rotation 是绕中心的旋转角（弧度，顺时针为正）
type TransformComponent struct {
	Position ebimath.Vector
	Rotation float64
}
