package components

import "github.com/hajimehoshi/ebiten/v2"

// CardComponent 提示卡片的内容
//
// 每个提示索引对应一个新建的卡片实体；切换提示时旧实体被销毁，不复用。
// Bound 为 false 表示卡片内容已清空（没有待显示的提示）。
type CardComponent struct {
	Bound bool

	Title   string
	Summary string
	Image   *ebiten.Image // 可为 nil，渲染为空白图片区域

	Width, Height float64
}

// Clear 清空卡片内容
func (c *CardComponent) Clear() {
	c.Bound = false
	c.Title = ""
	c.Summary = ""
	c.Image = nil
}
