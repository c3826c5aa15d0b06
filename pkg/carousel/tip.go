package carousel

import "image"

// Tip 一条引导提示
//
// 由宿主在展示前创建，展示期间只读。
type Tip struct {
	Title   string
	Summary string
	// Image 可选配图，nil 表示没有图片（渲染为空白）
	Image image.Image
}

// HasImage 是否带有配图
func (t Tip) HasImage() bool {
	return t.Image != nil
}
