package components

// PageIndicatorComponent 页码指示器（圆点）
type PageIndicatorComponent struct {
	Current int // 当前页（从 0 开始）
	Total   int // 总页数

	// DisplayCurrent 高亮圆点的显示位置，每帧向 Current 缓动
	DisplayCurrent float64
}

// SetPage 更新页码，越界的 current 会被限制在 [0, total-1]
func (p *PageIndicatorComponent) SetPage(current, total int) {
	if total < 0 {
		total = 0
	}
	if current >= total {
		current = total - 1
	}
	if current < 0 {
		current = 0
	}
	// 首次设置时直接跳到目标位置
	if p.Total == 0 {
		p.DisplayCurrent = float64(current)
	}
	p.Current = current
	p.Total = total
}
