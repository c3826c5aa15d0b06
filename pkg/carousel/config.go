package carousel

// Config 轮播的手势与动画参数
type Config struct {
	// CardOffset 飞出位置相对屏幕中心的偏移
	CardOffset float64
	// CommitThreshold 松手时手指距屏幕中心的水平距离达到此值才切换提示
	CommitThreshold float64
	// SwapDelay 卡片飞出后到换入下一张卡片的延迟（秒）
	SwapDelay float64

	// AttachmentFrequency / AttachmentDamping 常驻附着弹簧参数
	AttachmentFrequency float64
	AttachmentDamping   float64

	// DragFrequency / DragDamping 拖动时临时附着行为的弹簧参数，频率 0 表示刚性
	DragFrequency float64
	DragDamping   float64
	// SnapDamping 吸附行为阻尼比
	SnapDamping float64
}

// DefaultConfig 返回默认参数
func DefaultConfig() Config {
	return Config{
		CardOffset:          DefaultCardOffset,
		CommitThreshold:     100,
		SwapDelay:           0.4,
		AttachmentFrequency: 1.0,
		AttachmentDamping:   0.6,
		DragFrequency:       0,
		DragDamping:         1,
		SnapDamping:         0.7,
	}
}
