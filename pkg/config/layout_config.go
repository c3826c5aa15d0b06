package config

// 逻辑屏幕尺寸（竖屏），Ebitengine 负责缩放到实际窗口
const (
	ScreenWidth  = 480
	ScreenHeight = 800
)

// 默认卡片尺寸
const (
	DefaultCardWidth  = 300.0
	DefaultCardHeight = 400.0
)

// 卡片内部布局
const (
	CardPadding      = 20.0  // 卡片内边距
	CardImageHeight  = 160.0 // 配图区域高度
	CardTitleSize    = 26.0  // 标题字号
	CardSummarySize  = 17.0  // 正文字号
	CardCornerRadius = 14.0  // 圆角半径
)

// 页码指示器布局
const (
	PageIndicatorY       = ScreenHeight - 70.0 // 圆点中心 Y 坐标
	PageIndicatorSpacing = 22.0                // 圆点间距
	PageIndicatorRadius  = 5.0                 // 圆点半径
)

// DesktopWindowScale 桌面窗口相对逻辑尺寸的缩放
const DesktopWindowScale = 0.85

// WindowSize 返回桌面窗口尺寸
func WindowSize() (width, height int) {
	return int(ScreenWidth * DesktopWindowScale), int(ScreenHeight * DesktopWindowScale)
}

// ScreenCenter 返回逻辑屏幕中心
func ScreenCenter() (x, y float64) {
	return ScreenWidth / 2, ScreenHeight / 2
}
