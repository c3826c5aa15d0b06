//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 强制启用移动模式的环境变量（用于本地调试触摸布局）
const MobileEmulateEnv = "TIPCAROUSEL_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false，除非设置了 TIPCAROUSEL_MOBILE_EMULATE=1
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
