package config

import (
	"fmt"
	"os"

	"github.com/decker502/tipcarousel/pkg/embedded"
)

// readConfigFile 读取配置文件
// 优先从嵌入资源读取，找不到时回退到本地文件系统（方便调试时替换配置）
func readConfigFile(path string) ([]byte, error) {
	if embedded.Exists(path) {
		return embedded.ReadFile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
