//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 确保 Android 上 gdata 的存储目录存在并可写
// gdata 使用 /data/data/{package}/ 作为根目录，但不会预先创建子目录，
// 需要在 gdata.Open 之前调用。
func EnsureStorageDir() error {
	root := storagePath()
	if root == "" {
		return fmt.Errorf("failed to detect Android package name")
	}

	dir := filepath.Join(root, "saves")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	probe := filepath.Join(dir, ".write_test")
	if err := os.WriteFile(probe, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("storage directory %s is not writable: %w", dir, err)
	}
	return os.Remove(probe)
}

// storagePath 返回 /data/data/{package}，无法识别包名时返回空字符串
func storagePath() string {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return ""
	}

	// cmdline 以 NUL 分隔，第一个字段就是包名
	name := make([]byte, 0, len(data))
	for _, ch := range data {
		if ch == 0 {
			break
		}
		if ch != '\n' {
			name = append(name, ch)
		}
	}
	if len(name) == 0 {
		return ""
	}
	return filepath.Join("/data/data", string(name))
}
