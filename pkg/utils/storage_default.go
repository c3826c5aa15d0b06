//go:build !android

package utils

// EnsureStorageDir 非 Android 平台的空实现，gdata 会自行创建目录
func EnsureStorageDir() error {
	return nil
}
