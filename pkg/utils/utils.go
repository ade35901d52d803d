// Package utils 通用小工具，不依赖 internal
package utils

import (
	"os"
	"time"
)

// CoalesceString 返回第一个非空字符串
func CoalesceString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}

// DefaultInt 若 v 为 0 则返回 defaultVal
func DefaultInt(v, defaultVal int) int {
	if v == 0 {
		return defaultVal
	}
	return v
}

// Clamp01 把 v 压到 [0,1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// NowMs 当前 Unix 毫秒
func NowMs() int64 {
	return time.Now().UnixMilli()
}

// EnsureDir 创建目录（含父级），已存在时为 no-op
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
