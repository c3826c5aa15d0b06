package utils

import (
	"math"
	"testing"
)

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := EaseOutCubic(tt.input); math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseInOutCubic 测试三次方缓入缓出函数
func TestEaseInOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"四分之一", 0.25, 0.0625},
		{"中点", 0.5, 0.5},
		{"终点", 1.0, 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := EaseInOutCubic(tt.input); math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseInOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLerpAndClamp(t *testing.T) {
	if got := Lerp(10, 20, 0.5); got != 15 {
		t.Errorf("Lerp(10, 20, 0.5) = %v, 期望 15", got)
	}
	if got := Clamp01(-0.5); got != 0 {
		t.Errorf("Clamp01(-0.5) = %v, 期望 0", got)
	}
	if got := Clamp01(1.5); got != 1 {
		t.Errorf("Clamp01(1.5) = %v, 期望 1", got)
	}
}

// TestApproach 测试指数逼近
func TestApproach(t *testing.T) {
	v := 0.0
	for i := 0; i < 120; i++ {
		v = Approach(v, 3, 12, 1.0/60)
	}
	if v != 3 {
		t.Errorf("Approach should settle on target, got %v", v)
	}

	// 分帧与整段时间结果一致（与帧率无关）
	a := Approach(0, 1, 5, 0.1)
	b := Approach(Approach(0, 1, 5, 0.05), 1, 5, 0.05)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("Approach not frame-rate independent: %v vs %v", a, b)
	}

	if got := Approach(2, 5, 0, 1); got != 2 {
		t.Errorf("zero rate should not move, got %v", got)
	}
}
