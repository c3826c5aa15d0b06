package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/tipcarousel/pkg/carousel"
	"github.com/decker502/tipcarousel/pkg/embedded"
)

func TestDefaultCarouselConfigMatchesCarouselDefaults(t *testing.T) {
	got := DefaultCarouselConfig().CarouselSettings()
	want := carousel.DefaultConfig()
	if got != want {
		t.Errorf("CarouselSettings() = %+v, want %+v", got, want)
	}
	if err := DefaultCarouselConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestParseCarouselConfigPartialOverride(t *testing.T) {
	cfg, err := ParseCarouselConfig([]byte("commitThreshold: 80\nsnap:\n  damping: 0.5\n"))
	if err != nil {
		t.Fatalf("ParseCarouselConfig error: %v", err)
	}
	if cfg.CommitThreshold != 80 {
		t.Errorf("CommitThreshold = %v, want 80", cfg.CommitThreshold)
	}
	if cfg.Snap.Damping != 0.5 {
		t.Errorf("Snap.Damping = %v, want 0.5", cfg.Snap.Damping)
	}
	// 未指定的字段保留默认值
	if cfg.CardOffset != carousel.DefaultCardOffset {
		t.Errorf("CardOffset = %v, want default %v", cfg.CardOffset, carousel.DefaultCardOffset)
	}
	if cfg.SwapDelay != 0.4 {
		t.Errorf("SwapDelay = %v, want 0.4", cfg.SwapDelay)
	}
}

func TestParseCarouselConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"malformed yaml", "cardOffset: [1, 2", "failed to parse"},
		{"zero offset", "cardOffset: 0", "cardOffset"},
		{"negative threshold", "commitThreshold: -5", "commitThreshold"},
		{"negative delay", "swapDelay: -0.1", "swapDelay"},
		{"negative spring", "drag:\n  frequency: -1", "drag spring"},
		{"zero card width", "card:\n  width: 0", "card size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCarouselConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadCarouselConfigFromDisk(t *testing.T) {
	embedded.Reset()
	path := filepath.Join(t.TempDir(), "carousel.yaml")
	if err := os.WriteFile(path, []byte("swapDelay: 0.25\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCarouselConfig(path)
	if err != nil {
		t.Fatalf("LoadCarouselConfig error: %v", err)
	}
	if cfg.SwapDelay != 0.25 {
		t.Errorf("SwapDelay = %v, want 0.25", cfg.SwapDelay)
	}

	if _, err := LoadCarouselConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestShippedCarouselConfig 验证仓库中的 data/carousel.yaml 可以被解析
func TestShippedCarouselConfig(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", CarouselConfigPath))
	if err != nil {
		t.Skipf("shipped config not found: %v", err)
	}
	cfg, err := ParseCarouselConfig(data)
	if err != nil {
		t.Fatalf("shipped carousel.yaml is invalid: %v", err)
	}
	if cfg.CommitThreshold != 100 || cfg.CardOffset != 500 || cfg.SwapDelay != 0.4 {
		t.Errorf("shipped config = %+v, want threshold 100, offset 500, delay 0.4", cfg)
	}
}
