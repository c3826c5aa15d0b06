package config

import (
	"fmt"

	"github.com/decker502/tipcarousel/pkg/carousel"
	"gopkg.in/yaml.v3"
)

// CarouselConfigPath 默认轮播配置文件
const CarouselConfigPath = "data/carousel.yaml"

// CarouselConfig 轮播手势与动画配置
//
// 配置文件位置: data/carousel.yaml
// 文件中缺省的字段使用 DefaultCarouselConfig 的值。
type CarouselConfig struct {
	// CardOffset 卡片飞出位置相对屏幕中心的偏移
	CardOffset float64 `yaml:"cardOffset"`
	// CommitThreshold 切换提示所需的最小水平拖动距离
	CommitThreshold float64 `yaml:"commitThreshold"`
	// SwapDelay 卡片飞出到换入新卡片的延迟（秒）
	SwapDelay float64 `yaml:"swapDelay"`

	Attachment SpringConfig `yaml:"attachment"`
	Drag       SpringConfig `yaml:"drag"`
	Snap       SpringConfig `yaml:"snap"`

	Card CardSizeConfig `yaml:"card"`
}

// SpringConfig 弹簧参数
type SpringConfig struct {
	// Frequency 固有频率（Hz），0 表示刚性
	Frequency float64 `yaml:"frequency"`
	// Damping 阻尼比
	Damping float64 `yaml:"damping"`
}

// CardSizeConfig 卡片尺寸
type CardSizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DefaultCarouselConfig 返回默认配置
func DefaultCarouselConfig() *CarouselConfig {
	d := carousel.DefaultConfig()
	return &CarouselConfig{
		CardOffset:      d.CardOffset,
		CommitThreshold: d.CommitThreshold,
		SwapDelay:       d.SwapDelay,
		Attachment:      SpringConfig{Frequency: d.AttachmentFrequency, Damping: d.AttachmentDamping},
		Drag:            SpringConfig{Frequency: d.DragFrequency, Damping: d.DragDamping},
		Snap:            SpringConfig{Damping: d.SnapDamping},
		Card:            CardSizeConfig{Width: DefaultCardWidth, Height: DefaultCardHeight},
	}
}

// LoadCarouselConfig 加载轮播配置
//
// 参数:
//   - path: 配置文件路径（如 "data/carousel.yaml"）
//
// 返回:
//   - *CarouselConfig: 加载成功后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadCarouselConfig(path string) (*CarouselConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read carousel config: %w", err)
	}
	return ParseCarouselConfig(data)
}

// ParseCarouselConfig 从 YAML 数据解析轮播配置
func ParseCarouselConfig(data []byte) (*CarouselConfig, error) {
	cfg := DefaultCarouselConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse carousel config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid carousel config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *CarouselConfig) Validate() error {
	if c.CardOffset <= 0 {
		return fmt.Errorf("cardOffset must be > 0, got %.1f", c.CardOffset)
	}
	if c.CommitThreshold <= 0 {
		return fmt.Errorf("commitThreshold must be > 0, got %.1f", c.CommitThreshold)
	}
	if c.SwapDelay < 0 {
		return fmt.Errorf("swapDelay must be >= 0, got %.2f", c.SwapDelay)
	}
	for name, s := range map[string]SpringConfig{"attachment": c.Attachment, "drag": c.Drag, "snap": c.Snap} {
		if s.Frequency < 0 || s.Damping < 0 {
			return fmt.Errorf("%s spring must have non-negative frequency and damping", name)
		}
	}
	if c.Card.Width <= 0 || c.Card.Height <= 0 {
		return fmt.Errorf("card size must be positive, got %.0fx%.0f", c.Card.Width, c.Card.Height)
	}
	return nil
}

// CarouselSettings 转换为 carousel.Config
func (c *CarouselConfig) CarouselSettings() carousel.Config {
	return carousel.Config{
		CardOffset:          c.CardOffset,
		CommitThreshold:     c.CommitThreshold,
		SwapDelay:           c.SwapDelay,
		AttachmentFrequency: c.Attachment.Frequency,
		AttachmentDamping:   c.Attachment.Damping,
		DragFrequency:       c.Drag.Frequency,
		DragDamping:         c.Drag.Damping,
		SnapDamping:         c.Snap.Damping,
	}
}
