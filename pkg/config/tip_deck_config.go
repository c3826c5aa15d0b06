package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TipDeckPath 默认提示列表文件
const TipDeckPath = "data/tips.yaml"

// TipDeck 提示列表配置
//
// 列表顺序就是展示顺序。
type TipDeck struct {
	Tips []TipEntry `yaml:"tips"`
}

// TipEntry 单条提示
type TipEntry struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	// Image 可选配图路径（以 data/ 开头），为空表示无图
	Image string `yaml:"image,omitempty"`
}

// LoadTipDeck 加载提示列表
func LoadTipDeck(path string) (*TipDeck, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tip deck: %w", err)
	}
	return ParseTipDeck(data)
}

// ParseTipDeck 从 YAML 数据解析提示列表
// 空列表是合法的：轮播会立即关闭
func ParseTipDeck(data []byte) (*TipDeck, error) {
	var deck TipDeck
	if err := yaml.Unmarshal(data, &deck); err != nil {
		return nil, fmt.Errorf("failed to parse tip deck: %w", err)
	}
	if err := deck.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tip deck: %w", err)
	}
	return &deck, nil
}

// Validate 每条提示必须有标题
func (d *TipDeck) Validate() error {
	for i, tip := range d.Tips {
		if strings.TrimSpace(tip.Title) == "" {
			return fmt.Errorf("tip %d has an empty title", i)
		}
	}
	return nil
}
