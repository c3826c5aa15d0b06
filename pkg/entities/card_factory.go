package entities

import (
	"github.com/decker502/tipcarousel/pkg/components"
	"github.com/decker502/tipcarousel/pkg/ecs"
	ebimath "github.com/edwinsyarief/ebi-math"
)

// NewCardEntity 创建一张空白提示卡片
// 参数:
//   - manager: EntityManager 实例
//   - center: 卡片中心的初始位置
//   - width, height: 卡片尺寸
//
// 返回: 创建的实体ID
func NewCardEntity(manager *ecs.EntityManager, center ebimath.Vector, width, height float64) ecs.EntityID {
	id := manager.CreateEntity()

	manager.AddComponent(id, &components.TransformComponent{
		Position: center,
	})

	// 质量为 1；转动惯量由尺寸推导（矩形板）
	manager.AddComponent(id, &components.BodyComponent{
		Mass:   1,
		Width:  width,
		Height: height,
	})

	manager.AddComponent(id, &components.CardComponent{
		Width:  width,
		Height: height,
	})

	return id
}

// NewPageIndicatorEntity 创建页码指示器
func NewPageIndicatorEntity(manager *ecs.EntityManager) ecs.EntityID {
	id := manager.CreateEntity()
	manager.AddComponent(id, &components.PageIndicatorComponent{})
	return id
}
