package carousel

import (
	"github.com/decker502/tipcarousel/pkg/dynamics"
	"github.com/decker502/tipcarousel/pkg/ecs"
	ebimath "github.com/edwinsyarief/ebi-math"
)

// AnimationEngine 物理动画引擎能力
// dynamics.Animator 是默认实现；测试中可以替换为记录调用的假实现
type AnimationEngine interface {
	AddBehavior(b dynamics.Behavior)
	RemoveBehavior(b dynamics.Behavior)
	RemoveAllBehaviors()
	// SyncState 让引擎接受卡片当前的位置和旋转，丢弃缓存的速度
	SyncState(item ecs.EntityID)
}

// Host 宿主视图系统
//
// Controller 通过它创建/销毁卡片、摆放卡片、绑定内容，并在提示全部展示完毕后请求关闭。
type Host interface {
	// ScreenCenter 返回卡片居中时的中心点
	ScreenCenter() ebimath.Vector

	// CreateCard 创建一张新卡片并返回其实体 ID
	CreateCard() ecs.EntityID
	// DestroyCard 销毁卡片
	DestroyCard(card ecs.EntityID)

	// CardPose 返回卡片当前姿态
	CardPose(card ecs.EntityID) Pose
	// SetCardPose 瞬间设置卡片姿态
	SetCardPose(card ecs.EntityID, pose Pose)

	// BindCard 把提示内容绑定到卡片；tip 为 nil 时清空卡片
	BindCard(card ecs.EntityID, tip *Tip)
	// SetPage 更新页码指示器
	SetPage(current, total int)

	// Dismiss 请求宿主关闭轮播
	Dismiss()
}
