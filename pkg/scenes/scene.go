package scenes

import (
	"github.com/decker502/tipcarousel/pkg/carousel"
	"github.com/decker502/tipcarousel/pkg/config"
	"github.com/decker502/tipcarousel/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// Dependencies 场景共享的管理器与配置
type Dependencies struct {
	ResourceManager *game.ResourceManager
	SettingsManager *game.SettingsManager
	AudioManager    *game.AudioManager
	SceneManager    *game.SceneManager

	CarouselConfig *config.CarouselConfig
	Tips           []carousel.Tip
}

// NewSceneFactory 返回按名称创建场景的工厂函数
//
// 轮播场景从上次看到的提示继续（引导已完成时从头开始）。
func NewSceneFactory(deps Dependencies) game.SceneFactory {
	return func(name string) game.Scene {
		switch name {
		case game.SceneCarousel:
			start := 0
			if deps.SettingsManager != nil && !deps.SettingsManager.GetSettings().OnboardingCompleted {
				start = deps.SettingsManager.GetSettings().LastTipIndex
			}
			return NewCarouselScene(deps, start)
		case game.SceneDone:
			return NewDoneScene(deps)
		default:
			return nil
		}
	}
}

// InitialScene 根据引导进度选择启动场景
func InitialScene(settings *game.SettingsManager, replay bool) string {
	if replay || settings == nil || !settings.GetSettings().OnboardingCompleted {
		return game.SceneCarousel
	}
	return game.SceneDone
}
