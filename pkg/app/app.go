// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/tipcarousel/pkg/config"
	"github.com/decker502/tipcarousel/pkg/game"
	"github.com/decker502/tipcarousel/pkg/scenes"
	"github.com/decker502/tipcarousel/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "tipcarousel"

// sampleRate 音频采样率
const sampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Replay 忽略已完成的引导进度，重新展示提示
	Replay bool
	// TipsPath 提示列表文件，为空时使用 config.TipDeckPath
	TipsPath string
	// CarouselConfigPath 轮播配置文件，为空时使用 config.CarouselConfigPath
	CarouselConfigPath string
	// Persist 是否通过 gdata 持久化设置；关闭时只使用内存设置
	Persist bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	verbose         bool
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	deps, err := LoadDependencies(cfg)
	if err != nil {
		return nil, err
	}

	// 初始化音频上下文
	deps.AudioManager = game.NewAudioManager(audio.NewContext(sampleRate), deps.SettingsManager)
	log.Printf("[App] AudioManager initialized")

	deps.SceneManager.SetSceneFactory(scenes.NewSceneFactory(deps))
	initial := scenes.InitialScene(deps.SettingsManager, cfg.Replay)
	log.Printf("[App] Starting scene: %s", initial)
	if !deps.SceneManager.Load(initial) {
		return nil, fmt.Errorf("failed to create initial scene %q", initial)
	}

	if deps.SettingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    deps.SceneManager,
		settingsManager: deps.SettingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// LoadDependencies 加载配置、提示列表和设置，返回尚未设置场景工厂的依赖集合
// AudioManager 留空，由调用方决定是否创建音频上下文
func LoadDependencies(cfg Config) (scenes.Dependencies, error) {
	carouselPath := cfg.CarouselConfigPath
	if carouselPath == "" {
		carouselPath = config.CarouselConfigPath
	}
	carouselConfig, err := config.LoadCarouselConfig(carouselPath)
	if err != nil {
		return scenes.Dependencies{}, fmt.Errorf("轮播配置加载失败: %w", err)
	}

	tipsPath := cfg.TipsPath
	if tipsPath == "" {
		tipsPath = config.TipDeckPath
	}
	deck, err := config.LoadTipDeck(tipsPath)
	if err != nil {
		return scenes.Dependencies{}, fmt.Errorf("提示列表加载失败: %w", err)
	}
	log.Printf("[Config] Loaded %d tips from %s", len(deck.Tips), tipsPath)

	resourceManager := game.NewResourceManager()

	var store *gdata.Manager
	if cfg.Persist {
		store = openStorage()
	}

	return scenes.Dependencies{
		ResourceManager: resourceManager,
		SettingsManager: game.NewSettingsManager(store),
		SceneManager:    game.NewSceneManager(),
		CarouselConfig:  carouselConfig,
		Tips:            resourceManager.LoadTips(deck),
	}, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（降级为内存设置）
func openStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage directory unavailable: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		return nil
	}
	return manager
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 窗口关闭时让当前场景保存进度
	if ebiten.IsWindowBeingClosed() {
		a.SaveOnExit()
		return ebiten.Termination
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settingsManager.SetFullscreen(fullscreen)
		if err := a.settingsManager.Save(); err != nil {
			log.Printf("[App] Warning: failed to save settings: %v", err)
		}
	}

	// M 静音，-/= 调整音量
	for _, key := range soundKeys {
		if inpututil.IsKeyJustPressed(key) && applySoundKey(a.settingsManager, key) {
			if err := a.settingsManager.Save(); err != nil {
				log.Printf("[App] Warning: failed to save settings: %v", err)
			}
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// soundVolumeStep 每次按键调整的音量
const soundVolumeStep = 0.1

var soundKeys = []ebiten.Key{ebiten.KeyM, ebiten.KeyMinus, ebiten.KeyEqual}

// applySoundKey 按键修改音效设置（只改内存，由调用方保存）
// 返回 false 表示 key 不是音效快捷键
func applySoundKey(sm *game.SettingsManager, key ebiten.Key) bool {
	s := sm.GetSettings()
	switch key {
	case ebiten.KeyM:
		sm.SetSoundEnabled(!s.SoundEnabled)
	case ebiten.KeyMinus:
		sm.SetSoundVolume(s.SoundVolume - soundVolumeStep)
	case ebiten.KeyEqual:
		sm.SetSoundVolume(s.SoundVolume + soundVolumeStep)
	default:
		return false
	}
	log.Printf("[App] Sound enabled=%v volume=%.1f", s.SoundEnabled, s.SoundVolume)
	return true
}

// SaveOnExit 调用当前场景的 SaveOnExit（如果实现了 game.Saveable）
func (a *App) SaveOnExit() {
	if saveable, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Printf("[App] Warning: scene failed to save on exit")
		}
	}
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
