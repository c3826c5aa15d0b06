// verify_carousel 提示轮播验证程序
//
// 直接运行轮播场景（不读写存档），并在左上角显示控制器状态。
//
// 用法：
//
//	go run ./cmd/verify_carousel --start 1 --tips data/tips.yaml --verbose
//
// 按键：
//   - 方向键：翻页
//   - Esc：关闭轮播
//   - R：重新开始
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/tipcarousel/pkg/app"
	"github.com/decker502/tipcarousel/pkg/config"
	"github.com/decker502/tipcarousel/pkg/embedded"
	"github.com/decker502/tipcarousel/pkg/game"
	"github.com/decker502/tipcarousel/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	// 命令行参数
	start   = flag.Int("start", 0, "起始提示索引")
	tips    = flag.String("tips", config.TipDeckPath, "提示列表文件")
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
)

// VerifyCarouselGame 轮播验证程序
type VerifyCarouselGame struct {
	deps  scenes.Dependencies
	scene *scenes.CarouselScene
}

// NewVerifyCarouselGame 创建验证程序实例
func NewVerifyCarouselGame() (*VerifyCarouselGame, error) {
	deps, err := app.LoadDependencies(app.Config{TipsPath: *tips})
	if err != nil {
		return nil, fmt.Errorf("failed to load dependencies: %w", err)
	}
	deps.AudioManager = game.NewAudioManager(audio.NewContext(48000), deps.SettingsManager)
	// 不设置场景工厂：轮播关闭后停留在空场景，按 R 重新开始
	deps.SceneManager = nil

	g := &VerifyCarouselGame{deps: deps}
	g.restart()
	return g, nil
}

func (g *VerifyCarouselGame) restart() {
	log.Printf("[VerifyCarousel] Presenting %d tips from %d", len(g.deps.Tips), *start)
	g.scene = scenes.NewCarouselScene(g.deps, *start)
}

// Update 更新逻辑
func (g *VerifyCarouselGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart()
	}
	g.scene.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制场景和状态信息
func (g *VerifyCarouselGame) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)

	c := g.scene.Controller()
	pose := "-"
	if c.Active() {
		pose = c.Position().String()
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"tip %d/%d  position=%s\ngesture=%s  swapIn=%.2fs\nbehaviors=%d  entities=%d  dismissed=%v\n[<-/->] flick  [Esc] dismiss  [R] restart",
		c.Index()+1, c.Count(), pose,
		c.GestureState(), c.SwapRemaining(),
		len(g.scene.Animator().Behaviors()), g.scene.EntityManager().EntityCount(), c.Dismissed(),
	))
}

// Layout 返回逻辑屏幕尺寸
func (g *VerifyCarouselGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	// 验证程序直接读取磁盘上的 data/ 目录
	embedded.Init(os.DirFS("."))

	g, err := NewVerifyCarouselGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.WindowSize())
	ebiten.SetWindowTitle("Verify Tip Carousel")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
