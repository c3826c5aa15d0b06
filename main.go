package main

import (
	"flag"
	"log"

	"github.com/decker502/tipcarousel/pkg/app"
	"github.com/decker502/tipcarousel/pkg/config"
	"github.com/decker502/tipcarousel/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
)

var (
	// 命令行参数
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	replay  = flag.Bool("replay", false, "忽略已完成的引导，重新展示提示")
	tips    = flag.String("tips", "", "提示列表文件（默认使用内置 data/tips.yaml）")
)

func main() {
	flag.Parse()

	// 可选的 .env（例如 TIPCAROUSEL_MOBILE_EMULATE=1）
	if err := godotenv.Load(); err != nil && *verbose {
		log.Printf("[Main] No .env file loaded: %v", err)
	}

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		Replay:   *replay,
		TipsPath: *tips,
		Persist:  true,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.WindowSize())
	ebiten.SetWindowTitle("Tips")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
