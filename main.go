package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/sumo/pkg/app"
	"github.com/decker502/sumo/pkg/config"
	"github.com/decker502/sumo/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	configPath = flag.String("config", "", "玩法配置文件（默认使用内嵌的 data/arena.yaml）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用配置中的种子）")
	verbose    = flag.Bool("verbose", false, "显示详细日志")
)

// loadGameplayConfig 优先读取 -config 指定的文件，否则使用内嵌配置
func loadGameplayConfig() (*config.GameplayConfig, error) {
	if *configPath != "" {
		return config.LoadGameplayConfig(*configPath)
	}
	data, err := embedded.ReadFile(embedded.DefaultGameplayConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseGameplayConfig(data)
}

func main() {
	flag.Parse()

	// 初始化嵌入资源（必须在任何配置加载之前）
	embedded.Init(dataFS)

	cfg, err := loadGameplayConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
		os.Exit(1)
	}

	game, err := app.NewApp(app.Config{
		Verbose:  *verbose,
		Gameplay: cfg,
		Seed:     *seed,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(app.WindowWidth, app.WindowHeight)
	ebiten.SetWindowTitle("Sumo Arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
