// arena-tui 在终端中运行竞技场
//
// 用法:
//
//	go run ./cmd/arena-tui [-config data/arena.yaml] [-seed 42] [-verbose]
//
// 详细日志写入 arena-tui.log（终端被游戏画面占用）。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/sumo/pkg/config"
	"github.com/decker502/sumo/pkg/tui"
	"github.com/gdamore/tcell/v2"
)

var (
	configPath = flag.String("config", "", "玩法配置文件（默认使用内置配置）")
	seed       = flag.Int64("seed", 0, "随机种子（0 表示使用配置中的种子）")
	verbose    = flag.Bool("verbose", false, "把详细日志写入 arena-tui.log")
)

func main() {
	flag.Parse()

	if *verbose {
		logFile, err := os.Create("arena-tui.log")
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法创建日志文件: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameplayConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameplayConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "配置加载失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "终端初始化失败: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "终端初始化失败: %v\n", err)
		os.Exit(1)
	}

	frontend, err := tui.New(screen, cfg, *seed)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "竞技场创建失败: %v\n", err)
		os.Exit(1)
	}

	runErr := frontend.Run()
	screen.Fini()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "运行出错: %v\n", runErr)
		os.Exit(1)
	}
}
