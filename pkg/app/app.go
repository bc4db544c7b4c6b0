// Package app 提供桌面端（Ebitengine）的应用包装器
//
// 该包将窗口循环从 main 包提取出来：创建场景管理器、键盘输入和俯视渲染器，
// 并把每个 tick 转发给当前竞技场场景。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/sumo/pkg/config"
	"github.com/decker502/sumo/pkg/game"
	"github.com/decker502/sumo/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 逻辑屏幕尺寸
const (
	WindowWidth  = 800
	WindowHeight = 600
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Gameplay 玩法配置，nil 时使用默认配置
	Gameplay *config.GameplayConfig
	// Seed 随机种子，0 时使用配置中的种子
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	input                    *KeyboardInput
	renderer                 *Renderer
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameplay := cfg.Gameplay
	if gameplay == nil {
		gameplay = config.DefaultGameplayConfig()
	}

	input := NewKeyboardInput()

	// 创建场景管理器，场景结束后按同一关卡ID重新创建
	sceneManager := game.NewSceneManager(func(levelID string) (game.Scene, error) {
		if levelID != scenes.ArenaLevelID {
			return nil, fmt.Errorf("unknown level %q", levelID)
		}
		return scenes.NewArenaScene(gameplay, input, cfg.Seed)
	})
	if err := sceneManager.LoadLevel(scenes.ArenaLevelID); err != nil {
		return nil, fmt.Errorf("竞技场加载失败: %w", err)
	}
	log.Printf("[App] Arena loaded")

	return &App{
		sceneManager: sceneManager,
		input:        input,
		renderer:     NewRenderer(WindowWidth, WindowHeight),
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(WindowWidth, WindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", WindowWidth, WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	deltaTime := 1.0 / 60.0
	return a.sceneManager.Update(deltaTime)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	arena, ok := a.sceneManager.GetCurrentScene().(*scenes.ArenaScene)
	if !ok {
		return
	}
	a.renderer.Draw(screen, arena, a.sceneManager.Restarts())
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

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowWidth, WindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
