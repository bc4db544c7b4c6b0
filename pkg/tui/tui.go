// Package tui 提供基于 tcell 的终端前端
//
// 终端只上报按键按下事件，没有抬起事件：方向键按下后在 HoldFrames 帧内
// 保持轴输入，期间再次收到同一按键则刷新保持时间。
package tui

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/decker502/sumo/pkg/config"
	"github.com/decker502/sumo/pkg/game"
	"github.com/decker502/sumo/pkg/host"
	"github.com/decker502/sumo/pkg/scenes"
	"github.com/decker502/sumo/pkg/types"
	"github.com/decker502/sumo/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// HoldFrames 单次按键保持轴输入的帧数（60 FPS 下约 150ms）
const HoldFrames = 9

// FrameTime 每帧模拟时长（秒）
const FrameTime = 1.0 / 60.0

// heldAxis 一个被按住的轴方向
type heldAxis struct {
	value  float64
	frames int
}

// Frontend 终端前端
type Frontend struct {
	screen  tcell.Screen
	manager *game.SceneManager
	input   *game.ManualInput
	held    map[string]heldAxis
}

// New 创建终端前端并加载竞技场
//
// 参数:
//   - screen: 已初始化的 tcell 屏幕（测试中使用 SimulationScreen）
//   - cfg: 玩法配置，nil 时使用默认配置
//   - seed: 随机种子，0 时使用配置中的种子
//
// 返回:
//   - *Frontend: 前端实例
//   - error: 竞技场创建失败时返回错误
func New(screen tcell.Screen, cfg *config.GameplayConfig, seed int64) (*Frontend, error) {
	input := game.NewManualInput()
	manager := game.NewSceneManager(func(levelID string) (game.Scene, error) {
		if levelID != scenes.ArenaLevelID {
			return nil, fmt.Errorf("unknown level %q", levelID)
		}
		return scenes.NewArenaScene(cfg, input, seed)
	})
	if err := manager.LoadLevel(scenes.ArenaLevelID); err != nil {
		return nil, err
	}

	return &Frontend{
		screen:  screen,
		manager: manager,
		input:   input,
		held:    make(map[string]heldAxis),
	}, nil
}

// Arena 返回当前竞技场场景
func (f *Frontend) Arena() *scenes.ArenaScene {
	arena, _ := f.manager.GetCurrentScene().(*scenes.ArenaScene)
	return arena
}

// Input 返回前端写入的输入源
func (f *Frontend) Input() *game.ManualInput {
	return f.input
}

// HandleEvent 处理一个终端事件
//
// 返回:
//   - bool: false 表示用户请求退出
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			f.hold(host.AxisVertical, 1)
		case tcell.KeyDown:
			f.hold(host.AxisVertical, -1)
		case tcell.KeyRight:
			f.hold(host.AxisHorizontal, 1)
		case tcell.KeyLeft:
			f.hold(host.AxisHorizontal, -1)
		case tcell.KeyRune:
			return f.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

// handleRune 处理字符按键
func (f *Frontend) handleRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		return false
	case 'w', 'W':
		f.hold(host.AxisVertical, 1)
	case 's', 'S':
		f.hold(host.AxisVertical, -1)
	case 'd', 'D':
		f.hold(host.AxisHorizontal, 1)
	case 'a', 'A':
		f.hold(host.AxisHorizontal, -1)
	case ' ':
		f.input.Press(host.KeyAbility)
	case 'r', 'R':
		f.input.Press(host.KeyRestart)
	}
	return true
}

// hold 按下轴方向并刷新保持时间
func (f *Frontend) hold(axis string, value float64) {
	f.held[axis] = heldAxis{value: value, frames: HoldFrames}
	f.input.SetAxis(axis, value)
}

// Step 推进一帧：衰减按键保持、更新场景
func (f *Frontend) Step() error {
	for axis, h := range f.held {
		h.frames--
		if h.frames <= 0 {
			delete(f.held, axis)
			f.input.SetAxis(axis, 0)
			continue
		}
		f.held[axis] = h
	}
	return f.manager.Update(FrameTime)
}

// Run 运行事件循环，直到用户退出
func (f *Frontend) Run() error {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(f.screen, events, done)

	for {
		select {
		case ev := <-events:
			if ev == nil || !f.HandleEvent(ev) {
				log.Printf("[TUI] 退出")
				return nil
			}
		case <-ticker.C:
			if err := f.Step(); err != nil {
				return err
			}
			f.Draw()
		}
	}
}

// forwardEvents 把终端事件转发到 events，done 关闭或屏幕 Fini（PollEvent 返回 nil）后退出
func forwardEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		select {
		case events <- ev:
		case <-done:
			return
		}
		if ev == nil {
			return
		}
	}
}

// 各标签在终端上的字符与颜色
var glyphs = map[types.Tag]struct {
	r     rune
	color tcell.Color
}{
	types.TagPlayer:     {'@', tcell.ColorAqua},
	types.TagEnemy:      {'e', tcell.ColorRed},
	types.TagBoss:       {'B', tcell.ColorFuchsia},
	types.TagPowerUp:    {'+', tcell.ColorGreen},
	types.TagProjectile: {'*', tcell.ColorYellow},
}

// powerUpGlyphs 拾取物按能力类型显示
var powerUpGlyphs = map[types.PowerUpKind]rune{
	types.PowerUpPushBack: 'P',
	types.PowerUpRocket:   'R',
	types.PowerUpSmash:    'S',
}

// Draw 绘制当前帧
func (f *Frontend) Draw() {
	arena := f.Arena()
	if arena == nil {
		return
	}
	f.screen.Clear()

	width, height := f.screen.Size()
	cfg := arena.Config()
	radius := cfg.World.PlatformRadius
	// HUD 占用上下各一行
	scaleY := math.Max(float64(height-3)/(2*radius), 0.1)
	pr := utils.Projection{
		CenterX:    float64(width) / 2,
		CenterY:    float64(height) / 2,
		ScaleX:     scaleY * 2,
		ScaleY:     scaleY,
		YawDegrees: arena.CameraYaw(),
	}

	f.drawPlatform(pr, radius, width, height)

	world := arena.World()
	for _, actor := range world.Actors() {
		glyph, ok := glyphs[actor.Tag]
		if !ok {
			continue
		}
		r := glyph.r
		if actor.Tag == types.TagPowerUp {
			if kind, ok := world.PowerUpOf(actor.ID); ok {
				r = powerUpGlyphs[kind]
			}
		}
		x, y := pr.Project(actor.Position)
		f.setCell(x, y, r, tcell.StyleDefault.Foreground(glyph.color).Bold(actor.Position.Y() > 1.5))
	}

	if indicator := world.Indicator(); indicator.Visible {
		x, y := pr.Project(indicator.Position)
		style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
		f.setCell(x-1, y, '(', style)
		f.setCell(x+1, y, ')', style)
	}

	f.drawHUD(arena, height)
	f.screen.Show()
}

// drawPlatform 用点阵绘制圆形平台
func (f *Frontend) drawPlatform(pr utils.Projection, radius float64, width, height int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := 1; y < height-1; y++ {
		for x := 0; x < width; x++ {
			dx := (float64(x) - pr.CenterX) / pr.ScaleX
			dz := (float64(y) - pr.CenterY) / pr.ScaleY
			if dx*dx+dz*dz <= radius*radius {
				f.screen.SetContent(x, y, '.', nil, style)
			}
		}
	}
}

// drawHUD 绘制状态行
func (f *Frontend) drawHUD(arena *scenes.ArenaScene, height int) {
	state := arena.State()
	ability := arena.Ability().State()
	top := fmt.Sprintf("Wave %d  Enemies %d  Power-up %s  Smashes %d  Rockets %d",
		state.Wave, arena.Enemies().Count(), ability.Current, state.Explosions, state.RocketsShot)
	f.drawText(0, 0, top, tcell.StyleDefault)

	bottom := "WASD/arrows move  space ability  r restart  q quit"
	if state.GameOver {
		bottom = "GAME OVER - restarting..."
	}
	f.drawText(0, height-1, bottom, tcell.StyleDefault.Reverse(state.GameOver))
}

// drawText 从 (x, y) 开始写一行文字
func (f *Frontend) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		f.screen.SetContent(x+i, y, r, nil, style)
	}
}

// setCell 把浮点屏幕坐标四舍五入到字符格
func (f *Frontend) setCell(x, y float64, r rune, style tcell.Style) {
	f.screen.SetContent(int(math.Round(x)), int(math.Round(y)), r, nil, style)
}
