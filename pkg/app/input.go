package app

import (
	"github.com/decker502/sumo/pkg/host"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyboardInput 从 Ebitengine 键盘状态读取输入
//
// 轴在 Latch 时采样，整帧内读取结果一致：
//   - Vertical: W/↑ 为 +1，S/↓ 为 -1
//   - Horizontal: D/→ 为 +1，A/← 为 -1
//
// 空格触发能力，R 重新开始。
type KeyboardInput struct {
	axes  map[string]float64
	edges map[host.Key]bool
}

// NewKeyboardInput 创建键盘输入源
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{
		axes:  make(map[string]float64),
		edges: make(map[host.Key]bool),
	}
}

var keyBindings = map[host.Key]ebiten.Key{
	host.KeyAbility: ebiten.KeySpace,
	host.KeyRestart: ebiten.KeyR,
}

// Latch 实现 game.EdgeLatcher
func (in *KeyboardInput) Latch() {
	in.axes[host.AxisVertical] = axisValue(
		ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	)
	in.axes[host.AxisHorizontal] = axisValue(
		ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
	)
	for key, binding := range keyBindings {
		in.edges[key] = inpututil.IsKeyJustPressed(binding)
	}
}

// Axis 实现 host.Input
func (in *KeyboardInput) Axis(name string) float64 {
	return in.axes[name]
}

// KeyEdge 实现 host.Input
func (in *KeyboardInput) KeyEdge(key host.Key) bool {
	return in.edges[key]
}

// axisValue 把一对相反方向的按键合成为 [-1, 1] 的轴值
func axisValue(positive, negative bool) float64 {
	value := 0.0
	if positive {
		value++
	}
	if negative {
		value--
	}
	return value
}
