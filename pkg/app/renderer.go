package app

import (
	"fmt"
	"image/color"

	"github.com/decker502/sumo/pkg/scenes"
	"github.com/decker502/sumo/pkg/types"
	"github.com/decker502/sumo/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 24, G: 28, B: 40, A: 255}
	platformColor   = color.RGBA{R: 96, G: 110, B: 130, A: 255}
	indicatorColor  = color.RGBA{R: 255, G: 220, B: 80, A: 255}
)

// tagColors 按标签区分实体颜色
var tagColors = map[types.Tag]color.RGBA{
	types.TagPlayer:     {R: 80, G: 170, B: 255, A: 255},
	types.TagEnemy:      {R: 230, G: 80, B: 70, A: 255},
	types.TagBoss:       {R: 170, G: 40, B: 160, A: 255},
	types.TagPowerUp:    {R: 90, G: 220, B: 120, A: 255},
	types.TagProjectile: {R: 255, G: 150, B: 40, A: 255},
}

// Renderer 竞技场俯视渲染器
type Renderer struct {
	width, height int
	scale         float64
}

// NewRenderer 创建渲染器
func NewRenderer(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

// Draw 绘制一帧
//
// 参数:
//   - screen: 目标图像
//   - arena: 当前竞技场场景
//   - restarts: 已重开的次数（显示在 HUD）
func (r *Renderer) Draw(screen *ebiten.Image, arena *scenes.ArenaScene, restarts int) {
	screen.Fill(backgroundColor)

	cfg := arena.Config()
	if r.scale == 0 {
		// 平台占屏幕短边的 70%
		short := float64(min(r.width, r.height))
		r.scale = short * 0.35 / cfg.World.PlatformRadius
	}
	pr := utils.Projection{
		CenterX:    float64(r.width) / 2,
		CenterY:    float64(r.height) / 2,
		ScaleX:     r.scale,
		ScaleY:     r.scale,
		YawDegrees: arena.CameraYaw(),
	}

	cx, cy := float32(pr.CenterX), float32(pr.CenterY)
	vector.DrawFilledCircle(screen, cx, cy, float32(cfg.World.PlatformRadius*pr.ScaleX), platformColor, true)

	world := arena.World()
	for _, actor := range world.Actors() {
		clr, ok := tagColors[actor.Tag]
		if !ok {
			continue
		}
		x, y := pr.Project(actor.Position)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(pr.Radius(actor.Radius, actor.Position.Y())), clr, true)
	}

	if indicator := world.Indicator(); indicator.Visible {
		x, y := pr.Project(indicator.Position)
		radius := float32(pr.Radius(0.9, indicator.Position.Y()))
		vector.StrokeCircle(screen, float32(x), float32(y), radius, 2, indicatorColor, true)
	}

	r.drawHUD(screen, arena, restarts)
}

// drawHUD 绘制文字信息
func (r *Renderer) drawHUD(screen *ebiten.Image, arena *scenes.ArenaScene, restarts int) {
	state := arena.State()
	ability := arena.Ability().State()

	hud := fmt.Sprintf("Wave %d  Enemies %d  Power-up %s", state.Wave, arena.Enemies().Count(), ability.Current)
	if ability.ExpiryArmed {
		remaining := ability.ExpiryDeadline - arena.World().Now()
		if remaining > 0 {
			hud += fmt.Sprintf(" (%.1fs)", remaining)
		}
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Smashes %d (hits %d)  Rockets %d  Restarts %d", state.Explosions, state.SmashHits, state.RocketsShot, restarts), 8, 24)
	ebitenutil.DebugPrintAt(screen, "W/S push  A/D rotate  Space ability  R restart  F11 fullscreen", 8, r.height-20)

	if state.GameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", r.width/2-30, r.height/2-8)
	}
}
