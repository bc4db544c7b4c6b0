package systems

import (
	"fmt"
	"log"

	"github.com/decker502/sumo/pkg/components"
	"github.com/decker502/sumo/pkg/config"
	"github.com/decker502/sumo/pkg/host"
	"github.com/decker502/sumo/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

// RocketLauncher 发射追踪火箭的能力
type RocketLauncher interface {
	Fire(origin mgl64.Vec3, target host.ActorID) (host.ActorID, error)
}

// SmashStepResult 单帧推进重砸动作的结果
type SmashStepResult struct {
	Phase    components.SmashPhase // 推进后的阶段
	Exploded bool                  // 本帧是否落地爆炸
	Hits     int                   // 爆炸影响的敌对实体数量
}

// AbilitySystem 玩家能力状态机
//
// 职责：
//   - 持有玩家当前能力，保证同一时刻只有一种能力生效
//   - 拾取到期倒计时（单一截止时间，重新拾取直接覆盖）
//   - 按触发键分发能力：火箭齐射、重砸起跳
//   - 逐帧推进重砸的上升/下砸阶段，落地时恰好爆炸一次
//
// 所有计时都是与帧时钟比较的截止时间，由每帧调用推进。
type AbilitySystem struct {
	host     host.Host
	player   host.ActorID
	launcher RocketLauncher

	playerCfg config.PlayerConfig
	smashCfg  config.SmashConfig
	rocketCfg config.RocketConfig

	state      components.AbilityState
	explosions int
}

// NewAbilitySystem 创建能力状态机，初始能力为 None
//
// 参数:
//   - h: 模拟宿主
//   - player: 玩家实体
//   - cfg: 玩法配置
//   - launcher: 火箭发射器，为 nil 时 Rocket 能力触发无效
//
// 返回:
//   - *AbilitySystem: 状态机实例
//   - error: 玩家实体不存在时返回 ErrMissingActor
func NewAbilitySystem(h host.Host, player host.ActorID, cfg *config.GameplayConfig, launcher RocketLauncher) (*AbilitySystem, error) {
	if !h.IsAlive(player) {
		return nil, fmt.Errorf("ability system: player %d: %w", player, ErrMissingActor)
	}
	return &AbilitySystem{
		host:      h,
		player:    player,
		launcher:  launcher,
		playerCfg: cfg.Player,
		smashCfg:  cfg.Smash,
		rocketCfg: cfg.Rocket,
	}, nil
}

// State 返回能力状态的副本
func (s *AbilitySystem) State() components.AbilityState {
	return s.state
}

// Current 返回当前能力
func (s *AbilitySystem) Current() types.PowerUpKind {
	return s.state.Current
}

// Explosions 返回重砸落地爆炸的累计次数
func (s *AbilitySystem) Explosions() int {
	return s.explosions
}

// OnPickupCollected 获得能力并（重新）开始到期倒计时
// 新的截止时间直接覆盖旧的，任意时刻最多只有一个倒计时
//
// 重砸进行中拾取其他能力会中止重砸（不爆炸）；拾取重砸则让当前动作继续。
func (s *AbilitySystem) OnPickupCollected(kind types.PowerUpKind, now float64) {
	if kind == types.PowerUpNone {
		return
	}

	if s.state.IsSmashing() && kind != types.PowerUpSmash {
		log.Printf("[AbilitySystem] 拾取 %v，中止进行中的重砸（阶段 %v）", kind, s.state.SmashPhase)
		s.state.SmashPhase = components.SmashIdle
	}

	s.state.Current = kind
	s.state.ExpiryArmed = true
	s.state.ExpiryDeadline = now + s.playerCfg.PickupDuration

	s.host.SetIndicatorVisible(true)
	if pos, ok := s.host.Position(s.player); ok {
		s.host.SetIndicatorPosition(s.indicatorPosition(pos))
	}

	log.Printf("[AbilitySystem] 获得能力 %v，%.2fs 到期", kind, s.state.ExpiryDeadline)
}

// Tick 检查拾取是否到期
// 重砸进行中到期会推迟到落地之后
func (s *AbilitySystem) Tick(now float64) {
	if !s.state.ExpiryArmed || now < s.state.ExpiryDeadline {
		return
	}
	if s.state.IsSmashing() {
		return
	}

	log.Printf("[AbilitySystem] 能力 %v 到期 (t=%.2f)", s.state.Current, now)
	s.state.Current = types.PowerUpNone
	s.state.ExpiryArmed = false
	s.state.ExpiryDeadline = 0
	s.host.SetIndicatorVisible(false)
}

// TryActivate 触发当前能力，返回是否执行了动作
//
// Rocket：向每个存活的敌对实体各发射一枚火箭
// Smash：未在重砸时开始上升阶段
// PushBack / None：无主动触发
func (s *AbilitySystem) TryActivate(now float64) bool {
	switch s.state.Current {
	case types.PowerUpRocket:
		return s.launchRockets() > 0
	case types.PowerUpSmash:
		return s.beginSmash(now)
	default:
		return false
	}
}

func (s *AbilitySystem) launchRockets() int {
	if s.launcher == nil {
		return 0
	}
	pos, ok := s.host.Position(s.player)
	if !ok {
		return 0
	}
	origin := pos.Add(mgl64.Vec3{0, s.rocketCfg.LaunchOffsetY, 0})

	fired := 0
	for _, target := range hostiles(s.host) {
		if _, err := s.launcher.Fire(origin, target); err != nil {
			log.Printf("[AbilitySystem] 火箭发射失败: %v", err)
			continue
		}
		fired++
	}
	log.Printf("[AbilitySystem] 发射火箭 %d 枚", fired)
	return fired
}

func (s *AbilitySystem) beginSmash(now float64) bool {
	if s.state.IsSmashing() {
		return false
	}
	pos, ok := s.host.Position(s.player)
	if !ok {
		return false
	}

	s.state.SmashPhase = components.SmashAscending
	s.state.FloorHeight = pos.Y()
	s.state.JumpDeadline = now + s.smashCfg.HangTime

	log.Printf("[AbilitySystem] 重砸起跳，地面高度 %.2f，上升至 %.2fs", s.state.FloorHeight, s.state.JumpDeadline)
	return true
}

// AdvanceSmash 推进重砸动作一帧
//
// 上升阶段每帧设置竖直速度 +SmashSpeed，直到 JumpDeadline；
// 下砸阶段每帧设置竖直速度 -2*SmashSpeed，直到高度回到起跳高度，
// 然后对范围内的敌对实体施加一次爆炸冲量并回到 Idle。
// 阶段切换在同一帧内完成。
func (s *AbilitySystem) AdvanceSmash(now float64) SmashStepResult {
	switch s.state.SmashPhase {
	case components.SmashAscending:
		if now < s.state.JumpDeadline {
			s.host.SetVelocity(s.player, mgl64.Vec3{0, s.smashCfg.SmashSpeed, 0})
			return SmashStepResult{Phase: components.SmashAscending}
		}
		s.state.SmashPhase = components.SmashDescending
		fallthrough

	case components.SmashDescending:
		pos, ok := s.host.Position(s.player)
		if !ok {
			s.state.SmashPhase = components.SmashIdle
			return SmashStepResult{Phase: components.SmashIdle}
		}
		if pos.Y() > s.state.FloorHeight {
			s.host.SetVelocity(s.player, mgl64.Vec3{0, -2 * s.smashCfg.SmashSpeed, 0})
			return SmashStepResult{Phase: components.SmashDescending}
		}

		hits := applyExplosion(s.host, pos, s.smashCfg.ExplosionForce, s.smashCfg.ExplosionRadius)
		s.state.SmashPhase = components.SmashIdle
		s.explosions++
		log.Printf("[AbilitySystem] 重砸落地 (t=%.2f)，影响 %d 个敌人", now, hits)
		return SmashStepResult{Phase: components.SmashIdle, Exploded: true, Hits: hits}

	default:
		return SmashStepResult{Phase: components.SmashIdle}
	}
}

// FollowIndicator 持有能力时让指示光环跟随玩家
func (s *AbilitySystem) FollowIndicator() {
	if !s.state.HasPowerUp() {
		return
	}
	if pos, ok := s.host.Position(s.player); ok {
		s.host.SetIndicatorPosition(s.indicatorPosition(pos))
	}
}

func (s *AbilitySystem) indicatorPosition(playerPos mgl64.Vec3) mgl64.Vec3 {
	return playerPos.Add(mgl64.Vec3{0, s.playerCfg.IndicatorOffsetY, 0})
}
