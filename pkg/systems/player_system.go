package systems

import (
	"fmt"
	"log"

	"github.com/decker502/sumo/pkg/config"
	"github.com/decker502/sumo/pkg/host"
	"github.com/decker502/sumo/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

// PlayerSystem 玩家移动与战斗控制
//
// 每帧：
//  1. 按前后轴输入沿镜头前方向施加持续推力
//  2. 检查能力到期
//  3. 触发键边沿时触发能力
//  4. 推进重砸动作
//  5. 指示光环跟随玩家
//
// 碰撞回调：拾取物触发器、持有击退能力时撞到敌人。
type PlayerSystem struct {
	host    host.Host
	player  host.ActorID
	camera  Forwarder
	ability *AbilitySystem
	cfg     config.PlayerConfig
}

// NewPlayerSystem 创建玩家控制系统
//
// 参数:
//   - h: 模拟宿主
//   - player: 玩家实体
//   - camera: 推进方向来源（镜头系统）
//   - ability: 玩家能力状态机
//   - cfg: 玩家配置
//
// 返回:
//   - *PlayerSystem: 玩家控制系统实例
//   - error: 玩家实体不存在时返回 ErrMissingActor
func NewPlayerSystem(h host.Host, player host.ActorID, camera Forwarder, ability *AbilitySystem, cfg config.PlayerConfig) (*PlayerSystem, error) {
	if !h.IsAlive(player) {
		return nil, fmt.Errorf("player system: player %d: %w", player, ErrMissingActor)
	}
	if camera == nil {
		return nil, fmt.Errorf("player system: camera: %w", ErrMissingActor)
	}
	if ability == nil {
		return nil, fmt.Errorf("player system: ability state machine is nil")
	}
	return &PlayerSystem{
		host:    h,
		player:  player,
		camera:  camera,
		ability: ability,
		cfg:     cfg,
	}, nil
}

// Player 返回玩家实体
func (ps *PlayerSystem) Player() host.ActorID {
	return ps.player
}

// Ability 返回能力状态机
func (ps *PlayerSystem) Ability() *AbilitySystem {
	return ps.ability
}

// Update 推进玩家一帧，返回本帧重砸的推进结果
func (ps *PlayerSystem) Update(now float64) SmashStepResult {
	if !ps.host.IsAlive(ps.player) {
		return SmashStepResult{}
	}

	if input := ps.host.Axis(host.AxisVertical); input != 0 {
		force := ps.camera.Forward().Mul(input * ps.cfg.Speed)
		ps.host.ApplyForce(ps.player, force, host.ForceContinuous)
	}

	ps.ability.Tick(now)
	if ps.host.KeyEdge(host.KeyAbility) {
		ps.ability.TryActivate(now)
	}
	result := ps.ability.AdvanceSmash(now)
	ps.ability.FollowIndicator()
	return result
}

// OnTriggerEnter 玩家进入触发器
// 拾取物立即销毁并获得对应能力；其他触发器忽略
func (ps *PlayerSystem) OnTriggerEnter(other host.ActorID, otherTag types.Tag) {
	if otherTag != types.TagPowerUp || !ps.host.IsAlive(other) {
		return
	}

	kind, ok := ps.host.PowerUpOf(other)
	ps.host.DestroyActor(other)
	if !ok {
		log.Printf("[PlayerSystem] 拾取物 %d 没有能力类型", other)
		return
	}
	ps.ability.OnPickupCollected(kind, ps.host.Now())
}

// OnCollisionEnter 玩家与实心物体碰撞开始
// 持有击退能力时，对撞到的普通敌人施加远离玩家的冲量
//
// 返回:
//   - bool: 是否施加了击退冲量
func (ps *PlayerSystem) OnCollisionEnter(other host.ActorID, otherTag types.Tag, contactNormal mgl64.Vec3) bool {
	if otherTag != types.TagEnemy || ps.ability.Current() != types.PowerUpPushBack {
		return false
	}

	direction := contactNormal.Mul(-1)
	playerPos, okPlayer := ps.host.Position(ps.player)
	enemyPos, okEnemy := ps.host.Position(other)
	if okPlayer && okEnemy {
		if away := enemyPos.Sub(playerPos); away.Len() > 1e-6 {
			direction = away.Normalize()
		}
	}
	if direction.Len() < 1e-6 {
		return false
	}

	ps.host.ApplyForce(other, direction.Normalize().Mul(ps.cfg.PushBackStrength), host.ForceImpulse)
	return true
}
