package systems

import (
	"fmt"
	"log"
	"sort"

	"github.com/decker502/sumo/pkg/components"
	"github.com/decker502/sumo/pkg/config"
	"github.com/decker502/sumo/pkg/host"
	"github.com/decker502/sumo/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

// RocketSystem 追踪火箭
//
// 火箭发射后在固定存活期后由宿主销毁；每帧沿直线朝目标当前位置匀速追踪
// （纯追踪，不预判）；首次实心碰撞时销毁自身，撞到与目标同标签的实体时
// 沿接触法线反方向施加冲量。
type RocketSystem struct {
	host    host.Host
	cfg     config.RocketConfig
	rockets map[host.ActorID]*components.RocketComponent
	fired   int
}

// NewRocketSystem 创建火箭系统
func NewRocketSystem(h host.Host, cfg config.RocketConfig) *RocketSystem {
	return &RocketSystem{
		host:    h,
		cfg:     cfg,
		rockets: make(map[host.ActorID]*components.RocketComponent),
	}
}

// Fire 在 origin 处创建一枚追踪 target 的火箭
//
// 参数:
//   - origin: 发射点
//   - target: 目标实体
//
// 返回:
//   - host.ActorID: 火箭实体
//   - error: 目标不存在时返回 ErrMissingTarget，不会创建火箭
func (rs *RocketSystem) Fire(origin mgl64.Vec3, target host.ActorID) (host.ActorID, error) {
	if target == 0 || !rs.host.IsAlive(target) {
		return 0, fmt.Errorf("fire rocket at %d: %w", target, ErrMissingTarget)
	}
	targetTag, _ := rs.host.TagOf(target)

	id, err := rs.host.CreateActor(types.KindRocket, origin, mgl64.QuatIdent())
	if err != nil {
		return 0, fmt.Errorf("fire rocket at %d: %w", target, err)
	}
	rs.host.DestroyActorAfter(id, rs.cfg.Lifetime)

	rs.rockets[id] = &components.RocketComponent{
		Target:    target,
		TargetTag: targetTag,
		Homing:    true,
	}
	rs.fired++
	rs.steer(id, origin, target)
	return id, nil
}

// Update 所有火箭朝目标追踪一帧
// 目标已销毁的火箭保持上一帧速度，直到存活期结束或撞到物体
func (rs *RocketSystem) Update() {
	for _, id := range rs.sortedRockets() {
		rocket := rs.rockets[id]
		if !rs.host.IsAlive(id) {
			delete(rs.rockets, id)
			continue
		}
		if !rocket.Homing || !rs.host.IsAlive(rocket.Target) {
			continue
		}
		pos, ok := rs.host.Position(id)
		if !ok {
			continue
		}
		rs.steer(id, pos, rocket.Target)
	}
}

func (rs *RocketSystem) steer(id host.ActorID, from mgl64.Vec3, target host.ActorID) {
	targetPos, ok := rs.host.Position(target)
	if !ok {
		return
	}
	offset := targetPos.Sub(from)
	if offset.Len() < 1e-6 {
		return
	}
	rs.host.SetVelocity(id, offset.Normalize().Mul(rs.cfg.Speed))
}

// OnCollisionEnter 火箭首次实心碰撞
//
// 参数:
//   - rocket: 火箭实体
//   - other: 被撞实体
//   - otherTag: 被撞实体标签
//   - contactNormal: 从被撞实体指向火箭的单位法线
//
// 返回:
//   - bool: 是否对被撞实体施加了冲量
func (rs *RocketSystem) OnCollisionEnter(rocket, other host.ActorID, otherTag types.Tag, contactNormal mgl64.Vec3) bool {
	state, ok := rs.rockets[rocket]
	if !ok || !state.Homing {
		return false
	}

	state.Homing = false
	rs.host.DestroyActor(rocket)

	if otherTag != state.TargetTag {
		return false
	}
	rs.host.ApplyForce(other, contactNormal.Mul(-rs.cfg.Strength), host.ForceImpulse)
	log.Printf("[RocketSystem] 火箭 %d 命中 %v %d", rocket, otherTag, other)
	return true
}

// IsRocket 实体是否为本系统管理的火箭
func (rs *RocketSystem) IsRocket(id host.ActorID) bool {
	_, ok := rs.rockets[id]
	return ok
}

// Target 返回火箭的目标
func (rs *RocketSystem) Target(rocket host.ActorID) (host.ActorID, bool) {
	state, ok := rs.rockets[rocket]
	if !ok {
		return 0, false
	}
	return state.Target, true
}

// Active 返回仍在飞行的火箭数量
func (rs *RocketSystem) Active() int {
	return len(rs.rockets)
}

// Fired 返回累计发射的火箭数量
func (rs *RocketSystem) Fired() int {
	return rs.fired
}

func (rs *RocketSystem) sortedRockets() []host.ActorID {
	ids := make([]host.ActorID, 0, len(rs.rockets))
	for id := range rs.rockets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
