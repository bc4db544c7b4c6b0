package systems

import (
	"github.com/decker502/sumo/pkg/host"
	"github.com/decker502/sumo/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

// hostiles 返回所有存活的敌对实体（普通敌人在前，Boss 在后）
func hostiles(registry host.Registry) []host.ActorID {
	result := registry.FindAllByTag(types.TagEnemy)
	return append(result, registry.FindAllByTag(types.TagBoss)...)
}

// explosionImpulse 计算爆炸对某一位置的冲量
// 冲量沿中心指向目标的方向，大小随距离线性衰减，超出半径时为零
//
// 参数:
//   - center: 爆炸中心
//   - target: 目标位置
//   - force: 中心处的冲量大小
//   - radius: 影响半径
//
// 返回:
//   - mgl64.Vec3: 冲量
//   - bool: 目标是否在影响范围内
func explosionImpulse(center, target mgl64.Vec3, force, radius float64) (mgl64.Vec3, bool) {
	offset := target.Sub(center)
	dist := offset.Len()
	if radius <= 0 || dist > radius {
		return mgl64.Vec3{}, false
	}

	direction := mgl64.Vec3{0, 1, 0}
	if dist > 1e-6 {
		direction = offset.Mul(1 / dist)
	}
	return direction.Mul(force * (1 - dist/radius)), true
}

// applyExplosion 对范围内的所有敌对实体施加爆炸冲量，返回受影响的数量
func applyExplosion(h host.Host, center mgl64.Vec3, force, radius float64) int {
	hits := 0
	for _, id := range hostiles(h) {
		pos, ok := h.Position(id)
		if !ok {
			continue
		}
		impulse, inRange := explosionImpulse(center, pos, force, radius)
		if !inRange {
			continue
		}
		h.ApplyForce(id, impulse, host.ForceImpulse)
		hits++
	}
	return hits
}
