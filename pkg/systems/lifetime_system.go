package systems

import (
	"github.com/decker502/sumo/pkg/components"
	"github.com/decker502/sumo/pkg/ecs"
	"github.com/decker502/sumo/pkg/host"
)

// LifetimeSystem 管理实体的生命周期
// 截止时间与帧时钟比较，到期实体在本帧末被清理
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
	clock         host.Clock
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager, clock host.Clock) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
		clock:         clock,
	}
}

// Update 销毁所有到期的实体，返回本帧到期的实体数量
func (s *LifetimeSystem) Update() int {
	now := s.clock.Now()
	expired := 0

	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok || lifetime.IsExpired {
			continue
		}

		if now >= lifetime.DestroyAt {
			lifetime.IsExpired = true
			s.entityManager.DestroyEntity(id)
			expired++
		}
	}
	return expired
}
