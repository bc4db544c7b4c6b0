package entities

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/sumo/pkg/components"
	"github.com/decker502/sumo/pkg/config"
	"github.com/decker502/sumo/pkg/ecs"
	"github.com/decker502/sumo/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrUnknownActorKind 请求创建未知的预制类型
var ErrUnknownActorKind = errors.New("unknown actor kind")

// NewActor 按预制类型创建实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置（提供刚体属性）
//   - kind: 预制类型
//   - position: 世界坐标
//   - orientation: 初始朝向
//
// 返回:
//   - ecs.EntityID: 创建的实体ID，失败返回 0
//   - error: 预制类型未知或缺少刚体配置时返回错误
func NewActor(em *ecs.EntityManager, cfg *config.GameplayConfig, kind types.ActorKind,
	position mgl64.Vec3, orientation mgl64.Quat) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return 0, fmt.Errorf("gameplay config cannot be nil")
	}

	switch kind {
	case types.KindPlayer:
		return NewPlayer(em, cfg, position)
	case types.KindEnemy, types.KindHeavyEnemy, types.KindMiniEnemy, types.KindBoss:
		return NewEnemy(em, cfg, kind, position)
	case types.KindPowerUpPushBack, types.KindPowerUpRocket, types.KindPowerUpSmash:
		return NewPowerUp(em, cfg, kind.PowerUp(), position)
	case types.KindRocket:
		return NewRocket(em, cfg, position, orientation)
	case types.KindFocalPoint:
		return NewFocalPoint(em, position, orientation), nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownActorKind, kind)
	}
}

// newBody 创建带变换、标签、刚体和碰撞体的实体
func newBody(em *ecs.EntityManager, cfg *config.GameplayConfig, kind types.ActorKind,
	position mgl64.Vec3, orientation mgl64.Quat) (ecs.EntityID, error) {
	body, ok := cfg.Body(kind)
	if !ok {
		return 0, fmt.Errorf("no body configured for %v", kind)
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.TransformComponent{
		Position:    position,
		Orientation: orientation,
	})
	em.AddComponent(entityID, &components.TagComponent{
		Tag:  kind.Tag(),
		Kind: kind,
	})
	em.AddComponent(entityID, &components.RigidbodyComponent{
		Mass:        body.Mass,
		Drag:        body.Drag,
		Bounciness:  body.Bounciness,
		UseGravity:  body.UseGravity,
		IsKinematic: body.IsKinematic,
	})
	if body.Radius > 0 {
		em.AddComponent(entityID, &components.ColliderComponent{
			Radius:    body.Radius,
			IsTrigger: body.IsTrigger,
		})
	}

	return entityID, nil
}

// NewPlayer 创建玩家球体
func NewPlayer(em *ecs.EntityManager, cfg *config.GameplayConfig, position mgl64.Vec3) (ecs.EntityID, error) {
	entityID, err := newBody(em, cfg, types.KindPlayer, position, mgl64.QuatIdent())
	if err != nil {
		return 0, fmt.Errorf("failed to create player: %w", err)
	}
	log.Printf("[ActorFactory] 创建玩家 %d 于 %v", entityID, position)
	return entityID, nil
}

// NewEnemy 创建敌人（普通、重型、小怪或 Boss）
func NewEnemy(em *ecs.EntityManager, cfg *config.GameplayConfig, kind types.ActorKind, position mgl64.Vec3) (ecs.EntityID, error) {
	if !kind.Tag().IsHostile() {
		return 0, fmt.Errorf("%v is not an enemy kind", kind)
	}
	entityID, err := newBody(em, cfg, kind, position, mgl64.QuatIdent())
	if err != nil {
		return 0, fmt.Errorf("failed to create %v: %w", kind, err)
	}
	return entityID, nil
}

// NewPowerUp 创建能力拾取物（触发器，悬浮不受重力）
func NewPowerUp(em *ecs.EntityManager, cfg *config.GameplayConfig, powerUp types.PowerUpKind, position mgl64.Vec3) (ecs.EntityID, error) {
	kind, ok := types.PowerUpActorKind(powerUp)
	if !ok {
		return 0, fmt.Errorf("cannot create pickup for power-up %v", powerUp)
	}
	entityID, err := newBody(em, cfg, kind, position, mgl64.QuatIdent())
	if err != nil {
		return 0, fmt.Errorf("failed to create pickup: %w", err)
	}
	em.AddComponent(entityID, &components.PowerUpComponent{Kind: powerUp})
	return entityID, nil
}

// NewFocalPoint 创建镜头焦点（无刚体、无碰撞）
func NewFocalPoint(em *ecs.EntityManager, position mgl64.Vec3, orientation mgl64.Quat) ecs.EntityID {
	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.TransformComponent{
		Position:    position,
		Orientation: orientation,
	})
	em.AddComponent(entityID, &components.TagComponent{
		Tag:  types.TagNone,
		Kind: types.KindFocalPoint,
	})
	return entityID
}
