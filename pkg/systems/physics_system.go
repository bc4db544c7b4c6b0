package systems

import (
	"math"

	"github.com/decker502/sumo/pkg/components"
	"github.com/decker502/sumo/pkg/config"
	"github.com/decker502/sumo/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// platformSnapTolerance 低于静止高度超过该值的物体视为已从平台边缘滑落
const platformSnapTolerance = 0.5

// PhysicsSystem 刚体积分（半隐式欧拉）
//
// 每帧对所有刚体：
//   - 动态刚体：v += F/m·dt + J/m，叠加重力和线性阻尼
//   - 运动学刚体：只按当前速度移动
//   - 位置 += v·dt，然后处理圆形平台的支撑
//
// 力和冲量在积分后清零。
type PhysicsSystem struct {
	em  *ecs.EntityManager
	cfg config.WorldConfig
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 世界配置（重力、平台半径）
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(em *ecs.EntityManager, cfg config.WorldConfig) *PhysicsSystem {
	return &PhysicsSystem{
		em:  em,
		cfg: cfg,
	}
}

// Update 推进一帧物理
func (ps *PhysicsSystem) Update(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}

	ids := ecs.GetEntitiesWith2[*components.TransformComponent, *components.RigidbodyComponent](ps.em)
	for _, id := range ids {
		if !ps.em.IsAlive(id) {
			continue
		}
		transform, _ := ecs.GetComponent[*components.TransformComponent](ps.em, id)
		rb, _ := ecs.GetComponent[*components.RigidbodyComponent](ps.em, id)

		if rb.IsKinematic {
			transform.Position = transform.Position.Add(rb.Velocity.Mul(deltaTime))
			rb.Force = mgl64.Vec3{}
			rb.Impulse = mgl64.Vec3{}
			continue
		}

		mass := rb.Mass
		if mass <= 0 {
			mass = 1
		}

		rb.Velocity = rb.Velocity.
			Add(rb.Force.Mul(deltaTime / mass)).
			Add(rb.Impulse.Mul(1 / mass))
		if rb.UseGravity {
			rb.Velocity[1] += ps.cfg.Gravity * deltaTime
		}
		if rb.Drag > 0 {
			rb.Velocity = rb.Velocity.Mul(math.Max(0, 1-rb.Drag*deltaTime))
		}

		prevY := transform.Position.Y()
		transform.Position = transform.Position.Add(rb.Velocity.Mul(deltaTime))
		ps.supportOnPlatform(id, transform, rb, prevY)

		rb.Force = mgl64.Vec3{}
		rb.Impulse = mgl64.Vec3{}
	}
}

// supportOnPlatform 平台支撑：平台上方的物体不会穿过 y=0 平面
func (ps *PhysicsSystem) supportOnPlatform(id ecs.EntityID, transform *components.TransformComponent,
	rb *components.RigidbodyComponent, prevY float64) {

	restHeight := 0.0
	if collider, ok := ecs.GetComponent[*components.ColliderComponent](ps.em, id); ok {
		restHeight = collider.Radius
	}

	pos := transform.Position
	if !ps.IsOverPlatform(pos) {
		return
	}
	if prevY < restHeight-platformSnapTolerance {
		return
	}
	if pos.Y() < restHeight {
		transform.Position[1] = restHeight
		if rb.Velocity.Y() < 0 {
			rb.Velocity[1] = 0
		}
	}
}

// IsOverPlatform 水平投影是否落在圆形平台内
func (ps *PhysicsSystem) IsOverPlatform(pos mgl64.Vec3) bool {
	return math.Hypot(pos.X(), pos.Z()) <= ps.cfg.PlatformRadius
}
