package systems

import (
	"github.com/decker502/sumo/pkg/components"
	"github.com/decker502/sumo/pkg/ecs"
	"github.com/decker502/sumo/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

const floatTolerance = 1e-9

// newTestBody 创建带刚体和球形碰撞体的测试实体
func newTestBody(em *ecs.EntityManager, tag types.Tag, pos mgl64.Vec3, radius float64, rb *components.RigidbodyComponent) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{Position: pos, Orientation: mgl64.QuatIdent()})
	em.AddComponent(id, &components.TagComponent{Tag: tag})
	if rb != nil {
		em.AddComponent(id, rb)
	}
	if radius > 0 {
		em.AddComponent(id, &components.ColliderComponent{Radius: radius})
	}
	return id
}

func positionOf(em *ecs.EntityManager, id ecs.EntityID) mgl64.Vec3 {
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	return transform.Position
}

func bodyOf(em *ecs.EntityManager, id ecs.EntityID) *components.RigidbodyComponent {
	rb, _ := ecs.GetComponent[*components.RigidbodyComponent](em, id)
	return rb
}

func approxEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-6
}

func vecApproxEqual(a, b mgl64.Vec3) bool {
	return approxEqual(a.X(), b.X()) && approxEqual(a.Y(), b.Y()) && approxEqual(a.Z(), b.Z())
}
