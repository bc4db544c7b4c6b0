package systems

import (
	"sort"

	"github.com/decker502/sumo/pkg/components"
	"github.com/decker502/sumo/pkg/config"
	"github.com/decker502/sumo/pkg/ecs"
	"github.com/decker502/sumo/pkg/host"
	"github.com/decker502/sumo/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

const (
	// spaceScale 世界单位到 resolv 空间单位的缩放
	spaceScale = 10.0
	// spaceCellSize resolv 空间的网格边长
	spaceCellSize = 20

	objectTagSolid      = "solid"
	objectTagTrigger    = "trigger"
	objectTagProjectile = "projectile"
)

// contactPair 无序实体对（A < B）
type contactPair struct {
	A, B ecs.EntityID
}

func newContactPair(a, b ecs.EntityID) contactPair {
	if a > b {
		a, b = b, a
	}
	return contactPair{A: a, B: b}
}

// collider 本帧参与检测的实体快照
type collider struct {
	id        ecs.EntityID
	tag       types.Tag
	transform *components.TransformComponent
	collider  *components.ColliderComponent
	body      *components.RigidbodyComponent
}

func (c *collider) isTrigger() bool {
	return c.collider.IsTrigger
}

func (c *collider) isProjectile() bool {
	return c.tag == types.TagProjectile
}

func (c *collider) isDynamic() bool {
	return c.body != nil && !c.body.IsKinematic
}

// CollisionSystem 碰撞检测与碰撞开始事件
//
// 宽阶段使用 resolv 的网格空间（XZ 平面投影），窄阶段做三维球体相交测试。
// 只在接触开始时（上一帧未接触）回调 CollisionHandler；
// 两个动态实心刚体重叠时按恢复系数分离并交换冲量。
type CollisionSystem struct {
	em      *ecs.EntityManager
	handler host.CollisionHandler
	extent  float64

	space    *resolv.Space
	objects  map[ecs.EntityID]*resolv.Object
	contacts map[contactPair]bool
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 世界配置，Extent 决定 resolv 空间覆盖的范围 [-Extent, Extent]
//   - handler: 碰撞开始事件的接收者，可以为 nil
//
// 返回:
//   - *CollisionSystem: 碰撞系统实例
func NewCollisionSystem(em *ecs.EntityManager, cfg config.WorldConfig, handler host.CollisionHandler) *CollisionSystem {
	size := int(2 * cfg.Extent * spaceScale)
	return &CollisionSystem{
		em:       em,
		handler:  handler,
		extent:   cfg.Extent,
		space:    resolv.NewSpace(size, size, spaceCellSize, spaceCellSize),
		objects:  make(map[ecs.EntityID]*resolv.Object),
		contacts: make(map[contactPair]bool),
	}
}

// SetHandler 设置事件接收者
func (cs *CollisionSystem) SetHandler(handler host.CollisionHandler) {
	cs.handler = handler
}

// ContactCount 当前处于接触状态的实体对数量
func (cs *CollisionSystem) ContactCount() int {
	return len(cs.contacts)
}

// Update 检测碰撞并分发事件
func (cs *CollisionSystem) Update() {
	order, colliders := cs.syncObjects()

	current := make(map[contactPair]bool, len(cs.contacts))
	checked := make(map[contactPair]bool)

	for _, id := range order {
		self := colliders[id]
		obj := cs.objects[self.id]
		collision := obj.Check(0, 0)
		if collision == nil {
			continue
		}

		candidates := make([]ecs.EntityID, 0, len(collision.Objects))
		for _, otherObj := range collision.Objects {
			if otherID, ok := otherObj.Data.(ecs.EntityID); ok && otherID != self.id {
				candidates = append(candidates, otherID)
			}
		}
		sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

		for _, otherID := range candidates {
			pair := newContactPair(self.id, otherID)
			if checked[pair] {
				continue
			}
			checked[pair] = true

			other, ok := colliders[otherID]
			if !ok || !cs.shouldInteract(self, other) {
				continue
			}
			if !spheresOverlap(self, other) {
				continue
			}

			current[pair] = true
			if !cs.contacts[pair] {
				cs.dispatchEnter(self, other)
			}
			if !self.isTrigger() && !other.isTrigger() && self.isDynamic() && other.isDynamic() {
				resolveOverlap(self, other)
			}
		}
	}

	cs.contacts = current
}

// syncObjects 把实体同步到 resolv 空间，移除已销毁实体的对象
// 返回按 ID 升序的实体列表和对应的碰撞快照
func (cs *CollisionSystem) syncObjects() ([]ecs.EntityID, map[ecs.EntityID]*collider) {
	ids := ecs.GetEntitiesWith3[*components.TransformComponent, *components.ColliderComponent, *components.TagComponent](cs.em)

	order := make([]ecs.EntityID, 0, len(ids))
	result := make(map[ecs.EntityID]*collider, len(ids))
	for _, id := range ids {
		if !cs.em.IsAlive(id) {
			continue
		}
		order = append(order, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](cs.em, id)
		col, _ := ecs.GetComponent[*components.ColliderComponent](cs.em, id)
		tag, _ := ecs.GetComponent[*components.TagComponent](cs.em, id)
		body, _ := ecs.GetComponent[*components.RigidbodyComponent](cs.em, id)

		c := &collider{id: id, tag: tag.Tag, transform: transform, collider: col, body: body}
		result[id] = c

		obj, exists := cs.objects[id]
		if !exists {
			obj = resolv.NewObject(0, 0, 1, 1, cs.objectTags(c)...)
			obj.Data = id
			cs.space.Add(obj)
			cs.objects[id] = obj
		}
		cs.place(obj, transform.Position, col.Radius)
	}

	for id, obj := range cs.objects {
		if _, ok := result[id]; !ok {
			cs.space.Remove(obj)
			delete(cs.objects, id)
		}
	}
	return order, result
}

func (cs *CollisionSystem) objectTags(c *collider) []string {
	tags := []string{c.tag.String()}
	switch {
	case c.isTrigger():
		tags = append(tags, objectTagTrigger)
	case c.isProjectile():
		tags = append(tags, objectTagProjectile)
	default:
		tags = append(tags, objectTagSolid)
	}
	return tags
}

// place 按实体包围盒更新 resolv 对象（x→X，z→Y）
func (cs *CollisionSystem) place(obj *resolv.Object, pos mgl64.Vec3, radius float64) {
	obj.X = (pos.X() - radius + cs.extent) * spaceScale
	obj.Y = (pos.Z() - radius + cs.extent) * spaceScale
	obj.W = 2 * radius * spaceScale
	obj.H = 2 * radius * spaceScale
	obj.Update()
}

// shouldInteract 过滤不产生事件的组合
func (cs *CollisionSystem) shouldInteract(a, b *collider) bool {
	if a.isTrigger() && b.isTrigger() {
		return false
	}
	if a.isProjectile() || b.isProjectile() {
		other := b
		if b.isProjectile() {
			other = a
		}
		switch other.tag {
		case types.TagPlayer, types.TagPowerUp, types.TagProjectile:
			return false
		}
		if other.isTrigger() {
			return false
		}
	}
	return true
}

// dispatchEnter 分发碰撞开始事件
// 触发器只通知非触发器一方；实心碰撞双方都会收到，法线从对方指向自己
func (cs *CollisionSystem) dispatchEnter(a, b *collider) {
	if cs.handler == nil || !cs.em.IsAlive(a.id) || !cs.em.IsAlive(b.id) {
		return
	}

	if a.isTrigger() || b.isTrigger() {
		self, trigger := a, b
		if a.isTrigger() {
			self, trigger = b, a
		}
		cs.handler.OnTriggerEnter(self.id, trigger.id, trigger.tag)
		return
	}

	normal := contactNormal(a.transform.Position, b.transform.Position)
	cs.handler.OnCollisionEnter(a.id, b.id, b.tag, normal)
	if cs.em.IsAlive(b.id) {
		cs.handler.OnCollisionEnter(b.id, a.id, a.tag, normal.Mul(-1))
	}
}

// contactNormal 从 other 指向 self 的单位向量；两点重合时取 +X
func contactNormal(self, other mgl64.Vec3) mgl64.Vec3 {
	d := self.Sub(other)
	if d.Len() < 1e-9 {
		return mgl64.Vec3{1, 0, 0}
	}
	return d.Normalize()
}

func spheresOverlap(a, b *collider) bool {
	r := a.collider.Radius + b.collider.Radius
	d := a.transform.Position.Sub(b.transform.Position)
	return d.Dot(d) < r*r
}

// resolveOverlap 分离两个重叠的动态球体并施加恢复冲量
func resolveOverlap(a, b *collider) {
	normal := contactNormal(a.transform.Position, b.transform.Position)
	dist := a.transform.Position.Sub(b.transform.Position).Len()
	penetration := a.collider.Radius + b.collider.Radius - dist
	if penetration <= 0 {
		return
	}

	invA := inverseMass(a.body)
	invB := inverseMass(b.body)
	invSum := invA + invB
	if invSum == 0 {
		return
	}

	a.transform.Position = a.transform.Position.Add(normal.Mul(penetration * invA / invSum))
	b.transform.Position = b.transform.Position.Sub(normal.Mul(penetration * invB / invSum))

	// 相对速度沿法线分量：小于 0 表示仍在接近
	closing := a.body.Velocity.Sub(b.body.Velocity).Dot(normal)
	if closing >= 0 {
		return
	}
	restitution := (a.body.Bounciness + b.body.Bounciness) / 2
	j := -(1 + restitution) * closing / invSum
	a.body.Velocity = a.body.Velocity.Add(normal.Mul(j * invA))
	b.body.Velocity = b.body.Velocity.Sub(normal.Mul(j * invB))
}

func inverseMass(rb *components.RigidbodyComponent) float64 {
	if rb == nil || rb.IsKinematic {
		return 0
	}
	if rb.Mass <= 0 {
		return 1
	}
	return 1 / rb.Mass
}
