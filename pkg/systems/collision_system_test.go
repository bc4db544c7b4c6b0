package systems

import (
	"testing"

	"github.com/decker502/sumo/pkg/components"
	"github.com/decker502/sumo/pkg/ecs"
	"github.com/decker502/sumo/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

type collisionEvent struct {
	trigger  bool
	self     ecs.EntityID
	other    ecs.EntityID
	otherTag types.Tag
	normal   mgl64.Vec3
}

type recordingHandler struct {
	events []collisionEvent
}

func (h *recordingHandler) OnTriggerEnter(self, other ecs.EntityID, otherTag types.Tag) {
	h.events = append(h.events, collisionEvent{trigger: true, self: self, other: other, otherTag: otherTag})
}

func (h *recordingHandler) OnCollisionEnter(self, other ecs.EntityID, otherTag types.Tag, normal mgl64.Vec3) {
	h.events = append(h.events, collisionEvent{self: self, other: other, otherTag: otherTag, normal: normal})
}

func (h *recordingHandler) eventsFor(self ecs.EntityID) []collisionEvent {
	var result []collisionEvent
	for _, e := range h.events {
		if e.self == self {
			result = append(result, e)
		}
	}
	return result
}

func kinematicBody() *components.RigidbodyComponent {
	return &components.RigidbodyComponent{Mass: 1, IsKinematic: true}
}

// TestCollisionEnterOnlyOnContactBegin 测试碰撞开始事件只在接触开始时触发
func TestCollisionEnterOnlyOnContactBegin(t *testing.T) {
	em := ecs.NewEntityManager()
	handler := &recordingHandler{}
	cs := NewCollisionSystem(em, testWorldConfig(), handler)

	a := newTestBody(em, types.TagEnemy, mgl64.Vec3{0, 0.5, 0}, 0.5, kinematicBody())
	b := newTestBody(em, types.TagEnemy, mgl64.Vec3{0.8, 0.5, 0}, 0.5, kinematicBody())

	cs.Update()
	if len(handler.events) != 2 {
		t.Fatalf("expected 2 enter events (one per side), got %d", len(handler.events))
	}

	// 持续接触不重复触发
	cs.Update()
	if len(handler.events) != 2 {
		t.Fatalf("sustained contact should not emit events, got %d", len(handler.events))
	}
	if cs.ContactCount() != 1 {
		t.Errorf("ContactCount = %d, want 1", cs.ContactCount())
	}

	// 分开后再次接触重新触发
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, b)
	transform.Position = mgl64.Vec3{5, 0.5, 0}
	cs.Update()
	if cs.ContactCount() != 0 {
		t.Errorf("ContactCount after separation = %d, want 0", cs.ContactCount())
	}
	transform.Position = mgl64.Vec3{0.8, 0.5, 0}
	cs.Update()
	if len(handler.events) != 4 {
		t.Errorf("re-contact should emit again, got %d events", len(handler.events))
	}

	eventsA := handler.eventsFor(a)
	if len(eventsA) == 0 {
		t.Fatal("no events for a")
	}
	// 法线从对方指向自己
	if want := (mgl64.Vec3{-1, 0, 0}); !vecApproxEqual(eventsA[0].normal, want) {
		t.Errorf("normal for a = %v, want %v", eventsA[0].normal, want)
	}
	if eventsA[0].other != b || eventsA[0].otherTag != types.TagEnemy {
		t.Errorf("unexpected event for a: %+v", eventsA[0])
	}
}

// TestTriggerEnter 测试拾取物触发器只通知非触发器一方
func TestTriggerEnter(t *testing.T) {
	em := ecs.NewEntityManager()
	handler := &recordingHandler{}
	cs := NewCollisionSystem(em, testWorldConfig(), handler)

	player := newTestBody(em, types.TagPlayer, mgl64.Vec3{0, 0.5, 0}, 0.5, &components.RigidbodyComponent{Mass: 1})
	pickup := newTestBody(em, types.TagPowerUp, mgl64.Vec3{0.5, 0.5, 0}, 0.4, kinematicBody())
	collider, _ := ecs.GetComponent[*components.ColliderComponent](em, pickup)
	collider.IsTrigger = true

	cs.Update()

	if len(handler.events) != 1 {
		t.Fatalf("expected exactly 1 trigger event, got %d: %+v", len(handler.events), handler.events)
	}
	e := handler.events[0]
	if !e.trigger || e.self != player || e.other != pickup || e.otherTag != types.TagPowerUp {
		t.Errorf("unexpected trigger event: %+v", e)
	}
}

// TestProjectileFiltering 测试火箭忽略玩家、拾取物和其他火箭
func TestProjectileFiltering(t *testing.T) {
	em := ecs.NewEntityManager()
	handler := &recordingHandler{}
	cs := NewCollisionSystem(em, testWorldConfig(), handler)

	rocket := newTestBody(em, types.TagProjectile, mgl64.Vec3{0, 1, 0}, 0.2, kinematicBody())
	newTestBody(em, types.TagPlayer, mgl64.Vec3{0, 1, 0.3}, 0.5, &components.RigidbodyComponent{Mass: 1})
	newTestBody(em, types.TagProjectile, mgl64.Vec3{0.1, 1, 0}, 0.2, kinematicBody())
	enemy := newTestBody(em, types.TagEnemy, mgl64.Vec3{-0.5, 1, 0}, 0.5, &components.RigidbodyComponent{Mass: 1})

	cs.Update()

	rocketEvents := handler.eventsFor(rocket)
	if len(rocketEvents) != 1 {
		t.Fatalf("rocket should only collide with the enemy, got %+v", rocketEvents)
	}
	if rocketEvents[0].other != enemy || rocketEvents[0].otherTag != types.TagEnemy {
		t.Errorf("unexpected rocket event: %+v", rocketEvents[0])
	}
	if want := (mgl64.Vec3{1, 0, 0}); !vecApproxEqual(rocketEvents[0].normal, want) {
		t.Errorf("rocket normal = %v, want %v", rocketEvents[0].normal, want)
	}
}

// TestOverlapResolution 测试动态刚体的分离与反弹
func TestOverlapResolution(t *testing.T) {
	em := ecs.NewEntityManager()
	cs := NewCollisionSystem(em, testWorldConfig(), nil)

	a := newTestBody(em, types.TagPlayer, mgl64.Vec3{0, 0.5, 0}, 0.5, &components.RigidbodyComponent{
		Mass: 1, Bounciness: 1, Velocity: mgl64.Vec3{1, 0, 0},
	})
	b := newTestBody(em, types.TagEnemy, mgl64.Vec3{0.8, 0.5, 0}, 0.5, &components.RigidbodyComponent{
		Mass: 1, Bounciness: 1, Velocity: mgl64.Vec3{-1, 0, 0},
	})

	cs.Update()

	dist := positionOf(em, b).Sub(positionOf(em, a)).Len()
	if !approxEqual(dist, 1.0) {
		t.Errorf("bodies should be separated to touching distance, got %.4f", dist)
	}
	// 等质量完全弹性碰撞交换速度
	if got := bodyOf(em, a).Velocity; !vecApproxEqual(got, mgl64.Vec3{-1, 0, 0}) {
		t.Errorf("a velocity = %v, want (-1, 0, 0)", got)
	}
	if got := bodyOf(em, b).Velocity; !vecApproxEqual(got, mgl64.Vec3{1, 0, 0}) {
		t.Errorf("b velocity = %v, want (1, 0, 0)", got)
	}
}

func TestKinematicContactHasNoResponse(t *testing.T) {
	em := ecs.NewEntityManager()
	cs := NewCollisionSystem(em, testWorldConfig(), nil)

	rocket := newTestBody(em, types.TagProjectile, mgl64.Vec3{0, 1, 0}, 0.2, kinematicBody())
	enemy := newTestBody(em, types.TagEnemy, mgl64.Vec3{0.3, 1, 0}, 0.5, &components.RigidbodyComponent{Mass: 1})

	cs.Update()

	if got := positionOf(em, rocket); got != (mgl64.Vec3{0, 1, 0}) {
		t.Errorf("rocket moved by collision response: %v", got)
	}
	if got := positionOf(em, enemy); got != (mgl64.Vec3{0.3, 1, 0}) {
		t.Errorf("enemy moved by kinematic contact: %v", got)
	}
}

func TestDestroyedEntitiesLeaveSpace(t *testing.T) {
	em := ecs.NewEntityManager()
	handler := &recordingHandler{}
	cs := NewCollisionSystem(em, testWorldConfig(), handler)

	a := newTestBody(em, types.TagEnemy, mgl64.Vec3{0, 0.5, 0}, 0.5, kinematicBody())
	newTestBody(em, types.TagEnemy, mgl64.Vec3{0.5, 0.5, 0}, 0.5, kinematicBody())
	cs.Update()

	em.DestroyEntity(a)
	em.RemoveMarkedEntities()
	cs.Update()

	if cs.ContactCount() != 0 {
		t.Errorf("contacts with destroyed entity should be dropped, got %d", cs.ContactCount())
	}
	if _, ok := cs.objects[a]; ok {
		t.Error("destroyed entity should be removed from the resolv space")
	}
}
