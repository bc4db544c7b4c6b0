package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/decker502/sumo/pkg/components"
	"github.com/decker502/sumo/pkg/config"
	"github.com/decker502/sumo/pkg/ecs"
	"github.com/decker502/sumo/pkg/entities"
	"github.com/decker502/sumo/pkg/host"
	"github.com/decker502/sumo/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrActorNotFound 实体不存在或已被销毁
var ErrActorNotFound = errors.New("actor not found")

// World 参考模拟宿主，基于 EntityManager 实现 host.Host
//
// 每帧的调用顺序：
//  1. BeginFrame(dt)：推进时钟、锁存输入边沿、记录位置快照
//  2. 玩法系统读取快照、施加力/冲量、创建或销毁实体
//  3. 宿主侧系统（物理、碰撞、生命周期）在 EntityManager 上运行
//  4. EndFrame()：清理本帧标记销毁的实体
type World struct {
	em        *ecs.EntityManager
	cfg       *config.GameplayConfig
	clock     *FrameClock
	input     host.Input
	snapshot  map[ecs.EntityID]mgl64.Vec3
	indicator ecs.EntityID
}

var _ host.Host = (*World)(nil)

// ActorView 渲染用的只读实体视图
type ActorView struct {
	ID          ecs.EntityID
	Tag         types.Tag
	Kind        types.ActorKind
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3
	Orientation mgl64.Quat
	Radius      float64
}

// NewWorld 创建参考宿主
//
// 参数:
//   - cfg: 玩法配置
//   - input: 输入源，nil 时使用不产生任何输入的空输入
func NewWorld(cfg *config.GameplayConfig, input host.Input) *World {
	if input == nil {
		input = NewManualInput()
	}

	em := ecs.NewEntityManager()
	indicator := em.CreateEntity()
	em.AddComponent(indicator, &components.IndicatorComponent{})

	return &World{
		em:        em,
		cfg:       cfg,
		clock:     NewFrameClock(cfg.World.MaxDeltaTime),
		input:     input,
		snapshot:  make(map[ecs.EntityID]mgl64.Vec3),
		indicator: indicator,
	}
}

// EntityManager 返回底层实体管理器（供宿主侧系统使用）
func (w *World) EntityManager() *ecs.EntityManager {
	return w.em
}

// Config 返回玩法配置
func (w *World) Config() *config.GameplayConfig {
	return w.cfg
}

// FrameClock 返回帧时钟
func (w *World) FrameClock() *FrameClock {
	return w.clock
}

// BeginFrame 开始新的一帧
func (w *World) BeginFrame(dt float64) float64 {
	used := w.clock.Advance(dt)

	if latcher, ok := w.input.(EdgeLatcher); ok {
		latcher.Latch()
	}

	for id := range w.snapshot {
		delete(w.snapshot, id)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.TransformComponent](w.em) {
		transform, _ := ecs.GetComponent[*components.TransformComponent](w.em, id)
		w.snapshot[id] = transform.Position
	}

	return used
}

// EndFrame 结束本帧，清理标记销毁的实体
func (w *World) EndFrame() []ecs.EntityID {
	return w.em.RemoveMarkedEntities()
}

// Now 实现 host.Clock
func (w *World) Now() float64 {
	return w.clock.Now()
}

// DeltaTime 实现 host.Clock
func (w *World) DeltaTime() float64 {
	return w.clock.DeltaTime()
}

// ApplyForce 实现 host.Physics，运动学刚体忽略外力
func (w *World) ApplyForce(id ecs.EntityID, force mgl64.Vec3, mode host.ForceMode) {
	if !w.em.IsAlive(id) {
		return
	}
	rb, ok := ecs.GetComponent[*components.RigidbodyComponent](w.em, id)
	if !ok || rb.IsKinematic {
		return
	}

	switch mode {
	case host.ForceImpulse:
		rb.Impulse = rb.Impulse.Add(force)
	default:
		rb.Force = rb.Force.Add(force)
	}
}

// Position 实现 host.Physics
// 返回帧开始时的快照；本帧新建的实体返回其当前位置
func (w *World) Position(id ecs.EntityID) (mgl64.Vec3, bool) {
	if !w.em.IsAlive(id) {
		return mgl64.Vec3{}, false
	}
	if pos, ok := w.snapshot[id]; ok {
		return pos, true
	}
	return w.LivePosition(id)
}

// LivePosition 返回实体当前（积分后）的位置
func (w *World) LivePosition(id ecs.EntityID) (mgl64.Vec3, bool) {
	transform, ok := ecs.GetComponent[*components.TransformComponent](w.em, id)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return transform.Position, true
}

// SetPosition 直接放置实体（场景搭建和测试使用）
func (w *World) SetPosition(id ecs.EntityID, position mgl64.Vec3) error {
	transform, ok := ecs.GetComponent[*components.TransformComponent](w.em, id)
	if !ok {
		return fmt.Errorf("set position of %d: %w", id, ErrActorNotFound)
	}
	transform.Position = position
	w.snapshot[id] = position
	return nil
}

// SetOrientation 设置实体朝向（镜头焦点旋转后同步）
func (w *World) SetOrientation(id ecs.EntityID, orientation mgl64.Quat) error {
	transform, ok := ecs.GetComponent[*components.TransformComponent](w.em, id)
	if !ok {
		return fmt.Errorf("set orientation of %d: %w", id, ErrActorNotFound)
	}
	transform.Orientation = orientation
	return nil
}

// SetVelocity 实现 host.Physics
func (w *World) SetVelocity(id ecs.EntityID, velocity mgl64.Vec3) {
	if !w.em.IsAlive(id) {
		return
	}
	if rb, ok := ecs.GetComponent[*components.RigidbodyComponent](w.em, id); ok {
		rb.Velocity = velocity
	}
}

// Velocity 返回实体当前速度
func (w *World) Velocity(id ecs.EntityID) (mgl64.Vec3, bool) {
	rb, ok := ecs.GetComponent[*components.RigidbodyComponent](w.em, id)
	if !ok {
		return mgl64.Vec3{}, false
	}
	return rb.Velocity, true
}

// FindAllByTag 实现 host.Registry
func (w *World) FindAllByTag(tag types.Tag) []ecs.EntityID {
	result := make([]ecs.EntityID, 0)
	for _, id := range ecs.GetEntitiesWith1[*components.TagComponent](w.em) {
		if !w.em.IsAlive(id) {
			continue
		}
		tagComp, _ := ecs.GetComponent[*components.TagComponent](w.em, id)
		if tagComp.Tag == tag {
			result = append(result, id)
		}
	}
	return result
}

// IsAlive 实现 host.Registry
func (w *World) IsAlive(id ecs.EntityID) bool {
	return id != 0 && w.em.IsAlive(id)
}

// TagOf 实现 host.Registry
func (w *World) TagOf(id ecs.EntityID) (types.Tag, bool) {
	tagComp, ok := ecs.GetComponent[*components.TagComponent](w.em, id)
	if !ok {
		return types.TagNone, false
	}
	return tagComp.Tag, true
}

// PowerUpOf 实现 host.Registry
func (w *World) PowerUpOf(id ecs.EntityID) (types.PowerUpKind, bool) {
	powerUp, ok := ecs.GetComponent[*components.PowerUpComponent](w.em, id)
	if !ok {
		return types.PowerUpNone, false
	}
	return powerUp.Kind, true
}

// CreateActor 实现 host.Spawner
func (w *World) CreateActor(kind types.ActorKind, position mgl64.Vec3, orientation mgl64.Quat) (ecs.EntityID, error) {
	id, err := entities.NewActor(w.em, w.cfg, kind, position, orientation)
	if err != nil {
		return 0, err
	}
	log.Printf("[World] 创建实体 %d (%v) 于 (%.2f, %.2f, %.2f)", id, kind, position.X(), position.Y(), position.Z())
	return id, nil
}

// DestroyActor 实现 host.Spawner，实体在 EndFrame 时被清理
func (w *World) DestroyActor(id ecs.EntityID) {
	w.em.DestroyEntity(id)
}

// DestroyActorAfter 实现 host.Spawner
// 重复调用以最早的截止时间为准
func (w *World) DestroyActorAfter(id ecs.EntityID, seconds float64) {
	if !w.em.IsAlive(id) {
		return
	}
	deadline := w.clock.Now() + seconds
	if lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](w.em, id); ok {
		if deadline < lifetime.DestroyAt {
			lifetime.DestroyAt = deadline
		}
		return
	}
	w.em.AddComponent(id, &components.LifetimeComponent{DestroyAt: deadline})
}

// Axis 实现 host.Input
func (w *World) Axis(name string) float64 {
	return w.input.Axis(name)
}

// KeyEdge 实现 host.Input
func (w *World) KeyEdge(key host.Key) bool {
	return w.input.KeyEdge(key)
}

// SetIndicatorVisible 实现 host.Indicator
func (w *World) SetIndicatorVisible(visible bool) {
	if indicator, ok := ecs.GetComponent[*components.IndicatorComponent](w.em, w.indicator); ok {
		indicator.Visible = visible
	}
}

// SetIndicatorPosition 实现 host.Indicator
func (w *World) SetIndicatorPosition(position mgl64.Vec3) {
	if indicator, ok := ecs.GetComponent[*components.IndicatorComponent](w.em, w.indicator); ok {
		indicator.Position = position
	}
}

// Indicator 返回指示光环当前状态
func (w *World) Indicator() components.IndicatorComponent {
	if indicator, ok := ecs.GetComponent[*components.IndicatorComponent](w.em, w.indicator); ok {
		return *indicator
	}
	return components.IndicatorComponent{}
}

// Actors 返回所有存活实体的渲染视图（按 ID 升序）
func (w *World) Actors() []ActorView {
	ids := ecs.GetEntitiesWith2[*components.TransformComponent, *components.TagComponent](w.em)
	views := make([]ActorView, 0, len(ids))
	for _, id := range ids {
		if !w.em.IsAlive(id) {
			continue
		}
		transform, _ := ecs.GetComponent[*components.TransformComponent](w.em, id)
		tag, _ := ecs.GetComponent[*components.TagComponent](w.em, id)
		view := ActorView{
			ID:          id,
			Tag:         tag.Tag,
			Kind:        tag.Kind,
			Position:    transform.Position,
			Orientation: transform.Orientation,
		}
		if rb, ok := ecs.GetComponent[*components.RigidbodyComponent](w.em, id); ok {
			view.Velocity = rb.Velocity
		}
		if collider, ok := ecs.GetComponent[*components.ColliderComponent](w.em, id); ok {
			view.Radius = collider.Radius
		}
		views = append(views, view)
	}
	return views
}
