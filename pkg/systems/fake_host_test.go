package systems

import (
	"errors"
	"sort"

	"github.com/decker502/sumo/pkg/host"
	"github.com/decker502/sumo/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

type fakeActor struct {
	kind     types.ActorKind
	tag      types.Tag
	powerUp  types.PowerUpKind
	position mgl64.Vec3
	velocity mgl64.Vec3
	alive    bool
}

type forceCall struct {
	id    host.ActorID
	force mgl64.Vec3
	mode  host.ForceMode
}

type velocityCall struct {
	id       host.ActorID
	at       float64
	velocity mgl64.Vec3
}

// fakeHost 记录核心系统对宿主的所有调用
type fakeHost struct {
	now float64
	dt  float64

	nextID host.ActorID
	actors map[host.ActorID]*fakeActor

	forces       []forceCall
	velocities   []velocityCall
	destroyAfter map[host.ActorID]float64
	created      []host.ActorID
	failCreate   bool

	axes  map[string]float64
	edges map[host.Key]bool

	indicatorVisible  bool
	indicatorPosition mgl64.Vec3
}

var _ host.Host = (*fakeHost)(nil)

func newFakeHost() *fakeHost {
	return &fakeHost{
		nextID:       1,
		actors:       make(map[host.ActorID]*fakeActor),
		destroyAfter: make(map[host.ActorID]float64),
		axes:         make(map[string]float64),
		edges:        make(map[host.Key]bool),
	}
}

func (h *fakeHost) add(kind types.ActorKind, pos mgl64.Vec3) host.ActorID {
	id := h.nextID
	h.nextID++
	h.actors[id] = &fakeActor{kind: kind, tag: kind.Tag(), powerUp: kind.PowerUp(), position: pos, alive: true}
	return id
}

func (h *fakeHost) move(id host.ActorID, pos mgl64.Vec3) {
	h.actors[id].position = pos
}

func (h *fakeHost) kill(id host.ActorID) {
	h.actors[id].alive = false
}

// step 推进时钟并按记录的速度移动所有实体
func (h *fakeHost) step(dt float64) {
	h.dt = dt
	h.now += dt
	for _, a := range h.actors {
		if a.alive {
			a.position = a.position.Add(a.velocity.Mul(dt))
		}
	}
}

func (h *fakeHost) forcesOn(id host.ActorID) []forceCall {
	var result []forceCall
	for _, f := range h.forces {
		if f.id == id {
			result = append(result, f)
		}
	}
	return result
}

func (h *fakeHost) velocitiesOf(id host.ActorID) []velocityCall {
	var result []velocityCall
	for _, v := range h.velocities {
		if v.id == id {
			result = append(result, v)
		}
	}
	return result
}

func (h *fakeHost) liveOfKind(kind types.ActorKind) []host.ActorID {
	var result []host.ActorID
	for id, a := range h.actors {
		if a.alive && a.kind == kind {
			result = append(result, id)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

func (h *fakeHost) Now() float64       { return h.now }
func (h *fakeHost) DeltaTime() float64 { return h.dt }

func (h *fakeHost) ApplyForce(id host.ActorID, force mgl64.Vec3, mode host.ForceMode) {
	h.forces = append(h.forces, forceCall{id: id, force: force, mode: mode})
}

func (h *fakeHost) Position(id host.ActorID) (mgl64.Vec3, bool) {
	a, ok := h.actors[id]
	if !ok || !a.alive {
		return mgl64.Vec3{}, false
	}
	return a.position, true
}

func (h *fakeHost) SetVelocity(id host.ActorID, velocity mgl64.Vec3) {
	h.velocities = append(h.velocities, velocityCall{id: id, at: h.now, velocity: velocity})
	if a, ok := h.actors[id]; ok {
		a.velocity = velocity
	}
}

func (h *fakeHost) FindAllByTag(tag types.Tag) []host.ActorID {
	result := make([]host.ActorID, 0)
	for id, a := range h.actors {
		if a.alive && a.tag == tag {
			result = append(result, id)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

func (h *fakeHost) IsAlive(id host.ActorID) bool {
	a, ok := h.actors[id]
	return ok && a.alive
}

func (h *fakeHost) TagOf(id host.ActorID) (types.Tag, bool) {
	a, ok := h.actors[id]
	if !ok {
		return types.TagNone, false
	}
	return a.tag, true
}

func (h *fakeHost) PowerUpOf(id host.ActorID) (types.PowerUpKind, bool) {
	a, ok := h.actors[id]
	if !ok || a.powerUp == types.PowerUpNone {
		return types.PowerUpNone, false
	}
	return a.powerUp, true
}

func (h *fakeHost) CreateActor(kind types.ActorKind, position mgl64.Vec3, _ mgl64.Quat) (host.ActorID, error) {
	if h.failCreate {
		return 0, errors.New("create failed")
	}
	id := h.add(kind, position)
	h.created = append(h.created, id)
	return id, nil
}

func (h *fakeHost) DestroyActor(id host.ActorID) {
	if a, ok := h.actors[id]; ok {
		a.alive = false
	}
}

func (h *fakeHost) DestroyActorAfter(id host.ActorID, seconds float64) {
	h.destroyAfter[id] = h.now + seconds
}

func (h *fakeHost) Axis(name string) float64 { return h.axes[name] }

func (h *fakeHost) KeyEdge(key host.Key) bool { return h.edges[key] }

func (h *fakeHost) SetIndicatorVisible(visible bool) { h.indicatorVisible = visible }

func (h *fakeHost) SetIndicatorPosition(position mgl64.Vec3) { h.indicatorPosition = position }
