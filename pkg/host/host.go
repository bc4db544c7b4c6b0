// Package host 定义玩法核心与模拟宿主之间的窄接口
//
// 宿主负责刚体积分、碰撞检测、实体创建销毁、输入采集和渲染；
// 玩法核心只通过这里的接口读取位置、施加力、查询实体和切换指示光环。
// pkg/game.World 是随仓库提供的参考宿主实现。
package host

import (
	"github.com/decker502/sumo/pkg/ecs"
	"github.com/decker502/sumo/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

// ActorID 宿主中实体的标识，0 表示无效引用
type ActorID = ecs.EntityID

// ForceMode 力的施加方式
type ForceMode int

const (
	// ForceContinuous 持续力：按质量与帧时长积分，逐帧施加形成持续推力
	ForceContinuous ForceMode = iota
	// ForceImpulse 冲量：按质量立即改变速度
	ForceImpulse
)

// Clock 帧时钟
type Clock interface {
	// Now 返回单调递增的模拟时间（秒）
	Now() float64
	// DeltaTime 返回本帧时长（秒）
	DeltaTime() float64
}

// Physics 刚体访问
type Physics interface {
	ApplyForce(id ActorID, force mgl64.Vec3, mode ForceMode)
	// Position 返回帧开始时的位置快照，实体不存在时返回 false
	Position(id ActorID) (mgl64.Vec3, bool)
	SetVelocity(id ActorID, velocity mgl64.Vec3)
}

// Registry 实体查询
type Registry interface {
	// FindAllByTag 返回所有存活的指定标签实体（按 ID 升序）
	FindAllByTag(tag types.Tag) []ActorID
	IsAlive(id ActorID) bool
	TagOf(id ActorID) (types.Tag, bool)
	// PowerUpOf 返回拾取物携带的能力类型
	PowerUpOf(id ActorID) (types.PowerUpKind, bool)
}

// Spawner 实体创建与销毁
type Spawner interface {
	CreateActor(kind types.ActorKind, position mgl64.Vec3, orientation mgl64.Quat) (ActorID, error)
	DestroyActor(id ActorID)
	// DestroyActorAfter 在 seconds 秒后销毁实体（截止时间比较，不依赖独立计时器）
	DestroyActorAfter(id ActorID, seconds float64)
}

// Input 输入采集
type Input interface {
	// Axis 返回模拟轴输入，范围 [-1, 1]
	Axis(name string) float64
	// KeyEdge 本帧按键是否刚被按下
	KeyEdge(key Key) bool
}

// Indicator 能力指示光环
type Indicator interface {
	SetIndicatorVisible(visible bool)
	SetIndicatorPosition(position mgl64.Vec3)
}

// Host 宿主提供给玩法核心的全部能力
type Host interface {
	Clock
	Physics
	Registry
	Spawner
	Input
	Indicator
}

// CollisionHandler 宿主在碰撞开始时回调的入口
//
// contactNormal 为单位向量，从 other 指向 self。
type CollisionHandler interface {
	OnTriggerEnter(self, other ActorID, otherTag types.Tag)
	OnCollisionEnter(self, other ActorID, otherTag types.Tag, contactNormal mgl64.Vec3)
}
