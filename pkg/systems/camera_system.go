package systems

import (
	"fmt"
	"math"

	"github.com/decker502/sumo/pkg/components"
	"github.com/decker502/sumo/pkg/config"
	"github.com/decker502/sumo/pkg/host"
	"github.com/go-gl/mathgl/mgl64"
)

// Forwarder 提供玩家推进方向
type Forwarder interface {
	Forward() mgl64.Vec3
}

// CameraSystem 镜头焦点旋转
// 水平轴输入让焦点绕 Y 轴旋转，玩家按焦点前方向推进
type CameraSystem struct {
	host  host.Host
	focal host.ActorID
	rig   components.CameraRigComponent
}

// NewCameraSystem 创建镜头系统
//
// 参数:
//   - h: 模拟宿主
//   - focal: 镜头焦点实体
//   - cfg: 镜头配置
//
// 返回:
//   - *CameraSystem: 镜头系统实例
//   - error: 焦点实体不存在时返回 ErrMissingActor
func NewCameraSystem(h host.Host, focal host.ActorID, cfg config.CameraConfig) (*CameraSystem, error) {
	if !h.IsAlive(focal) {
		return nil, fmt.Errorf("camera system: focal point %d: %w", focal, ErrMissingActor)
	}
	return &CameraSystem{
		host:  h,
		focal: focal,
		rig:   components.CameraRigComponent{RotationSpeed: cfg.RotationSpeed},
	}, nil
}

// Update 按水平轴输入旋转焦点
func (cs *CameraSystem) Update(deltaTime float64) {
	input := cs.host.Axis(host.AxisHorizontal)
	if input == 0 {
		return
	}
	yaw := math.Mod(cs.rig.YawDegrees+input*-cs.rig.RotationSpeed*deltaTime, 360)
	if yaw < 0 {
		yaw += 360
	}
	cs.rig.YawDegrees = yaw
}

// Focal 返回焦点实体
func (cs *CameraSystem) Focal() host.ActorID {
	return cs.focal
}

// Yaw 返回当前偏航角（度，[0, 360)）
func (cs *CameraSystem) Yaw() float64 {
	return cs.rig.YawDegrees
}

// Forward 实现 Forwarder
func (cs *CameraSystem) Forward() mgl64.Vec3 {
	return cs.rig.Forward()
}

// Orientation 返回焦点朝向
func (cs *CameraSystem) Orientation() mgl64.Quat {
	return cs.rig.Orientation()
}
