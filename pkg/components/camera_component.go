package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// CameraRigComponent 镜头焦点的旋转状态
// 焦点绕 Y 轴旋转，玩家推进方向取焦点的前方向量
type CameraRigComponent struct {
	// YawDegrees 绕 Y 轴的偏航角（度）
	YawDegrees float64

	// RotationSpeed 旋转速度（度/秒）
	RotationSpeed float64
}

// Forward 返回焦点在水平面上的前方向量（yaw=0 时为 +Z）
func (c *CameraRigComponent) Forward() mgl64.Vec3 {
	rad := mgl64.DegToRad(c.YawDegrees)
	return mgl64.Vec3{math.Sin(rad), 0, math.Cos(rad)}
}

// Orientation 返回焦点的朝向四元数
func (c *CameraRigComponent) Orientation() mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(c.YawDegrees), mgl64.Vec3{0, 1, 0})
}
