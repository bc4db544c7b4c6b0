package components

import "github.com/go-gl/mathgl/mgl64"

// RigidbodyComponent 刚体：速度与本帧累积的力/冲量
// 力和冲量在物理积分后清零，因此持续推力需要逐帧施加
type RigidbodyComponent struct {
	Velocity mgl64.Vec3
	Force    mgl64.Vec3 // 本帧累积的持续力（N）
	Impulse  mgl64.Vec3 // 本帧累积的瞬时冲量（N·s）

	Mass       float64
	Drag       float64 // 线性阻尼（1/s）
	Bounciness float64 // 碰撞恢复系数 [0, 1]
	UseGravity bool
	// IsKinematic 运动学刚体只按速度移动，不受力、重力和碰撞响应影响（火箭）
	IsKinematic bool
}
