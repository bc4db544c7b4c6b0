package components

import "github.com/go-gl/mathgl/mgl64"

// TransformComponent 实体在世界中的位置与朝向
// Y 轴向上，平台表面位于 y=0
type TransformComponent struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}
