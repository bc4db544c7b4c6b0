package components

import "github.com/go-gl/mathgl/mgl64"

// IndicatorComponent 能力指示光环的显示状态
type IndicatorComponent struct {
	Visible  bool
	Position mgl64.Vec3
}
