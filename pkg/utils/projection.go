package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Projection 竞技场俯视投影：镜头前方向朝屏幕上方
//
// 桌面端 ScaleX == ScaleY；终端字符高约为宽的两倍，ScaleX 取 ScaleY 的两倍。
type Projection struct {
	CenterX, CenterY float64 // 世界原点在屏幕上的位置
	ScaleX, ScaleY   float64 // 每个世界单位对应的屏幕单位
	YawDegrees       float64 // 镜头偏航角
}

// Project 把世界坐标投影到屏幕坐标
//
// 参数:
//   - p: 世界坐标（y 分量不参与投影）
//
// 返回:
//   - x, y: 屏幕坐标
func (pr Projection) Project(p mgl64.Vec3) (float64, float64) {
	rad := mgl64.DegToRad(pr.YawDegrees)
	sin, cos := math.Sin(rad), math.Cos(rad)
	// 镜头右方向 (cos, 0, -sin)，前方向 (sin, 0, cos)
	right := p.X()*cos - p.Z()*sin
	forward := p.X()*sin + p.Z()*cos
	return pr.CenterX + right*pr.ScaleX, pr.CenterY - forward*pr.ScaleY
}

// Radius 按高度放大半径，模拟跳起时离镜头更近
func (pr Projection) Radius(radius, height float64) float64 {
	grow := 1 + mgl64.Clamp(height, -5, 10)*0.05
	if grow < 0.5 {
		grow = 0.5
	}
	return radius * pr.ScaleX * grow
}
