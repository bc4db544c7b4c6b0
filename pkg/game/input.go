package game

import (
	"github.com/decker502/sumo/pkg/host"
	"github.com/go-gl/mathgl/mgl64"
)

// EdgeLatcher 需要在帧开始时锁存按键边沿的输入源
type EdgeLatcher interface {
	Latch()
}

// ManualInput 由调用方写入的输入源
// 用于终端前端（按键事件驱动）和测试（脚本化输入）
//
// Press 记录的按键在下一次 Latch 后的一整帧内 KeyEdge 返回 true，
// 同一帧多次读取结果一致。
type ManualInput struct {
	axes    map[string]float64
	pending map[host.Key]bool
	edges   map[host.Key]bool
}

// NewManualInput 创建空输入源
func NewManualInput() *ManualInput {
	return &ManualInput{
		axes:    make(map[string]float64),
		pending: make(map[host.Key]bool),
		edges:   make(map[host.Key]bool),
	}
}

// SetAxis 设置模拟轴的值（截断到 [-1, 1]）
func (in *ManualInput) SetAxis(name string, value float64) {
	in.axes[name] = mgl64.Clamp(value, -1, 1)
}

// Press 记录一次按键
func (in *ManualInput) Press(key host.Key) {
	in.pending[key] = true
}

// Latch 把上一帧以来的按键转为本帧边沿
func (in *ManualInput) Latch() {
	in.edges, in.pending = in.pending, in.edges
	for k := range in.pending {
		delete(in.pending, k)
	}
}

// Axis 实现 host.Input
func (in *ManualInput) Axis(name string) float64 {
	return in.axes[name]
}

// KeyEdge 实现 host.Input
func (in *ManualInput) KeyEdge(key host.Key) bool {
	return in.edges[key]
}
