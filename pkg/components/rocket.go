package components

import (
	"github.com/decker502/sumo/pkg/ecs"
	"github.com/decker502/sumo/pkg/types"
)

// RocketComponent 追踪火箭的状态
type RocketComponent struct {
	Target    ecs.EntityID // 目标实体（非拥有引用）
	TargetTag types.Tag    // 发射时目标的标签，命中同标签实体才施加冲击
	Homing    bool
}
