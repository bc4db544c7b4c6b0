package components

import "github.com/decker502/sumo/pkg/types"

// SmashPhase 重砸动作的阶段
type SmashPhase int

const (
	// SmashIdle 未在重砸
	SmashIdle SmashPhase = iota
	// SmashAscending 上升阶段：直到 JumpDeadline
	SmashAscending
	// SmashDescending 下砸阶段：直到高度回到 FloorHeight
	SmashDescending
)

// String 返回阶段名称
func (p SmashPhase) String() string {
	switch p {
	case SmashAscending:
		return "Ascending"
	case SmashDescending:
		return "Descending"
	default:
		return "Idle"
	}
}

// AbilityState 玩家当前能力及其计时状态
//
// 不变量：
//   - SmashPhase != SmashIdle 时 Current == PowerUpSmash
//   - 任意时刻最多只有一个到期倒计时（ExpiryArmed 为单一字段，重新拾取直接覆盖）
type AbilityState struct {
	Current types.PowerUpKind

	// 拾取到期倒计时
	ExpiryArmed    bool
	ExpiryDeadline float64

	// 重砸动作状态（跨帧推进）
	SmashPhase   SmashPhase
	FloorHeight  float64 // 起跳时记录的地面高度
	JumpDeadline float64 // 上升阶段结束时间
}

// HasPowerUp 是否持有任意能力
func (s AbilityState) HasPowerUp() bool {
	return s.Current != types.PowerUpNone
}

// IsSmashing 重砸动作是否进行中
func (s AbilityState) IsSmashing() bool {
	return s.SmashPhase != SmashIdle
}
