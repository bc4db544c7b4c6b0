package host

// Key 离散按键
type Key int

const (
	// KeyAbility 能力触发键（空格）
	KeyAbility Key = iota
	// KeyRestart 重新开始（R）
	KeyRestart
)

// 模拟轴名称
const (
	AxisVertical   = "Vertical"
	AxisHorizontal = "Horizontal"
)

// String 返回按键名称
func (k Key) String() string {
	switch k {
	case KeyAbility:
		return "Ability"
	case KeyRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}
