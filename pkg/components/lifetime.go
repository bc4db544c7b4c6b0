package components

// LifetimeComponent 管理实体的生命周期
// 到达截止时间后实体被销毁（如火箭的 5 秒存活期）
type LifetimeComponent struct {
	DestroyAt float64 // 销毁时间点（模拟时钟，秒）
	IsExpired bool    // 是否已过期
}
