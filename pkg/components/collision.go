package components

// ColliderComponent 定义实体的球形碰撞体
// 用于物理系统检测实体之间的碰撞（如火箭与敌人、玩家与拾取物）
type ColliderComponent struct {
	Radius float64 // 碰撞球半径（世界单位）
	// IsTrigger 触发器只产生进入事件，不参与碰撞响应（拾取物）
	IsTrigger bool
}
