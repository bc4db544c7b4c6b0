package types

// Tag 对参与模拟的实体（Actor）进行分类
// 碰撞事件、按标签查找都基于它
type Tag int

const (
	// TagNone 未分类（如镜头焦点）
	TagNone Tag = iota
	TagPlayer
	TagEnemy
	TagBoss
	TagPowerUp
	TagProjectile
)

// String 返回标签名称，同时作为碰撞空间中的标签字符串
func (t Tag) String() string {
	switch t {
	case TagPlayer:
		return "player"
	case TagEnemy:
		return "enemy"
	case TagBoss:
		return "boss"
	case TagPowerUp:
		return "powerup"
	case TagProjectile:
		return "projectile"
	default:
		return "none"
	}
}

// IsHostile 敌人与 Boss 都算作敌对单位
// 火箭锁定和重砸爆炸都作用于全部敌对单位
func (t Tag) IsHostile() bool {
	return t == TagEnemy || t == TagBoss
}
