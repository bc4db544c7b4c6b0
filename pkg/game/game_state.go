package game

import "log"

// GameState 存储一局竞技场的全局状态
// 由场景持有并显式传递（不是单例），重开一局即创建新实例
type GameState struct {
	Wave        int     // 当前波次（0 表示尚未开始）
	BossWaves   int     // 已出现的 Boss 波数
	GameOver    bool    // 玩家掉出世界
	GameOverAt  float64 // 掉落时的模拟时间
	Explosions  int     // 重砸落地次数
	SmashHits   int     // 重砸爆炸波及的敌对实体累计数量
	RocketsShot int     // 发射的火箭总数
}

// NewGameState 创建新一局的状态
func NewGameState() *GameState {
	return &GameState{}
}

// NextWave 进入下一波，返回新的波次编号
func (gs *GameState) NextWave(isBoss bool) int {
	gs.Wave++
	if isBoss {
		gs.BossWaves++
	}
	return gs.Wave
}

// MarkGameOver 记录本局结束，重复调用只记录第一次
func (gs *GameState) MarkGameOver(now float64) {
	if gs.GameOver {
		return
	}
	gs.GameOver = true
	gs.GameOverAt = now
	log.Printf("[GameState] 玩家掉出平台，本局结束于 %.2fs（第 %d 波）", now, gs.Wave)
}
