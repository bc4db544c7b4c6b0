package game

// Scene represents a game scene (e.g., the arena).
// 渲染由各前端（ebiten / 终端）自行完成，场景只负责逻辑推进
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)
}

// Finishable 是一个可选接口，场景结束（如玩家掉出世界）后由 SceneManager 重新加载
type Finishable interface {
	IsFinished() bool
}
