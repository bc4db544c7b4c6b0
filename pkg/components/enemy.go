package components

// EnemyComponent 敌人追击参数
type EnemyComponent struct {
	Speed  float64 // 追击冲量系数，每帧施加 Speed*deltaTime 的冲量
	IsBoss bool
}

// SpawnScheduleComponent Boss 召唤小怪的时间表
// 轮询式累加器：超过 NextSpawnTime 后重新排期并召唤一次，逾期多久都只召唤一次
type SpawnScheduleComponent struct {
	Interval      float64 // 召唤间隔（秒）
	NextSpawnTime float64 // 下次召唤时间点
	SpawnCount    int     // 每次召唤的小怪数量
	TimesSpawned  int     // 已召唤次数
}
