package systems

import (
	"fmt"
	"log"
	"sort"

	"github.com/decker502/sumo/pkg/components"
	"github.com/decker502/sumo/pkg/config"
	"github.com/decker502/sumo/pkg/host"
	"github.com/decker502/sumo/pkg/types"
)

// MiniEnemySpawner 召唤小怪的能力（由刷怪协调器提供）
type MiniEnemySpawner interface {
	SpawnMiniEnemy(count int) int
}

// LogOutputFrameInterval 日志输出间隔（每N帧输出一次）
const LogOutputFrameInterval = 100

// EnemySystem 敌人追击与 Boss 召唤
//
// 每帧对每个敌人：
//   - 掉出世界（高度低于 FloorY）时销毁
//   - 沿指向玩家的单位方向施加 Speed*deltaTime 的冲量
//   - Boss 超过 NextSpawnTime 时重新排期并召唤小怪（逾期多久都只召唤一次）
type EnemySystem struct {
	host    host.Host
	player  host.ActorID
	cfg     config.EnemiesConfig
	speeds  func(types.ActorKind) float64
	spawner MiniEnemySpawner

	enemies   map[host.ActorID]*components.EnemyComponent
	schedules map[host.ActorID]*components.SpawnScheduleComponent
	fallen    int

	logFrameCounter int
}

// NewEnemySystem 创建敌人系统
//
// 参数:
//   - h: 模拟宿主
//   - player: 追击目标（玩家实体）
//   - cfg: 玩法配置
//   - spawner: 小怪召唤者，可以为 nil（Boss 不召唤）
//
// 返回:
//   - *EnemySystem: 敌人系统实例
//   - error: 玩家实体不存在时返回 ErrMissingActor
func NewEnemySystem(h host.Host, player host.ActorID, cfg *config.GameplayConfig, spawner MiniEnemySpawner) (*EnemySystem, error) {
	if !h.IsAlive(player) {
		return nil, fmt.Errorf("enemy system: player %d: %w", player, ErrMissingActor)
	}
	return &EnemySystem{
		host:      h,
		player:    player,
		cfg:       cfg.Enemies,
		speeds:    cfg.EnemySpeed,
		spawner:   spawner,
		enemies:   make(map[host.ActorID]*components.EnemyComponent),
		schedules: make(map[host.ActorID]*components.SpawnScheduleComponent),
	}, nil
}

// Track 开始驱动一个敌人；Boss 从 now+FirstSpawnDelay 开始召唤
func (es *EnemySystem) Track(id host.ActorID, kind types.ActorKind, now float64) {
	isBoss := kind == types.KindBoss
	es.enemies[id] = &components.EnemyComponent{
		Speed:  es.speeds(kind),
		IsBoss: isBoss,
	}
	if isBoss {
		es.schedules[id] = &components.SpawnScheduleComponent{
			Interval:      es.cfg.Boss.SpawnInterval,
			NextSpawnTime: now + es.cfg.Boss.FirstSpawnDelay,
			SpawnCount:    es.cfg.Boss.MiniEnemyCount,
		}
	}
}

// Count 返回仍在驱动的敌人数量
func (es *EnemySystem) Count() int {
	return len(es.enemies)
}

// Bosses 返回仍在驱动的 Boss 数量
func (es *EnemySystem) Bosses() int {
	n := 0
	for _, enemy := range es.enemies {
		if enemy.IsBoss {
			n++
		}
	}
	return n
}

// Fallen 返回累计掉出世界的敌人数量
func (es *EnemySystem) Fallen() int {
	return es.fallen
}

// Schedule 返回 Boss 的召唤时间表
func (es *EnemySystem) Schedule(boss host.ActorID) (components.SpawnScheduleComponent, bool) {
	schedule, ok := es.schedules[boss]
	if !ok {
		return components.SpawnScheduleComponent{}, false
	}
	return *schedule, true
}

// Update 推进所有敌人一帧
func (es *EnemySystem) Update(now, deltaTime float64) {
	playerPos, playerOK := es.host.Position(es.player)

	// 只在有敌人时输出日志（避免每帧都打印）
	if len(es.enemies) > 0 {
		es.logFrameCounter++
		if es.logFrameCounter%LogOutputFrameInterval == 1 {
			log.Printf("[EnemySystem] 追击中的敌人 %d 个，Boss %d 个", len(es.enemies), es.Bosses())
		}
	}

	for _, id := range es.sortedEnemies() {
		enemy := es.enemies[id]
		if !es.host.IsAlive(id) {
			es.forget(id)
			continue
		}
		pos, ok := es.host.Position(id)
		if !ok {
			continue
		}

		if pos.Y() < es.cfg.FloorY {
			log.Printf("[EnemySystem] 敌人 %d 掉出世界 (y=%.2f)", id, pos.Y())
			es.host.DestroyActor(id)
			es.forget(id)
			es.fallen++
			continue
		}

		if playerOK {
			if look := playerPos.Sub(pos); look.Len() > 1e-6 {
				es.host.ApplyForce(id, look.Normalize().Mul(enemy.Speed*deltaTime), host.ForceImpulse)
			}
		}

		if schedule, isBoss := es.schedules[id]; isBoss && now > schedule.NextSpawnTime {
			schedule.NextSpawnTime = now + schedule.Interval
			schedule.TimesSpawned++
			if es.spawner != nil {
				n := es.spawner.SpawnMiniEnemy(schedule.SpawnCount)
				log.Printf("[EnemySystem] Boss %d 召唤小怪 %d 个，下次 %.2fs", id, n, schedule.NextSpawnTime)
			}
		}
	}
}

func (es *EnemySystem) forget(id host.ActorID) {
	delete(es.enemies, id)
	delete(es.schedules, id)
}

func (es *EnemySystem) sortedEnemies() []host.ActorID {
	ids := make([]host.ActorID, 0, len(es.enemies))
	for id := range es.enemies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
