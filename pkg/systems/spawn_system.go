package systems

import (
	"fmt"
	"log"

	"github.com/decker502/sumo/pkg/config"
	"github.com/decker502/sumo/pkg/host"
	"github.com/decker502/sumo/pkg/types"
	"github.com/decker502/sumo/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
)

// enemyArchetypes 普通波次随机选择的敌人类型
var enemyArchetypes = []types.ActorKind{types.KindEnemy, types.KindHeavyEnemy}

// EnemyTracker 接收新生成的敌人
type EnemyTracker interface {
	Track(id host.ActorID, kind types.ActorKind, now float64)
}

// WaveResult 一次波次检查的结果
type WaveResult struct {
	Started bool // 本帧是否开始了新的一波
	Wave    int  // 当前波次
	Boss    bool // 新的一波是否为 Boss 波
	Spawned int  // 本波生成的敌对实体数量
}

// SpawnSystem 刷怪协调器
//
// 场上没有敌对实体时开始下一波：每 BossRound 波出现一个 Boss，
// 其余波次生成与波次编号相同数量的随机敌人；每波附带一个随机能力拾取物。
// 同时为 Boss 提供小怪召唤。
type SpawnSystem struct {
	host     host.Host
	cfg      config.SpawnConfig
	powerUps []types.PowerUpKind
	rng      *utils.PRNG
	tracker  EnemyTracker

	wave int
}

// NewSpawnSystem 创建刷怪协调器
//
// 参数:
//   - h: 模拟宿主
//   - cfg: 玩法配置
//   - rng: 随机数源
//
// 返回:
//   - *SpawnSystem: 刷怪协调器实例
//   - error: 能力拾取物列表无效时返回错误
func NewSpawnSystem(h host.Host, cfg *config.GameplayConfig, rng *utils.PRNG) (*SpawnSystem, error) {
	powerUps, err := cfg.PowerUpKinds()
	if err != nil {
		return nil, fmt.Errorf("spawn system: %w", err)
	}
	if rng == nil {
		rng = utils.NewPRNG(cfg.Spawn.Seed)
	}
	return &SpawnSystem{
		host:     h,
		cfg:      cfg.Spawn,
		powerUps: powerUps,
		rng:      rng,
	}, nil
}

// SetTracker 设置新敌人的接收者
func (ss *SpawnSystem) SetTracker(tracker EnemyTracker) {
	ss.tracker = tracker
}

// Wave 返回当前波次（0 表示尚未开始）
func (ss *SpawnSystem) Wave() int {
	return ss.wave
}

// Update 场上没有敌对实体时开始下一波
func (ss *SpawnSystem) Update() WaveResult {
	if len(hostiles(ss.host)) > 0 {
		return WaveResult{Wave: ss.wave}
	}

	ss.wave++
	result := WaveResult{Started: true, Wave: ss.wave}
	if ss.cfg.BossRound > 0 && ss.wave%ss.cfg.BossRound == 0 {
		result.Boss = true
		if _, err := ss.SpawnEnemy(types.KindBoss); err == nil {
			result.Spawned++
		}
	} else {
		for i := 0; i < ss.wave; i++ {
			kind := enemyArchetypes[ss.rng.Intn(len(enemyArchetypes))]
			if _, err := ss.SpawnEnemy(kind); err == nil {
				result.Spawned++
			}
		}
	}

	if _, err := ss.SpawnPowerUp(); err != nil {
		log.Printf("[SpawnSystem] 生成拾取物失败: %v", err)
	}

	log.Printf("[SpawnSystem] 第 %d 波开始（Boss: %v），生成敌人 %d 个", ss.wave, result.Boss, result.Spawned)
	return result
}

// SpawnMiniEnemy 在随机位置生成 count 个小怪，返回成功生成的数量
func (ss *SpawnSystem) SpawnMiniEnemy(count int) int {
	spawned := 0
	for i := 0; i < count; i++ {
		if _, err := ss.SpawnEnemy(types.KindMiniEnemy); err != nil {
			log.Printf("[SpawnSystem] 生成小怪失败: %v", err)
			continue
		}
		spawned++
	}
	return spawned
}

// SpawnEnemy 在随机位置生成一个敌对实体并交给敌人系统驱动
func (ss *SpawnSystem) SpawnEnemy(kind types.ActorKind) (host.ActorID, error) {
	id, err := ss.host.CreateActor(kind, ss.randomPosition(ss.cfg.Height), mgl64.QuatIdent())
	if err != nil {
		return 0, fmt.Errorf("spawn %v: %w", kind, err)
	}
	if ss.tracker != nil {
		ss.tracker.Track(id, kind, ss.host.Now())
	}
	return id, nil
}

// SpawnPowerUp 在随机位置生成一个随机类型的能力拾取物
func (ss *SpawnSystem) SpawnPowerUp() (host.ActorID, error) {
	if len(ss.powerUps) == 0 {
		return 0, fmt.Errorf("no power-up kinds configured")
	}
	kind, ok := types.PowerUpActorKind(ss.powerUps[ss.rng.Intn(len(ss.powerUps))])
	if !ok {
		return 0, fmt.Errorf("invalid power-up kind")
	}
	id, err := ss.host.CreateActor(kind, ss.randomPosition(ss.cfg.PickupHeight), mgl64.QuatIdent())
	if err != nil {
		return 0, fmt.Errorf("spawn %v: %w", kind, err)
	}
	return id, nil
}

func (ss *SpawnSystem) randomPosition(height float64) mgl64.Vec3 {
	r := ss.cfg.Range
	return mgl64.Vec3{ss.rng.Range(-r, r), height, ss.rng.Range(-r, r)}
}
