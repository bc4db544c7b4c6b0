package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/sumo/pkg/config"
	"github.com/decker502/sumo/pkg/ecs"
	"github.com/decker502/sumo/pkg/game"
	"github.com/decker502/sumo/pkg/host"
	"github.com/decker502/sumo/pkg/systems"
	"github.com/decker502/sumo/pkg/types"
	"github.com/decker502/sumo/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
)

// RestartDelay 玩家掉出世界后场景结束前的等待时间（秒）
const RestartDelay = 2.0

// ArenaScene 一局竞技场
//
// 持有参考宿主 World 和全部系统，固定每帧的执行顺序：
//
//  1. World.BeginFrame（时钟、输入边沿、位置快照）
//  2. 镜头旋转
//  3. 玩家控制（到期检查、能力触发、重砸推进）
//  4. 敌人追击与 Boss 召唤
//  5. 火箭追踪
//  6. 刷怪波次
//  7. 物理积分
//  8. 碰撞检测与事件分发
//  9. 生命周期
//  10. 掉落检查
//  11. World.EndFrame（清理销毁的实体）
type ArenaScene struct {
	cfg   *config.GameplayConfig
	world *game.World
	state *game.GameState
	rng   *utils.PRNG

	playerID ecs.EntityID
	focalID  ecs.EntityID

	camera     *systems.CameraSystem
	ability    *systems.AbilitySystem
	player     *systems.PlayerSystem
	enemies    *systems.EnemySystem
	rockets    *systems.RocketSystem
	spawner    *systems.SpawnSystem
	physics    *systems.PhysicsSystem
	collisions *systems.CollisionSystem
	lifetime   *systems.LifetimeSystem

	restartRequested bool
}

var _ host.CollisionHandler = (*ArenaScene)(nil)

// NewArenaScene 创建一局竞技场
//
// 参数:
//   - cfg: 玩法配置，nil 时使用默认配置
//   - input: 输入源，nil 时没有任何输入
//   - seed: 随机种子，0 时使用配置中的种子（配置也为 0 则取当前时间）
//
// 返回:
//   - *ArenaScene: 场景实例
//   - error: 配置无效或必需实体创建失败时返回错误
func NewArenaScene(cfg *config.GameplayConfig, input host.Input, seed int64) (*ArenaScene, error) {
	if cfg == nil {
		cfg = config.DefaultGameplayConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}
	if seed == 0 {
		seed = cfg.Spawn.Seed
	}

	s := &ArenaScene{
		cfg:   cfg,
		world: game.NewWorld(cfg, input),
		state: game.NewGameState(),
		rng:   utils.NewPRNG(seed),
	}

	if err := s.createActors(); err != nil {
		return nil, err
	}
	if err := s.initSystems(); err != nil {
		return nil, err
	}

	log.Printf("[ArenaScene] 竞技场就绪（种子 %d）", s.rng.Seed())
	return s, nil
}

// Update 推进一帧
func (s *ArenaScene) Update(deltaTime float64) {
	dt := s.world.BeginFrame(deltaTime)
	now := s.world.Now()

	if s.world.KeyEdge(host.KeyRestart) {
		s.restartRequested = true
	}

	s.camera.Update(dt)
	if err := s.world.SetOrientation(s.focalID, s.camera.Orientation()); err != nil {
		log.Printf("[ArenaScene] 更新镜头焦点朝向失败: %v", err)
	}

	if !s.state.GameOver {
		if step := s.player.Update(now); step.Exploded {
			s.state.Explosions++
			s.state.SmashHits += step.Hits
		}
	}
	s.enemies.Update(now, dt)
	s.rockets.Update()
	if wave := s.spawner.Update(); wave.Started {
		s.state.NextWave(wave.Boss)
	}

	s.physics.Update(dt)
	s.collisions.Update()
	s.lifetime.Update()

	s.checkPlayerFall(now)
	s.state.RocketsShot = s.rockets.Fired()

	s.world.EndFrame()
}

// checkPlayerFall 玩家掉到世界底线以下时本局结束
func (s *ArenaScene) checkPlayerFall(now float64) {
	if s.state.GameOver {
		return
	}
	pos, ok := s.world.LivePosition(s.playerID)
	if !ok || pos.Y() < s.cfg.Enemies.FloorY {
		s.state.MarkGameOver(now)
	}
}

// IsFinished 实现 game.Finishable
// 掉落后等待 RestartDelay，或玩家按下重开键
func (s *ArenaScene) IsFinished() bool {
	if s.restartRequested {
		return true
	}
	return s.state.GameOver && s.world.Now()-s.state.GameOverAt >= RestartDelay
}

// OnTriggerEnter 实现 host.CollisionHandler
func (s *ArenaScene) OnTriggerEnter(self, other ecs.EntityID, otherTag types.Tag) {
	if self == s.playerID {
		s.player.OnTriggerEnter(other, otherTag)
	}
}

// OnCollisionEnter 实现 host.CollisionHandler
func (s *ArenaScene) OnCollisionEnter(self, other ecs.EntityID, otherTag types.Tag, contactNormal mgl64.Vec3) {
	switch {
	case self == s.playerID:
		s.player.OnCollisionEnter(other, otherTag, contactNormal)
	case s.rockets.IsRocket(self):
		s.rockets.OnCollisionEnter(self, other, otherTag, contactNormal)
	}
}

// World 返回参考宿主
func (s *ArenaScene) World() *game.World {
	return s.world
}

// State 返回本局状态
func (s *ArenaScene) State() *game.GameState {
	return s.state
}

// Config 返回玩法配置
func (s *ArenaScene) Config() *config.GameplayConfig {
	return s.cfg
}

// Player 返回玩家实体
func (s *ArenaScene) Player() ecs.EntityID {
	return s.playerID
}

// FocalPoint 返回镜头焦点实体
func (s *ArenaScene) FocalPoint() ecs.EntityID {
	return s.focalID
}

// CameraYaw 返回镜头偏航角（度）
func (s *ArenaScene) CameraYaw() float64 {
	return s.camera.Yaw()
}

// Ability 返回玩家能力状态机
func (s *ArenaScene) Ability() *systems.AbilitySystem {
	return s.ability
}

// Enemies 返回敌人系统
func (s *ArenaScene) Enemies() *systems.EnemySystem {
	return s.enemies
}

// Rockets 返回火箭系统
func (s *ArenaScene) Rockets() *systems.RocketSystem {
	return s.rockets
}

// Spawner 返回刷怪协调器
func (s *ArenaScene) Spawner() *systems.SpawnSystem {
	return s.spawner
}
