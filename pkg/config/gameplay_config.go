package config

import (
	"fmt"
	"os"

	"github.com/decker502/sumo/pkg/types"
	"gopkg.in/yaml.v3"
)

// GameplayConfig 竞技场玩法配置
//
// 所有可调参数（速度、力度、时长、刚体属性）集中在这里，
// 默认值见 DefaultGameplayConfig，桌面端内嵌 data/arena.yaml 作为默认调参文件。
type GameplayConfig struct {
	World   WorldConfig           `yaml:"world"`
	Player  PlayerConfig          `yaml:"player"`
	Smash   SmashConfig           `yaml:"smash"`
	Rocket  RocketConfig          `yaml:"rocket"`
	Enemies EnemiesConfig         `yaml:"enemies"`
	Spawn   SpawnConfig           `yaml:"spawn"`
	Camera  CameraConfig          `yaml:"camera"`
	Bodies  map[string]BodyConfig `yaml:"bodies"` // 预制类型名 -> 刚体属性
}

// WorldConfig 模拟世界参数
type WorldConfig struct {
	Gravity        float64 `yaml:"gravity"`        // 重力加速度（负值向下）
	PlatformRadius float64 `yaml:"platformRadius"` // 圆形平台半径，平台表面位于 y=0
	Extent         float64 `yaml:"extent"`         // 碰撞空间半边长（|x|,|z| 超出此值的实体不参与碰撞）
	MaxDeltaTime   float64 `yaml:"maxDeltaTime"`   // 单帧时间步上限（秒）
}

// PlayerConfig 玩家控制参数
type PlayerConfig struct {
	Speed            float64 `yaml:"speed"`            // 推进力系数
	PushBackStrength float64 `yaml:"pushBackStrength"` // 击退冲量大小
	IndicatorOffsetY float64 `yaml:"indicatorOffsetY"` // 指示光环相对玩家的竖直偏移
	PickupDuration   float64 `yaml:"pickupDuration"`   // 能力持续时间（秒）
}

// SmashConfig 重砸参数
type SmashConfig struct {
	HangTime        float64 `yaml:"hangTime"`        // 上升阶段时长（秒）
	SmashSpeed      float64 `yaml:"smashSpeed"`      // 上升速度，下砸速度为其两倍
	ExplosionForce  float64 `yaml:"explosionForce"`  // 落地爆炸冲量
	ExplosionRadius float64 `yaml:"explosionRadius"` // 爆炸半径
}

// RocketConfig 追踪火箭参数
type RocketConfig struct {
	Speed         float64 `yaml:"speed"`         // 飞行速度
	Strength      float64 `yaml:"strength"`      // 命中冲量
	Lifetime      float64 `yaml:"lifetime"`      // 存活时长（秒）
	LaunchOffsetY float64 `yaml:"launchOffsetY"` // 发射点相对玩家的竖直偏移
}

// EnemiesConfig 敌人参数
type EnemiesConfig struct {
	FloorY float64            `yaml:"floorY"` // 低于此高度视为掉出世界
	Speeds map[string]float64 `yaml:"speeds"` // 预制类型名 -> 追击冲量系数
	Boss   BossConfig         `yaml:"boss"`
}

// BossConfig Boss 召唤参数
type BossConfig struct {
	SpawnInterval   float64 `yaml:"spawnInterval"`   // 召唤间隔（秒）
	FirstSpawnDelay float64 `yaml:"firstSpawnDelay"` // 出生后首次召唤的延迟（秒）
	MiniEnemyCount  int     `yaml:"miniEnemyCount"`  // 每次召唤的小怪数量
}

// SpawnConfig 刷怪协调器参数
type SpawnConfig struct {
	Range        float64  `yaml:"range"`        // 出生点 x/z 随机范围 [-Range, Range]
	Height       float64  `yaml:"height"`       // 敌人出生高度
	PickupHeight float64  `yaml:"pickupHeight"` // 拾取物悬浮高度
	BossRound    int      `yaml:"bossRound"`    // 每 BossRound 波出现一次 Boss
	PowerUps     []string `yaml:"powerUps"`     // 可随机生成的能力类型
	Seed         int64    `yaml:"seed"`         // 随机种子，0 表示使用当前时间
}

// CameraConfig 镜头参数
type CameraConfig struct {
	RotationSpeed float64 `yaml:"rotationSpeed"` // 焦点旋转速度（度/秒）
}

// BodyConfig 预制类型的刚体与碰撞属性
type BodyConfig struct {
	Mass        float64 `yaml:"mass"`
	Radius      float64 `yaml:"radius"`
	Drag        float64 `yaml:"drag"`
	Bounciness  float64 `yaml:"bounciness"`
	UseGravity  bool    `yaml:"useGravity"`
	IsKinematic bool    `yaml:"isKinematic"`
	IsTrigger   bool    `yaml:"isTrigger"`
}

// LoadGameplayConfig 从 YAML 文件加载玩法配置
//
// 文件中未出现的字段保留 DefaultGameplayConfig 的默认值。
//
// 参数:
//   - path: 配置文件路径（如 "data/arena.yaml"）
//
// 返回:
//   - *GameplayConfig: 加载并校验通过的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameplayConfig(path string) (*GameplayConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config: %w", err)
	}
	return ParseGameplayConfig(data)
}

// ParseGameplayConfig 从 YAML 数据解析玩法配置（默认值之上覆盖）
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	config := DefaultGameplayConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
func (c *GameplayConfig) Validate() error {
	if c.World.Gravity > 0 {
		return fmt.Errorf("world.gravity must be <= 0, got %.2f", c.World.Gravity)
	}
	if c.World.PlatformRadius <= 0 {
		return fmt.Errorf("world.platformRadius must be > 0, got %.2f", c.World.PlatformRadius)
	}
	if c.World.Extent < c.World.PlatformRadius {
		return fmt.Errorf("world.extent (%.2f) must cover the platform radius (%.2f)",
			c.World.Extent, c.World.PlatformRadius)
	}
	if c.World.MaxDeltaTime <= 0 {
		return fmt.Errorf("world.maxDeltaTime must be > 0, got %.3f", c.World.MaxDeltaTime)
	}

	if c.Player.Speed < 0 {
		return fmt.Errorf("player.speed must be >= 0, got %.2f", c.Player.Speed)
	}
	if c.Player.PushBackStrength < 0 {
		return fmt.Errorf("player.pushBackStrength must be >= 0, got %.2f", c.Player.PushBackStrength)
	}
	if c.Player.PickupDuration <= 0 {
		return fmt.Errorf("player.pickupDuration must be > 0, got %.2f", c.Player.PickupDuration)
	}

	if c.Smash.HangTime <= 0 {
		return fmt.Errorf("smash.hangTime must be > 0, got %.2f", c.Smash.HangTime)
	}
	if c.Smash.SmashSpeed <= 0 {
		return fmt.Errorf("smash.smashSpeed must be > 0, got %.2f", c.Smash.SmashSpeed)
	}
	if c.Smash.ExplosionForce < 0 || c.Smash.ExplosionRadius < 0 {
		return fmt.Errorf("smash explosion force/radius must be >= 0, got %.2f/%.2f",
			c.Smash.ExplosionForce, c.Smash.ExplosionRadius)
	}

	if c.Rocket.Speed <= 0 {
		return fmt.Errorf("rocket.speed must be > 0, got %.2f", c.Rocket.Speed)
	}
	if c.Rocket.Lifetime <= 0 {
		return fmt.Errorf("rocket.lifetime must be > 0, got %.2f", c.Rocket.Lifetime)
	}

	for name, speed := range c.Enemies.Speeds {
		kind, err := types.ParseActorKind(name)
		if err != nil {
			return fmt.Errorf("enemies.speeds: %w", err)
		}
		if !kind.Tag().IsHostile() {
			return fmt.Errorf("enemies.speeds: %s is not a hostile kind", name)
		}
		if speed < 0 {
			return fmt.Errorf("enemies.speeds.%s must be >= 0, got %.2f", name, speed)
		}
	}
	if c.Enemies.Boss.SpawnInterval <= 0 {
		return fmt.Errorf("enemies.boss.spawnInterval must be > 0, got %.2f", c.Enemies.Boss.SpawnInterval)
	}
	if c.Enemies.Boss.MiniEnemyCount < 0 {
		return fmt.Errorf("enemies.boss.miniEnemyCount must be >= 0, got %d", c.Enemies.Boss.MiniEnemyCount)
	}

	if c.Spawn.Range <= 0 {
		return fmt.Errorf("spawn.range must be > 0, got %.2f", c.Spawn.Range)
	}
	if c.Spawn.BossRound < 1 {
		return fmt.Errorf("spawn.bossRound must be >= 1, got %d", c.Spawn.BossRound)
	}
	if _, err := c.PowerUpKinds(); err != nil {
		return fmt.Errorf("spawn.powerUps: %w", err)
	}

	for name, body := range c.Bodies {
		if _, err := types.ParseActorKind(name); err != nil {
			return fmt.Errorf("bodies: %w", err)
		}
		if !body.IsKinematic && body.Mass <= 0 {
			return fmt.Errorf("bodies.%s.mass must be > 0 for dynamic bodies, got %.2f", name, body.Mass)
		}
		if body.Radius < 0 {
			return fmt.Errorf("bodies.%s.radius must be >= 0, got %.2f", name, body.Radius)
		}
		if body.Bounciness < 0 || body.Bounciness > 1 {
			return fmt.Errorf("bodies.%s.bounciness must be in [0, 1], got %.2f", name, body.Bounciness)
		}
	}

	return nil
}

// PowerUpKinds 返回可随机生成的能力类型列表
func (c *GameplayConfig) PowerUpKinds() ([]types.PowerUpKind, error) {
	kinds := make([]types.PowerUpKind, 0, len(c.Spawn.PowerUps))
	for _, name := range c.Spawn.PowerUps {
		kind, err := types.ParsePowerUpKind(name)
		if err != nil {
			return nil, err
		}
		if kind == types.PowerUpNone {
			return nil, fmt.Errorf("power-up list cannot contain None")
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

// Body 返回预制类型的刚体属性，未配置时返回零值和 false
func (c *GameplayConfig) Body(kind types.ActorKind) (BodyConfig, bool) {
	body, ok := c.Bodies[kind.String()]
	return body, ok
}

// EnemySpeed 返回敌人预制的追击冲量系数
func (c *GameplayConfig) EnemySpeed(kind types.ActorKind) float64 {
	return c.Enemies.Speeds[kind.String()]
}
