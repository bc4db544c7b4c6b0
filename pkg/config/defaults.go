package config

import "github.com/decker502/sumo/pkg/types"

// DefaultGameplayConfig 返回内置的默认玩法配置
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		World: WorldConfig{
			Gravity:        -9.81,
			PlatformRadius: 12.0,
			Extent:         40.0,
			MaxDeltaTime:   0.06,
		},
		Player: PlayerConfig{
			Speed:            5.0,
			PushBackStrength: 15.0,
			IndicatorOffsetY: -0.6,
			PickupDuration:   7.0,
		},
		Smash: SmashConfig{
			HangTime:        0.5,
			SmashSpeed:      10.0,
			ExplosionForce:  20.0,
			ExplosionRadius: 15.0,
		},
		Rocket: RocketConfig{
			Speed:         15.0,
			Strength:      15.0,
			Lifetime:      5.0,
			LaunchOffsetY: 1.0,
		},
		Enemies: EnemiesConfig{
			FloorY: -10.0,
			Speeds: map[string]float64{
				types.KindEnemy.String():      3.0,
				types.KindHeavyEnemy.String(): 5.0,
				types.KindMiniEnemy.String():  4.0,
				types.KindBoss.String():       2.0,
			},
			Boss: BossConfig{
				SpawnInterval:   4.0,
				FirstSpawnDelay: 4.0,
				MiniEnemyCount:  2,
			},
		},
		Spawn: SpawnConfig{
			Range:        9.0,
			Height:       1.0,
			PickupHeight: 0.5,
			BossRound:    4,
			PowerUps:     []string{"pushBack", "rocket", "smash"},
		},
		Camera: CameraConfig{
			RotationSpeed: 60.0,
		},
		Bodies: map[string]BodyConfig{
			types.KindPlayer.String():          {Mass: 1.0, Radius: 0.5, Drag: 0.5, Bounciness: 0.6, UseGravity: true},
			types.KindEnemy.String():           {Mass: 1.0, Radius: 0.5, Drag: 0.5, Bounciness: 0.6, UseGravity: true},
			types.KindHeavyEnemy.String():      {Mass: 2.5, Radius: 0.6, Drag: 0.5, Bounciness: 0.4, UseGravity: true},
			types.KindMiniEnemy.String():       {Mass: 0.5, Radius: 0.3, Drag: 0.5, Bounciness: 0.6, UseGravity: true},
			types.KindBoss.String():            {Mass: 6.0, Radius: 1.2, Drag: 0.5, Bounciness: 0.3, UseGravity: true},
			types.KindPowerUpPushBack.String(): {Radius: 0.4, IsKinematic: true, IsTrigger: true},
			types.KindPowerUpRocket.String():   {Radius: 0.4, IsKinematic: true, IsTrigger: true},
			types.KindPowerUpSmash.String():    {Radius: 0.4, IsKinematic: true, IsTrigger: true},
			types.KindRocket.String():          {Mass: 0.1, Radius: 0.2, IsKinematic: true},
			types.KindFocalPoint.String():      {IsKinematic: true},
		},
	}
}
