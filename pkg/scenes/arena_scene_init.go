package scenes

import (
	"fmt"

	"github.com/decker502/sumo/pkg/systems"
	"github.com/decker502/sumo/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

// createActors 创建玩家和镜头焦点
func (s *ArenaScene) createActors() error {
	restHeight := 0.0
	if body, ok := s.cfg.Body(types.KindPlayer); ok {
		restHeight = body.Radius
	}

	player, err := s.world.CreateActor(types.KindPlayer, mgl64.Vec3{0, restHeight, 0}, mgl64.QuatIdent())
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	focal, err := s.world.CreateActor(types.KindFocalPoint, mgl64.Vec3{}, mgl64.QuatIdent())
	if err != nil {
		return fmt.Errorf("failed to create camera focal point: %w", err)
	}

	s.playerID = player
	s.focalID = focal
	return nil
}

// initSystems 创建并连接所有系统
func (s *ArenaScene) initSystems() error {
	var err error
	w := s.world
	em := w.EntityManager()

	if s.camera, err = systems.NewCameraSystem(w, s.focalID, s.cfg.Camera); err != nil {
		return err
	}

	s.rockets = systems.NewRocketSystem(w, s.cfg.Rocket)

	if s.ability, err = systems.NewAbilitySystem(w, s.playerID, s.cfg, s.rockets); err != nil {
		return err
	}
	if s.player, err = systems.NewPlayerSystem(w, s.playerID, s.camera, s.ability, s.cfg.Player); err != nil {
		return err
	}

	if s.spawner, err = systems.NewSpawnSystem(w, s.cfg, s.rng); err != nil {
		return err
	}
	if s.enemies, err = systems.NewEnemySystem(w, s.playerID, s.cfg, s.spawner); err != nil {
		return err
	}
	s.spawner.SetTracker(s.enemies)

	s.physics = systems.NewPhysicsSystem(em, s.cfg.World)
	s.collisions = systems.NewCollisionSystem(em, s.cfg.World, s)
	s.lifetime = systems.NewLifetimeSystem(em, w)
	return nil
}
