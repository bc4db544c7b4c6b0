package systems

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/decker502/sumo/pkg/config"
	"github.com/decker502/sumo/pkg/host"
	"github.com/decker502/sumo/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

type countingSpawner struct {
	calls []float64
	now   func() float64
	total int
}

func (s *countingSpawner) SpawnMiniEnemy(count int) int {
	s.calls = append(s.calls, s.now())
	s.total += count
	return count
}

func newEnemyFixture(t *testing.T, mutate func(*config.GameplayConfig)) (*fakeHost, host.ActorID, *EnemySystem, *countingSpawner) {
	t.Helper()
	h := newFakeHost()
	player := h.add(types.KindPlayer, mgl64.Vec3{0, 0.5, 0})
	cfg := config.DefaultGameplayConfig()
	if mutate != nil {
		mutate(cfg)
	}
	spawner := &countingSpawner{now: h.Now}
	es, err := NewEnemySystem(h, player, cfg, spawner)
	if err != nil {
		t.Fatal(err)
	}
	return h, player, es, spawner
}

func TestNewEnemySystemRequiresPlayer(t *testing.T) {
	_, err := NewEnemySystem(newFakeHost(), 1, config.DefaultGameplayConfig(), nil)
	if !errors.Is(err, ErrMissingActor) {
		t.Fatalf("expected ErrMissingActor, got %v", err)
	}
}

// TestEnemySteering 每帧施加 speed*deltaTime 的冲量指向玩家
func TestEnemySteering(t *testing.T) {
	h, _, es, _ := newEnemyFixture(t, nil)
	enemy := h.add(types.KindEnemy, mgl64.Vec3{4, 0.5, 0})
	es.Track(enemy, types.KindEnemy, 0)

	es.Update(0.1, 0.1)

	forces := h.forcesOn(enemy)
	if len(forces) != 1 {
		t.Fatalf("expected 1 steering impulse, got %d", len(forces))
	}
	// enemy 速度 3，dt 0.1
	if want := (mgl64.Vec3{-0.3, 0, 0}); !vecApproxEqual(forces[0].force, want) {
		t.Errorf("steering = %v, want %v", forces[0].force, want)
	}
	if forces[0].mode != host.ForceImpulse {
		t.Error("steering must be applied as an impulse")
	}
}

// TestEnemyBelowFloorDestroyed 掉到 -10 以下的敌人在下一帧被销毁
func TestEnemyBelowFloorDestroyed(t *testing.T) {
	h, _, es, _ := newEnemyFixture(t, nil)
	enemy := h.add(types.KindHeavyEnemy, mgl64.Vec3{0, -9.99, 0})
	es.Track(enemy, types.KindHeavyEnemy, 0)

	es.Update(0, frameDt)
	if !h.IsAlive(enemy) {
		t.Fatal("enemy above the floor should survive")
	}

	h.move(enemy, mgl64.Vec3{0, -10.01, 0})
	es.Update(frameDt, frameDt)
	if h.IsAlive(enemy) {
		t.Error("enemy below the floor should be destroyed")
	}
	if es.Count() != 0 || es.Fallen() != 1 {
		t.Errorf("Count=%d Fallen=%d, want 0 and 1", es.Count(), es.Fallen())
	}
}

func TestEnemyForgottenWhenDestroyedElsewhere(t *testing.T) {
	h, _, es, _ := newEnemyFixture(t, nil)
	enemy := h.add(types.KindEnemy, mgl64.Vec3{1, 0.5, 0})
	es.Track(enemy, types.KindEnemy, 0)

	h.kill(enemy)
	es.Update(0, frameDt)

	if es.Count() != 0 {
		t.Errorf("Count = %d, want 0", es.Count())
	}
	if len(h.forcesOn(enemy)) != 0 {
		t.Error("dead enemy should not be steered")
	}
}

// TestBossSpawnsOncePerWindow 帧率抖动下每个间隔只召唤一次
func TestBossSpawnsOncePerWindow(t *testing.T) {
	h, _, es, spawner := newEnemyFixture(t, func(cfg *config.GameplayConfig) {
		cfg.Enemies.Boss.SpawnInterval = 2.0
		cfg.Enemies.Boss.FirstSpawnDelay = 2.0
		cfg.Enemies.Boss.MiniEnemyCount = 3
	})
	boss := h.add(types.KindBoss, mgl64.Vec3{5, 1.2, 0})
	es.Track(boss, types.KindBoss, 0)

	rng := rand.New(rand.NewSource(3))
	maxDt := 0.0
	for h.now < 30 {
		dt := 0.005 + rng.Float64()*0.1
		if dt > maxDt {
			maxDt = dt
		}
		h.step(dt)
		es.Update(h.now, dt)
	}

	if len(spawner.calls) < 10 {
		t.Fatalf("expected at least 10 spawns in 30s, got %d", len(spawner.calls))
	}
	for i := 1; i < len(spawner.calls); i++ {
		gap := spawner.calls[i] - spawner.calls[i-1]
		if gap < 2.0 {
			t.Errorf("spawn %d came %.3fs after the previous one (< interval)", i, gap)
		}
		if gap > 2.0+maxDt+1e-9 {
			t.Errorf("spawn %d came %.3fs after the previous one (window missed)", i, gap)
		}
	}
	if spawner.total != 3*len(spawner.calls) {
		t.Errorf("total minis = %d, want %d", spawner.total, 3*len(spawner.calls))
	}
}

// TestBossOverdueSpawnsOnce 长时间卡顿后只召唤一次
func TestBossOverdueSpawnsOnce(t *testing.T) {
	h, _, es, spawner := newEnemyFixture(t, func(cfg *config.GameplayConfig) {
		cfg.Enemies.Boss.SpawnInterval = 2.0
		cfg.Enemies.Boss.FirstSpawnDelay = 0
	})
	boss := h.add(types.KindBoss, mgl64.Vec3{5, 1.2, 0})
	es.Track(boss, types.KindBoss, 0)

	h.step(9)
	es.Update(h.now, 9)
	es.Update(h.now, 0)

	if len(spawner.calls) != 1 {
		t.Fatalf("overdue schedule spawned %d times, want 1", len(spawner.calls))
	}
	schedule, ok := es.Schedule(boss)
	if !ok || schedule.NextSpawnTime != 11 || schedule.TimesSpawned != 1 {
		t.Errorf("schedule = %+v, want NextSpawnTime 11 and 1 spawn", schedule)
	}
}

func TestRegularEnemyHasNoSchedule(t *testing.T) {
	h, _, es, spawner := newEnemyFixture(t, nil)
	enemy := h.add(types.KindEnemy, mgl64.Vec3{1, 0.5, 0})
	es.Track(enemy, types.KindEnemy, 0)

	for i := 0; i < 600; i++ {
		h.step(frameDt)
		es.Update(h.now, frameDt)
	}

	if len(spawner.calls) != 0 {
		t.Errorf("regular enemy should never spawn minis, got %d calls", len(spawner.calls))
	}
	if _, ok := es.Schedule(enemy); ok {
		t.Error("regular enemy should have no schedule")
	}
}

func TestBossesCountsTrackedBosses(t *testing.T) {
	h, _, es, _ := newEnemyFixture(t, nil)
	boss := h.add(types.KindBoss, mgl64.Vec3{3, 0.5, 0})
	enemy := h.add(types.KindEnemy, mgl64.Vec3{-3, 0.5, 0})
	es.Track(boss, types.KindBoss, 0)
	es.Track(enemy, types.KindEnemy, 0)

	if es.Count() != 2 || es.Bosses() != 1 {
		t.Fatalf("Count = %d, Bosses = %d, want 2 and 1", es.Count(), es.Bosses())
	}

	h.kill(boss)
	h.step(frameDt)
	es.Update(h.now, frameDt)
	if es.Bosses() != 0 {
		t.Errorf("Bosses = %d after the boss died, want 0", es.Bosses())
	}
	if es.Count() != 1 {
		t.Errorf("Count = %d, want 1", es.Count())
	}
}
