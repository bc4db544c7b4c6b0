package game

import "testing"

func TestGameStateWaves(t *testing.T) {
	gs := NewGameState()

	if got := gs.NextWave(false); got != 1 {
		t.Errorf("first wave = %d, want 1", got)
	}
	gs.NextWave(false)
	gs.NextWave(false)
	if got := gs.NextWave(true); got != 4 {
		t.Errorf("fourth wave = %d, want 4", got)
	}
	if gs.BossWaves != 1 {
		t.Errorf("BossWaves = %d, want 1", gs.BossWaves)
	}
}

func TestGameStateMarkGameOverOnce(t *testing.T) {
	gs := NewGameState()

	gs.MarkGameOver(12.5)
	gs.MarkGameOver(20)

	if !gs.GameOver {
		t.Fatal("GameOver should be set")
	}
	if gs.GameOverAt != 12.5 {
		t.Errorf("GameOverAt = %v, want the first call's time 12.5", gs.GameOverAt)
	}
}
