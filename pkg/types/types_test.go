package types

import "testing"

func TestParsePowerUpKind(t *testing.T) {
	tests := []struct {
		input   string
		want    PowerUpKind
		wantErr bool
	}{
		{"none", PowerUpNone, false},
		{"PushBack", PowerUpPushBack, false},
		{"push_back", PowerUpPushBack, false},
		{" rocket ", PowerUpRocket, false},
		{"SMASH", PowerUpSmash, false},
		{"laser", PowerUpNone, true},
	}

	for _, tt := range tests {
		got, err := ParsePowerUpKind(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePowerUpKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePowerUpKind(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestActorKindTags(t *testing.T) {
	tests := []struct {
		kind ActorKind
		tag  Tag
	}{
		{KindPlayer, TagPlayer},
		{KindEnemy, TagEnemy},
		{KindHeavyEnemy, TagEnemy},
		{KindMiniEnemy, TagEnemy},
		{KindBoss, TagBoss},
		{KindPowerUpSmash, TagPowerUp},
		{KindRocket, TagProjectile},
		{KindFocalPoint, TagNone},
	}

	for _, tt := range tests {
		if got := tt.kind.Tag(); got != tt.tag {
			t.Errorf("%v.Tag() = %v, want %v", tt.kind, got, tt.tag)
		}
	}
}

func TestPowerUpActorKindRoundTrip(t *testing.T) {
	for _, kind := range []PowerUpKind{PowerUpPushBack, PowerUpRocket, PowerUpSmash} {
		actorKind, ok := PowerUpActorKind(kind)
		if !ok {
			t.Fatalf("PowerUpActorKind(%v) not found", kind)
		}
		if actorKind.PowerUp() != kind {
			t.Errorf("%v.PowerUp() = %v, want %v", actorKind, actorKind.PowerUp(), kind)
		}
	}

	if _, ok := PowerUpActorKind(PowerUpNone); ok {
		t.Error("PowerUpNone should not map to a pickup prefab")
	}
}

func TestParseActorKind(t *testing.T) {
	kind, err := ParseActorKind("miniEnemy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != KindMiniEnemy {
		t.Errorf("expected KindMiniEnemy, got %v", kind)
	}

	if _, err := ParseActorKind("dragon"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestTagIsHostile(t *testing.T) {
	if !TagEnemy.IsHostile() || !TagBoss.IsHostile() {
		t.Error("enemy and boss tags should be hostile")
	}
	if TagPlayer.IsHostile() || TagProjectile.IsHostile() {
		t.Error("player and projectile tags should not be hostile")
	}
}
