package types

import (
	"fmt"
	"strings"
)

// ActorKind 定义可由宿主创建的实体预制类型
type ActorKind int

const (
	// KindUnknown 无效类型
	KindUnknown ActorKind = iota
	KindPlayer
	KindFocalPoint
	KindEnemy
	KindHeavyEnemy
	KindMiniEnemy
	KindBoss
	KindPowerUpPushBack
	KindPowerUpRocket
	KindPowerUpSmash
	KindRocket
)

var actorKindNames = map[ActorKind]string{
	KindPlayer:          "player",
	KindFocalPoint:      "focalPoint",
	KindEnemy:           "enemy",
	KindHeavyEnemy:      "heavyEnemy",
	KindMiniEnemy:       "miniEnemy",
	KindBoss:            "boss",
	KindPowerUpPushBack: "powerUpPushBack",
	KindPowerUpRocket:   "powerUpRocket",
	KindPowerUpSmash:    "powerUpSmash",
	KindRocket:          "rocket",
}

// String 返回预制类型名称（与配置文件 bodies/enemies 中的键一致）
func (k ActorKind) String() string {
	if name, ok := actorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ActorKind(%d)", int(k))
}

// ParseActorKind 解析预制类型名称（大小写不敏感）
func ParseActorKind(s string) (ActorKind, error) {
	for kind, name := range actorKindNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return kind, nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown actor kind %q", s)
}

// MarshalText 实现 encoding.TextMarshaler，用于 YAML map 键
func (k ActorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (k *ActorKind) UnmarshalText(text []byte) error {
	kind, err := ParseActorKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Tag 返回该预制类型的实体标签
func (k ActorKind) Tag() Tag {
	switch k {
	case KindPlayer:
		return TagPlayer
	case KindEnemy, KindHeavyEnemy, KindMiniEnemy:
		return TagEnemy
	case KindBoss:
		return TagBoss
	case KindPowerUpPushBack, KindPowerUpRocket, KindPowerUpSmash:
		return TagPowerUp
	case KindRocket:
		return TagProjectile
	default:
		return TagNone
	}
}

// PowerUp 返回拾取物预制对应的能力类型，非拾取物返回 PowerUpNone
func (k ActorKind) PowerUp() PowerUpKind {
	switch k {
	case KindPowerUpPushBack:
		return PowerUpPushBack
	case KindPowerUpRocket:
		return PowerUpRocket
	case KindPowerUpSmash:
		return PowerUpSmash
	default:
		return PowerUpNone
	}
}

// PowerUpActorKind 返回能力类型对应的拾取物预制
func PowerUpActorKind(k PowerUpKind) (ActorKind, bool) {
	switch k {
	case PowerUpPushBack:
		return KindPowerUpPushBack, true
	case PowerUpRocket:
		return KindPowerUpRocket, true
	case PowerUpSmash:
		return KindPowerUpSmash, true
	default:
		return KindUnknown, false
	}
}
