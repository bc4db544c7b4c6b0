// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import (
	"fmt"
	"strings"
)

// PowerUpKind 定义玩家能力（道具）的类型
// 任意时刻玩家只持有其中一种，PowerUpNone 表示没有能力
type PowerUpKind int

const (
	// PowerUpNone 无能力
	PowerUpNone PowerUpKind = iota
	// PowerUpPushBack 撞击击退：与敌人发生碰撞时把敌人弹开
	PowerUpPushBack
	// PowerUpRocket 追踪火箭：触发时向每个存活敌人各发射一枚火箭
	PowerUpRocket
	// PowerUpSmash 重砸：跳起、下砸，落地时产生爆炸冲击
	PowerUpSmash
)

// String 返回能力类型的字符串表示
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpNone:
		return "None"
	case PowerUpPushBack:
		return "PushBack"
	case PowerUpRocket:
		return "Rocket"
	case PowerUpSmash:
		return "Smash"
	default:
		return fmt.Sprintf("PowerUpKind(%d)", int(k))
	}
}

// ParsePowerUpKind 解析配置文件中的能力名称（大小写不敏感）
func ParsePowerUpKind(s string) (PowerUpKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return PowerUpNone, nil
	case "pushback", "push_back":
		return PowerUpPushBack, nil
	case "rocket":
		return PowerUpRocket, nil
	case "smash":
		return PowerUpSmash, nil
	default:
		return PowerUpNone, fmt.Errorf("unknown power-up kind %q", s)
	}
}

// MarshalText 实现 encoding.TextMarshaler，YAML 中以名称保存
func (k PowerUpKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (k *PowerUpKind) UnmarshalText(text []byte) error {
	kind, err := ParsePowerUpKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
