package components

import "github.com/decker502/sumo/pkg/types"

// PowerUpComponent 拾取物携带的能力类型
type PowerUpComponent struct {
	Kind types.PowerUpKind
}
