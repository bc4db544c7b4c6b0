package components

import "github.com/decker502/sumo/pkg/types"

// TagComponent 实体分类标签与创建时使用的预制类型
type TagComponent struct {
	Tag  types.Tag
	Kind types.ActorKind
}
