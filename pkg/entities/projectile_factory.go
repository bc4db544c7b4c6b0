package entities

import (
	"fmt"

	"github.com/decker502/sumo/pkg/config"
	"github.com/decker502/sumo/pkg/ecs"
	"github.com/decker502/sumo/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
)

// NewRocket 创建追踪火箭的宿主侧实体
// 火箭是运动学刚体：不受重力和碰撞响应影响，只按玩法核心设置的速度移动
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置
//   - position: 发射点世界坐标
//   - orientation: 初始朝向
//
// 返回:
//   - ecs.EntityID: 创建的火箭实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewRocket(em *ecs.EntityManager, cfg *config.GameplayConfig, position mgl64.Vec3, orientation mgl64.Quat) (ecs.EntityID, error) {
	entityID, err := newBody(em, cfg, types.KindRocket, position, orientation)
	if err != nil {
		return 0, fmt.Errorf("failed to create rocket: %w", err)
	}
	return entityID, nil
}
