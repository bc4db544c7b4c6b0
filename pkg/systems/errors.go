package systems

import "errors"

var (
	// ErrMissingTarget 火箭发射时目标不存在
	ErrMissingTarget = errors.New("rocket target is missing")
	// ErrMissingActor 系统初始化时必需的实体不存在（玩家、镜头焦点）
	ErrMissingActor = errors.New("required actor is missing")
)
