package scenes

import (
	"github.com/decker502/sumo/pkg/game"
)

// Scene is a type alias for game.Scene to maintain backward compatibility.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// ArenaLevelID 竞技场关卡的ID（SceneManager 按此重新加载）
const ArenaLevelID = "arena"
