package game

import (
	"fmt"
	"log"
)

// SceneFactory 场景工厂函数类型
// 用于创建指定ID的关卡场景，避免循环依赖
type SceneFactory func(levelID string) (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update method is called at any given time.
type SceneManager struct {
	currentScene Scene
	currentLevel string
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景
	restarts     int
}

// NewSceneManager creates and returns a new SceneManager instance.
func NewSceneManager(factory SceneFactory) *SceneManager {
	return &SceneManager{
		sceneFactory: factory,
	}
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Restarts 返回场景因结束而被重新加载的次数
func (sm *SceneManager) Restarts() int {
	return sm.restarts
}

// LoadLevel 加载指定ID的关卡场景
func (sm *SceneManager) LoadLevel(levelID string) error {
	log.Printf("[SceneManager] 加载关卡: %s", levelID)

	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory is not set")
	}

	scene, err := sm.sceneFactory(levelID)
	if err != nil {
		return fmt.Errorf("failed to load level %q: %w", levelID, err)
	}

	sm.currentScene = scene
	sm.currentLevel = levelID
	return nil
}

// Update 推进当前场景；场景结束时重新加载同一关卡
func (sm *SceneManager) Update(deltaTime float64) error {
	if sm.currentScene == nil {
		return nil
	}

	sm.currentScene.Update(deltaTime)

	if f, ok := sm.currentScene.(Finishable); ok && f.IsFinished() {
		sm.restarts++
		return sm.LoadLevel(sm.currentLevel)
	}
	return nil
}
