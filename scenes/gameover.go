package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene shows how the run ended
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	result       components.GameOverData
	once         sync.Once
}

// NewGameOverScene creates a game over scene for a finished run
func NewGameOverScene(sc SceneChanger, result components.GameOverData) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, result: result}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	// Scene factories
	createWorldScene := func() interface{} {
		return NewWorldSceneAt(gs.sceneChanger, gs.result.LevelIndex)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger)
	}

	gameOver := systems.GetOrCreateGameOver(gs.ecs)
	selected := gameOver.SelectedOption
	*gameOver = gs.result
	gameOver.SelectedOption = selected

	// Audio system
	gs.ecs.AddSystem(systems.UpdateAudio)

	// Minimal systems for game over
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createWorldScene, createMenuScene))

	// Renderer
	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	systems.PlayMusic(gs.ecs)
}
