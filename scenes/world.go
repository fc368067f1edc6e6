package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/components"
	"github.com/automoto/exorcist/systems"
	"github.com/automoto/exorcist/systems/factory"
	"github.com/automoto/exorcist/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene is one run: a level, the player and the wave spawner.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelIndex   int
	once         sync.Once
}

// NewWorldScene creates a run on the first level
func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

// NewWorldSceneAt creates a run on the level at index
func NewWorldSceneAt(sc SceneChanger, levelIndex int) *WorldScene {
	return &WorldScene{sceneChanger: sc, levelIndex: levelIndex}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if result, done := systems.RunResult(ws.ecs); done {
		systems.SaveRun(systems.NewRunRecord(&result))
		ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, result))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())
	levelUp := ui.NewLevelUpUI()

	// Audio system (runs first, even when paused for menu sounds)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateTuning)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateLeveling))
	ecs.AddSystem(systems.WithPauseCheck(levelUp.Update))

	// Game systems wrapped with pause, level-up and run end checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateReality))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateMovingPlatforms))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombatHitboxes))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateTalismans))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDamageAreas))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateOrbs))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateWaves))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHealthBars))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAnnouncement))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHUD))

	// Systems that run even when paused
	ecs.AddSystem(systems.UpdateSettingsMenu)
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawEntities)
	ecs.AddRenderer(cfg.Default, systems.DrawHealthBars)
	ecs.AddRenderer(cfg.Default, systems.DrawHitboxes)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawAnnouncement)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, levelUp.Draw)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)
	ecs.AddRenderer(cfg.Default, systems.DrawSettingsMenu)

	ws.ecs = ecs

	// Create the level entity and load level data FIRST.
	level := factory.CreateLevelAtIndex(ws.ecs, ws.levelIndex)
	levelData := components.Level.Get(level).CurrentLevel

	// Now create the space for collision detection using the level's dimensions.
	factory.CreateSpace(ws.ecs, levelData.Width, levelData.Height, 16, 16)

	// The manager must exist before any reality member is created
	factory.CreateGame(ws.ecs, systems.LoadTuning())
	factory.CreateCamera(ws.ecs)
	factory.CreateTalismanPool(ws.ecs, cfg.Ranged.PoolSize)
	factory.CreateOrbPool(ws.ecs, cfg.Orb.PoolSize)

	factory.BuildLevel(ws.ecs, levelData)

	if len(levelData.PlayerSpawns) == 0 {
		panic("no player spawn points defined in level " + levelData.Name)
	}
	spawn := levelData.PlayerSpawns[0]
	factory.CreatePlayer(ws.ecs, spawn.X, spawn.Y)

	systems.InstallRealityHooks(ws.ecs)

	// Snap camera to the player's start position to prevent panning from (0,0)
	systems.SnapCamera(ws.ecs)

	systems.PlayMusic(ws.ecs)
}
