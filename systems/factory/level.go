package factory

import (
	"github.com/automoto/exorcist/archetypes"
	"github.com/automoto/exorcist/assets"
	"github.com/automoto/exorcist/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	levels := assets.NewLevelLoader().MustLoadLevels()
	return CreateLevelFrom(ecs, levels, levelIndex)
}

// CreateLevelFrom stores an already loaded level list.
func CreateLevelFrom(ecs *ecs.ECS, levels []assets.Level, levelIndex int) *donburi.Entry {
	if len(levels) == 0 {
		panic("No levels found in assets/levels directory")
	}
	level := archetypes.Level.Spawn(ecs)

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: &levels[levelIndex],
	})

	return level
}

// BuildLevel creates the collision geometry, hazards and moving platforms
// of the current level.
func BuildLevel(ecs *ecs.ECS, level *assets.Level) {
	for _, s := range level.Solids {
		CreateWall(ecs, s.X, s.Y, s.Width, s.Height, s.Reality)
	}
	for _, p := range level.Platforms {
		CreatePlatform(ecs, p.X, p.Y, p.Width, p.Height, p.Reality)
	}
	for _, mp := range level.MovingPlatforms {
		CreateMovingPlatform(ecs, mp)
	}
	for _, h := range level.Hazards {
		CreateHazard(ecs, h)
	}
	for _, dz := range level.DeadZones {
		CreateDeadZone(ecs, dz.X, dz.Y, dz.Width, dz.Height)
	}
}
