package systems

import (
	"image/color"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/reality"
	"github.com/automoto/exorcist/systems/factory"
	"github.com/automoto/exorcist/tags"
	"github.com/yohamta/donburi/ecs"
)

// frameSeconds is the fade step per tick.
const frameSeconds = 1.0 / 60.0

func realityManager(ecs *ecs.ECS) *reality.Manager {
	return factory.Manager(ecs.World)
}

// InstallRealityHooks wires the switch sound and the switch counter. It is
// called after the manager is initialized so the start reality is not
// counted.
func InstallRealityHooks(ecs *ecs.ECS) {
	mgr := realityManager(ecs)
	if mgr == nil {
		return
	}
	mgr.OnSwitch = func(index int) {
		PlaySFX(ecs, cfg.SoundRealitySwitch)
		if stats := runStats(ecs); stats != nil {
			stats.Switches++
		}
		if playerEntry, ok := tags.Player.First(ecs.World); ok {
			obj := components.Object.Get(playerEntry)
			factory.SpawnBurst(ecs, obj.CenterX(), obj.CenterY(), 40, realityColor(index), 18)
		}
	}
}

// UpdateReality advances the fades and switches reality on input.
func UpdateReality(ecs *ecs.ECS) {
	mgr := realityManager(ecs)
	if mgr == nil {
		return
	}
	mgr.Update(frameSeconds)

	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	if !GetAction(components.Input.Get(inputEntry), cfg.ActionSwitchReality).JustPressed {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}
	mgr.SwitchToNext()
}

// CurrentRealityIndex returns the active reality, or the configured start
// when no manager exists.
func CurrentRealityIndex(ecs *ecs.ECS) int {
	if mgr := realityManager(ecs); mgr != nil && mgr.Current >= 0 {
		return mgr.Current
	}
	return cfg.Reality.Start
}

func runStats(ecs *ecs.ECS) *components.RunStatsData {
	entry, ok := components.RunStats.First(ecs.World)
	if !ok {
		return nil
	}
	return components.RunStats.Get(entry)
}

// realityColor is the tint of reality index, white for shared.
func realityColor(index int) color.RGBA {
	if index < 0 || index >= len(cfg.Reality.Colors) {
		return cfg.White
	}
	return cfg.Reality.Colors[index]
}
