package factory

import (
	"github.com/automoto/exorcist/archetypes"
	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/leveling"
	"github.com/automoto/exorcist/reality"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewRealityManager builds the Spirit and Living realities from config.
func NewRealityManager() *reality.Manager {
	realities := make([]*reality.Reality, len(cfg.Reality.Names))
	for i, name := range cfg.Reality.Names {
		realities[i] = reality.New(name, cfg.Reality.Colors[i])
	}
	return reality.NewManager(cfg.Reality.Start, cfg.Reality.InactiveOpacity, cfg.Reality.TransitionSpeed, realities...)
}

// CreateGame creates the run singleton: the reality manager (already
// initialized so later members snap to the current state), both
// experience tracks, the wave spawner and the run stats.
func CreateGame(ecs *ecs.ECS, catalog []leveling.Upgrade) *donburi.Entry {
	game := archetypes.Game.Spawn(ecs)

	mgr := NewRealityManager()
	mgr.Init()
	components.RealityState.SetValue(game, components.RealityStateData{Manager: mgr})

	if len(catalog) == 0 {
		catalog = leveling.DefaultCatalog()
	}
	components.Progress.SetValue(game, components.ProgressData{
		Tracks: [2]leveling.Track{
			leveling.NewTrack(cfg.Leveling.StartToNext),
			leveling.NewTrack(cfg.Leveling.StartToNext),
		},
		Owned:   leveling.Owned{},
		Catalog: catalog,
	})
	components.Wave.SetValue(game, components.WaveData{})
	components.HUD.SetValue(game, components.HUDData{})

	return game
}
