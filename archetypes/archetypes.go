package archetypes

import (
	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	MovingPlatform = newArchetype(
		tags.Platform,
		tags.MovingPlatform,
		components.Object,
		components.MovingPlatform,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Physics,
		components.State,
		components.MeleeAttack,
		components.Flash,
		components.SquashStretch,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Physics,
		components.State,
		components.Flash,
		components.RealityMember,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Hitbox,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	DeadZone = newArchetype(
		tags.DeadZone,
		components.Object,
	)
	Talisman = newArchetype(
		tags.Talisman,
		components.Talisman,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
		components.RealityMember,
	)
	DamageArea = newArchetype(
		tags.DamageArea,
		components.DamageArea,
		components.Object,
		components.RealityMember,
	)
	Orb = newArchetype(
		tags.Orb,
		components.Orb,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Burst = newArchetype(
		components.Burst,
		components.AutoDestroy,
	)
	Game = newArchetype(
		components.RealityState,
		components.Progress,
		components.Wave,
		components.RunStats,
		components.HUD,
		components.Announcement,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
