package factory

import (
	"github.com/automoto/exorcist/archetypes"
	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/leveling"
	"github.com/automoto/exorcist/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerStats returns the starting stats before any upgrade.
func PlayerStats() leveling.Stats {
	return leveling.Stats{
		MoveSpeed:           cfg.Player.MaxSpeed,
		MaxHealth:           cfg.Player.Health,
		Health:              cfg.Player.Health,
		MeleeCooldown:       cfg.Melee.Cooldown,
		MeleeDamage:         cfg.Melee.Damage,
		MeleeRange:          cfg.Melee.Range,
		MeleeKnockback:      cfg.Melee.KnockbackForce,
		StunFrames:          cfg.Melee.StunFrames,
		RangedCooldown:      cfg.Ranged.Cooldown,
		RangedDamage:        cfg.Ranged.Damage,
		ProjectileSpeed:     cfg.Ranged.Speed,
		Amount:              cfg.Ranged.Amount,
		ExplosionRadius:     cfg.Ranged.ExplosionRadius,
		ExplosionPercentage: cfg.Ranged.ExplosionPercentage,
	}
}

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x, y, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: cfg.DirectionRight},
		Stats:     PlayerStats(),
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:        cfg.Player.Gravity,
		Friction:       cfg.Player.Friction,
		AttackFriction: cfg.Player.AttackFriction,
		MaxSpeed:       cfg.Player.MaxSpeed,
		MaxFallSpeed:   cfg.Physics.MaxFallSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	// Permanently attached to avoid archetype thrashing
	components.Flash.SetValue(player, components.FlashData{R: 1, G: 1, B: 1})
	components.SquashStretch.SetValue(player, components.SquashStretchData{
		ScaleX: 1, ScaleY: 1,
		TargetX: 1, TargetY: 1,
		LerpSpeed: cfg.SquashStretch.LerpSpeed,
	})

	addToSpace(ecs, obj)
	return player
}
