package factory

import (
	"log"

	"github.com/automoto/exorcist/archetypes"
	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy whose top-left corner is at (x, y). It
// returns nil for unknown types.
func CreateEnemy(ecs *ecs.ECS, x, y float64, enemyTypeName string) *donburi.Entry {
	enemyType, exists := cfg.Enemy.Types[enemyTypeName]
	if !exists {
		log.Printf("Warning: unknown enemy type %q", enemyTypeName)
		return nil
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	w, h := float64(enemyType.CollisionWidth), float64(enemyType.CollisionHeight)
	obj := resolv.NewObject(x, y, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	direction := cfg.DirectionLeft
	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:      enemyTypeName,
		TypeConfig:    &enemyType,
		Direction:     components.Vector{X: direction},
		TintColor:     enemyType.TintColor,
		SpawnImmunity: cfg.Enemy.SpawnImmunityFrames,
		ThrowCooldown: enemyType.ThrowCooldown,
		HopCooldown:   enemyType.HopCooldown,
		LastX:         x,
		LastY:         y,
	})

	initial := cfg.StatePatrol
	switch {
	case enemyType.Flying:
		initial = cfg.StateChase
	case enemyType.WanderRadius > 0:
		initial = cfg.StateWander
	}
	components.State.SetValue(enemy, components.StateData{
		CurrentState:  initial,
		PreviousState: cfg.StateNone,
	})

	gravity := enemyType.Gravity
	if enemyType.Flying {
		gravity = 0
	}
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:      gravity,
		Friction:     enemyType.Friction,
		MaxSpeed:     enemyType.MaxSpeed,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
		Flying:       enemyType.Flying,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.Flash.SetValue(enemy, components.FlashData{R: 1, G: 1, B: 1})

	addToSpace(ecs, obj)
	attachReality(ecs, enemy, obj, enemyType.Reality, memberEnemy)

	return enemy
}

// CreateEnemyCentered spawns an enemy centered on (x, y), used for
// death spawns.
func CreateEnemyCentered(ecs *ecs.ECS, x, y float64, enemyTypeName string) *donburi.Entry {
	enemyType, ok := cfg.Enemy.Types[enemyTypeName]
	if !ok {
		log.Printf("Warning: unknown enemy type %q", enemyTypeName)
		return nil
	}
	return CreateEnemy(ecs,
		x-float64(enemyType.CollisionWidth)/2,
		y-float64(enemyType.CollisionHeight)/2,
		enemyTypeName)
}
