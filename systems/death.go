package systems

import (
	"math/rand"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/systems/factory"
	"github.com/automoto/exorcist/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateDeaths(ecs *ecs.ECS) {
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer--
		if death.Timer > 0 {
			return
		}

		if e.HasComponent(tags.Player) {
			handlePlayerDeath(ecs)
			return
		}
		factory.Destroy(ecs.World, e)
	})
}

// handlePlayerDeath ends the run. The player entry stays in the world so
// the camera keeps its position until the scene changes.
func handlePlayerDeath(ecs *ecs.ECS) {
	endRun(ecs)
}

// startDeath begins the death sequence of e.
func startDeath(e *donburi.Entry, frames int, deathZone bool) {
	if e.HasComponent(components.Death) {
		return
	}
	donburi.Add(e, components.Death, &components.DeathData{
		Timer:       frames,
		IsDeathZone: deathZone,
	})

	if e.HasComponent(components.State) {
		components.State.Get(e).Set(cfg.Die)
	}
	if e.HasComponent(components.Physics) {
		physics := components.Physics.Get(e)
		physics.SpeedX = 0
		physics.SpeedY = 0
	}
	if e.HasComponent(components.MeleeAttack) {
		melee := components.MeleeAttack.Get(e)
		melee.IsAttacking = false
		melee.HasSpawnedHitbox = false
	}
}

// killEnemy counts the kill and starts the death sequence. Enemies
// killed by the player drop an experience orb of their reality and
// spawn their SpawnOnDeath type.
func killEnemy(ecs *ecs.ECS, e *donburi.Entry, loot bool) {
	if !e.Valid() || e.HasComponent(components.Death) {
		return
	}
	components.Health.Get(e).Current = 0
	startDeath(e, cfg.Enemy.DeathFrames, !loot)

	if stats := runStats(ecs); stats != nil {
		stats.Kills++
	}
	if !loot {
		return
	}

	enemy := components.Enemy.Get(e)
	obj := components.Object.Get(e)
	cx, cy := obj.CenterX(), obj.CenterY()

	realityIndex := enemy.TypeConfig.Reality
	if e.HasComponent(components.RealityMember) {
		realityIndex = components.RealityMember.Get(e).Index
	}

	scatter := cfg.Orb.ScatterSpeed
	factory.SpawnOrb(ecs, cx, cy, cfg.Orb.Value, realityIndex,
		(rand.Float64()*2-1)*scatter, -scatter*2)

	if next := enemy.TypeConfig.SpawnOnDeath; next != "" {
		factory.CreateEnemyCentered(ecs, cx, cy, next)
	}

	factory.SpawnBurst(ecs, cx, cy, obj.W*1.5, realityColor(realityIndex), cfg.Enemy.DeathFrames)
	PlaySFX(ecs, cfg.SoundDeath)
}
