package systems

import (
	"image/color"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/systems/factory"
	"github.com/automoto/exorcist/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombatHitboxes spawns the melee hitbox of an attacking player,
// moves live hitboxes with their owner and applies their hits.
func UpdateCombatHitboxes(ecs *ecs.ECS) {
	createPlayerHitboxes(ecs)
	updateHitboxes(ecs)
	cleanupHitboxes(ecs)
}

func createPlayerHitboxes(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		state := components.State.Get(playerEntry)
		if state.CurrentState != cfg.AttackMelee {
			return
		}
		melee := components.MeleeAttack.Get(playerEntry)
		if melee.HasSpawnedHitbox {
			return
		}
		melee.ActiveHitbox = factory.CreateMeleeHitbox(ecs, playerEntry)
		melee.HasSpawnedHitbox = true
	})
}

func updateHitboxes(ecs *ecs.ECS) {
	tags.Hitbox.Each(ecs.World, func(hitboxEntry *donburi.Entry) {
		hitbox := components.Hitbox.Get(hitboxEntry)
		hitboxObject := components.Object.Get(hitboxEntry).Object

		updateHitboxPosition(hitbox, hitboxObject)
		checkHitboxCollisions(ecs, hitbox, hitboxObject)

		hitbox.LifeTime--
	})
}

// updateHitboxPosition keeps the hitbox in front of its owner.
func updateHitboxPosition(hitbox *components.HitboxData, hitboxObject *resolv.Object) {
	owner := hitbox.OwnerEntity
	if owner == nil || !owner.Valid() || !owner.HasComponent(components.Player) {
		return
	}

	ownerObject := components.Object.Get(owner).Object
	if components.Player.Get(owner).Direction.X > 0 {
		hitboxObject.X = ownerObject.X + ownerObject.W
	} else {
		hitboxObject.X = ownerObject.X - hitboxObject.W
	}
	hitboxObject.Y = ownerObject.Y + (ownerObject.H-hitboxObject.H)/2
}

func checkHitboxCollisions(ecs *ecs.ECS, hitbox *components.HitboxData, hitboxObject *resolv.Object) {
	check := hitboxObject.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return
	}
	for _, obj := range check.Objects {
		target, ok := obj.Data.(*donburi.Entry)
		if !ok || !shouldHitTarget(hitbox, target) {
			continue
		}
		applyHitToEnemy(ecs, target, hitbox)
	}
}

func shouldHitTarget(hitbox *components.HitboxData, target *donburi.Entry) bool {
	if hitbox.OwnerEntity == target || hitbox.HitEntities[target] {
		return false
	}
	if !target.Valid() || !target.HasComponent(components.Enemy) || target.HasComponent(components.Death) {
		return false
	}
	return components.Enemy.Get(target).Vulnerable()
}

func applyHitToEnemy(ecs *ecs.ECS, enemyEntry *donburi.Entry, hitbox *components.HitboxData) {
	hitbox.HitEntities[enemyEntry] = true

	enemyObject := components.Object.Get(enemyEntry)
	PlaySFX(ecs, cfg.SoundHit)
	TriggerHitFlash(enemyEntry)
	TriggerScreenShake(ecs, cfg.ScreenShake.MeleeIntensity, cfg.ScreenShake.MeleeDuration)
	factory.SpawnBurst(ecs, enemyObject.CenterX(), enemyObject.CenterY(), 10, cfg.LivingAmber, 8)

	ownerObject := components.Object.Get(hitbox.OwnerEntity)
	QueueDamage(enemyEntry, components.DamageEventData{
		Amount:     hitbox.Damage,
		KnockbackX: knockbackDirection(ownerObject.CenterX(), enemyObject.CenterX()) * hitbox.KnockbackForce,
		KnockbackY: cfg.Combat.KnockbackUpwardForce,
		StunFrames: hitbox.StunFrames,
	})
}

// knockbackDirection pushes the target away from the source.
func knockbackDirection(sourceX, targetX float64) float64 {
	if targetX < sourceX {
		return -1
	}
	return 1
}

func cleanupHitboxes(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	tags.Hitbox.Each(ecs.World, func(hitboxEntry *donburi.Entry) {
		hitbox := components.Hitbox.Get(hitboxEntry)
		if hitbox.LifeTime > 0 {
			return
		}
		toRemove = append(toRemove, hitboxEntry)

		owner := hitbox.OwnerEntity
		if owner != nil && owner.Valid() && owner.HasComponent(components.MeleeAttack) {
			melee := components.MeleeAttack.Get(owner)
			if melee.ActiveHitbox == hitboxEntry {
				melee.ActiveHitbox = nil
			}
		}
	})

	for _, hitboxEntry := range toRemove {
		factory.Destroy(ecs.World, hitboxEntry)
	}
}

// DrawHitboxes outlines melee hitboxes when debug boxes are enabled.
func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawBoxes {
		return
	}
	camera, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	hitboxColor := color.RGBA{255, 255, 0, 100}
	tags.Hitbox.Each(ecs.World, func(hitboxEntry *donburi.Entry) {
		o := components.Object.Get(hitboxEntry).Object
		x, y := camera.toScreen(o.X, o.Y)
		vector.FillRect(screen, float32(x), float32(y), float32(o.W), float32(o.H), hitboxColor, false)
	})
}
