package systems

import (
	"math"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/gamemath"
	"github.com/automoto/exorcist/systems/factory"
	"github.com/automoto/exorcist/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// QueueDamage schedules damage for the next combat update. Hits landing
// on the same frame add up; the latest knockback wins.
func QueueDamage(e *donburi.Entry, data components.DamageEventData) {
	if !e.Valid() {
		return
	}
	if !e.HasComponent(components.DamageEvent) {
		donburi.Add(e, components.DamageEvent, &data)
		return
	}
	event := components.DamageEvent.Get(e)
	event.Amount += data.Amount
	if data.KnockbackX != 0 || data.KnockbackY != 0 {
		event.KnockbackX = data.KnockbackX
		event.KnockbackY = data.KnockbackY
	}
	event.StunFrames = max(event.StunFrames, data.StunFrames)
}

// UpdateCombat applies queued damage events, keeps health values within
// their valid range and starts death sequences.
func UpdateCombat(ecs *ecs.ECS) {
	var events []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		events = append(events, e)
	}

	for _, e := range events {
		dmg := *components.DamageEvent.Get(e)
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
		if e.HasComponent(components.Death) {
			continue
		}

		switch {
		case e.HasComponent(components.Player):
			applyDamageToPlayer(ecs, e, dmg)
		case e.HasComponent(components.Enemy):
			applyDamageToEnemy(e, dmg)
		}
	}

	var dying []*donburi.Entry
	for e := range components.Health.Iter(ecs.World) {
		hp := components.Health.Get(e)
		hp.Current = max(0, min(hp.Current, hp.Max))
		if hp.Current == 0 && !e.HasComponent(components.Death) {
			dying = append(dying, e)
		}
	}

	for _, e := range dying {
		if e.HasComponent(components.Player) {
			PlaySFX(ecs, cfg.SoundDeath)
			startDeath(e, cfg.Player.DeathFrames, false)
			continue
		}
		if e.HasComponent(components.Enemy) {
			killEnemy(ecs, e, true)
		}
	}
}

func applyDamageToPlayer(ecs *ecs.ECS, e *donburi.Entry, dmg components.DamageEventData) {
	player := components.Player.Get(e)
	if player.InvulnFrames > 0 || dmg.Amount <= 0 {
		return
	}

	hp := components.Health.Get(e)
	hp.Current -= dmg.Amount
	player.InvulnFrames = cfg.Combat.PlayerInvulnFrames

	physics := components.Physics.Get(e)
	if dmg.KnockbackX != 0 || dmg.KnockbackY != 0 {
		physics.SpeedX = dmg.KnockbackX
		physics.SpeedY = dmg.KnockbackY
	}
	physics.WallSliding = nil

	components.State.Get(e).Set(cfg.Hit)

	// Reset melee attack state so a hit never leaves a swing hanging
	melee := components.MeleeAttack.Get(e)
	melee.IsAttacking = false
	melee.HasSpawnedHitbox = false

	TriggerDamageFlash(e)
	TriggerScreenShake(ecs, cfg.ScreenShake.PlayerDamageIntensity, cfg.ScreenShake.PlayerDamageDuration)
	PlaySFX(ecs, cfg.SoundPlayerHurt)

	if stats := runStats(ecs); stats != nil {
		stats.DamageTaken += dmg.Amount
	}
}

func applyDamageToEnemy(e *donburi.Entry, dmg components.DamageEventData) {
	enemy := components.Enemy.Get(e)
	hp := components.Health.Get(e)
	hp.Current -= dmg.Amount
	enemy.InvulnFrames = cfg.Combat.EnemyInvulnFrames

	if e.HasComponent(components.HealthBar) {
		components.HealthBar.Get(e).TimeToLive = cfg.Combat.HealthBarDuration
	} else {
		donburi.Add(e, components.HealthBar, &components.HealthBarData{
			TimeToLive: cfg.Combat.HealthBarDuration,
		})
	}

	physics := components.Physics.Get(e)
	if dmg.KnockbackX != 0 || dmg.KnockbackY != 0 {
		physics.SpeedX = dmg.KnockbackX
		if !physics.Flying {
			physics.SpeedY = dmg.KnockbackY
		}
	}

	if dmg.StunFrames > 0 {
		enemy.StunTimer = max(enemy.StunTimer, dmg.StunFrames)
		components.State.Get(e).Set(cfg.Stunned)
	}
}

// handleAttackInput starts the attack of the current reality: a melee
// strike in Living, a talisman fan in Spirit.
func handleAttackInput(ecs *ecs.ECS, playerEntry *donburi.Entry, in playerInput, player *components.PlayerData, state *components.StateData) {
	if !in.attack.JustPressed || state.CurrentState.IsAttack() {
		return
	}

	if CurrentRealityIndex(ecs) == cfg.RealitySpirit {
		if player.RangedCooldown > 0 {
			return
		}
		throwTalismans(ecs, playerEntry, talismanAim(player, in))
		player.RangedCooldown = player.Stats.RangedCooldown
		state.Set(cfg.AttackRanged)
		return
	}

	if player.MeleeCooldown > 0 {
		return
	}
	melee := components.MeleeAttack.Get(playerEntry)
	melee.IsAttacking = true
	melee.HasSpawnedHitbox = false
	player.MeleeCooldown = player.Stats.MeleeCooldown
	state.Set(cfg.AttackMelee)
	PlaySFX(ecs, cfg.SoundMelee)
}

// talismanAim returns the throw angle in radians. The throw follows the
// facing direction and tilts diagonally while up or down is held.
func talismanAim(player *components.PlayerData, in playerInput) float64 {
	return gamemath.AimAngle(player.Direction.X, in.up.Pressed, in.down.Pressed)
}

func throwTalismans(ecs *ecs.ECS, playerEntry *donburi.Entry, aim float64) {
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	stats := player.Stats

	for _, angle := range gamemath.FanAngles(aim, max(1, stats.Amount), cfg.Ranged.SpreadDegrees) {
		t := factory.AcquireTalisman(ecs, obj.CenterX(), obj.CenterY())
		talisman := components.Talisman.Get(t)
		talisman.SpeedX = math.Cos(angle) * stats.ProjectileSpeed
		talisman.SpeedY = math.Sin(angle) * stats.ProjectileSpeed
		talisman.Damage = stats.RangedDamage
		talisman.KnockbackForce = cfg.Ranged.KnockbackForce
		talisman.StunFrames = cfg.Ranged.StunFrames
		talisman.Lifetime = cfg.Ranged.Lifetime
		talisman.HitsRemaining = cfg.Ranged.MaxHits
		talisman.Explosive = stats.Explosive
		talisman.ExplosionRadius = stats.ExplosionRadius
		talisman.ExplosionPercentage = stats.ExplosionPercentage
	}
	PlaySFX(ecs, cfg.SoundTalisman)
}

// UpdateTalismans moves active talismans, applies their hits and returns
// spent ones to the pool.
func UpdateTalismans(ecs *ecs.ECS) {
	var spent []*donburi.Entry

	tags.Talisman.Each(ecs.World, func(t *donburi.Entry) {
		talisman := components.Talisman.Get(t)
		if !talisman.Active {
			return
		}
		obj := components.Object.Get(t).Object

		obj.X += talisman.SpeedX
		obj.Y += talisman.SpeedY
		obj.Update()

		talisman.Lifetime--
		if talisman.Lifetime <= 0 || obj.Check(0, 0, tags.ResolvSolid) != nil {
			spent = append(spent, t)
			return
		}

		check := obj.Check(0, 0, tags.ResolvEnemy)
		if check == nil {
			return
		}
		for _, other := range check.Objects {
			target, ok := other.Data.(*donburi.Entry)
			if !ok || !talismanCanHit(talisman, target) {
				continue
			}
			hitWithTalisman(ecs, t, talisman, target)
			talisman.HitsRemaining--
			if talisman.HitsRemaining <= 0 {
				spent = append(spent, t)
				return
			}
		}
	})

	for _, t := range spent {
		factory.ReleaseTalisman(ecs.World, t)
	}
}

func talismanCanHit(talisman *components.TalismanData, target *donburi.Entry) bool {
	if !target.Valid() || !target.HasComponent(components.Enemy) || target.HasComponent(components.Death) {
		return false
	}
	if _, hit := talisman.HitEnemies[target]; hit {
		return false
	}
	return components.Enemy.Get(target).Vulnerable()
}

func hitWithTalisman(ecs *ecs.ECS, t *donburi.Entry, talisman *components.TalismanData, target *donburi.Entry) {
	talisman.HitEnemies[target] = struct{}{}

	obj := components.Object.Get(t)
	dir := 1.0
	if talisman.SpeedX < 0 {
		dir = -1
	}

	PlaySFX(ecs, cfg.SoundHit)
	TriggerHitFlash(target)
	QueueDamage(target, components.DamageEventData{
		Amount:     talisman.Damage,
		KnockbackX: dir * talisman.KnockbackForce,
		KnockbackY: cfg.Combat.KnockbackUpwardForce / 2,
		StunFrames: talisman.StunFrames,
	})

	if !talisman.Explosive || talisman.ExplosionRadius <= 0 {
		return
	}
	explode(ecs, obj.CenterX(), obj.CenterY(), talisman, target)
}

// explode splashes a share of the talisman damage onto every other
// tangible enemy within the radius.
func explode(ecs *ecs.ECS, x, y float64, talisman *components.TalismanData, direct *donburi.Entry) {
	splash := int(math.Round(float64(talisman.Damage) * talisman.ExplosionPercentage))

	PlaySFX(ecs, cfg.SoundExplosion)
	TriggerScreenShake(ecs, cfg.ScreenShake.ExplosionIntensity, cfg.ScreenShake.ExplosionDuration)
	factory.SpawnBurst(ecs, x, y, talisman.ExplosionRadius, cfg.SpiritCyan, 12)

	if splash <= 0 {
		return
	}
	var caught []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e == direct || e.HasComponent(components.Death) {
			return
		}
		if !components.RealityMember.Get(e).Tangible() {
			return
		}
		obj := components.Object.Get(e)
		if gamemath.Distance(obj.CenterX(), obj.CenterY(), x, y) <= talisman.ExplosionRadius {
			caught = append(caught, e)
		}
	})

	for _, e := range caught {
		obj := components.Object.Get(e)
		QueueDamage(e, components.DamageEventData{
			Amount:     splash,
			KnockbackX: knockbackDirection(x, obj.CenterX()) * talisman.KnockbackForce,
		})
	}
}
