package systems

import (
	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/systems/factory"
	"github.com/automoto/exorcist/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves enemy projectiles and resolves their hits. A
// projectile of an inactive reality keeps flying but passes through the
// player.
func UpdateProjectiles(ecs *ecs.ECS) {
	var spent []*donburi.Entry
	var hits []projectileHit

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		projectile := components.Projectile.Get(e)
		obj := components.Object.Get(e).Object
		member := components.RealityMember.Get(e)

		projectile.Lifetime--
		if projectile.Lifetime <= 0 {
			spent = append(spent, e)
			return
		}

		obj.X += projectile.SpeedX
		obj.Y += projectile.SpeedY
		obj.Update()

		if obj.Check(0, 0, enemySurfaces(member.Index).solids...) != nil {
			spent = append(spent, e)
			return
		}

		if !member.Tangible() {
			return
		}
		check := obj.Check(0, 0, tags.ResolvPlayer)
		if check == nil {
			return
		}
		for _, other := range check.Objects {
			target, ok := other.Data.(*donburi.Entry)
			if !ok || !target.Valid() || target.HasComponent(components.Death) {
				continue
			}
			hits = append(hits, projectileHit{target: target, projectile: *projectile})
			spent = append(spent, e)
			return
		}
	})

	for _, hit := range hits {
		dir := 1.0
		if hit.projectile.SpeedX < 0 {
			dir = -1
		}
		QueueDamage(hit.target, components.DamageEventData{
			Amount:     hit.projectile.Damage,
			KnockbackX: dir * hit.projectile.KnockbackForce,
			KnockbackY: cfg.Combat.KnockbackUpwardForce / 2,
		})
	}
	for _, e := range spent {
		factory.Destroy(ecs.World, e)
	}
}

type projectileHit struct {
	target     *donburi.Entry
	projectile components.ProjectileData
}
