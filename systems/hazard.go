package systems

import (
	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/systems/factory"
	"github.com/automoto/exorcist/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDamageAreas hurts the player on overlap, keeps each area inert
// for its interval after a hit and expires temporary areas.
func UpdateDamageAreas(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if ok && playerEntry.HasComponent(components.Death) {
		ok = false
	}

	var expired []*donburi.Entry
	var hits []*donburi.Entry

	tags.DamageArea.Each(ecs.World, func(e *donburi.Entry) {
		area := components.DamageArea.Get(e)

		if !area.Permanent() {
			area.Lifetime--
			if area.Lifetime <= 0 {
				expired = append(expired, e)
				return
			}
		}
		if area.Cooldown > 0 {
			area.Cooldown--
			return
		}
		if !ok || !components.RealityMember.Get(e).Tangible() {
			return
		}

		obj := components.Object.Get(e).Object
		if obj.Check(0, 0, tags.ResolvPlayer) == nil {
			return
		}
		area.Cooldown = area.Interval
		hits = append(hits, e)
	})

	for _, e := range hits {
		area := components.DamageArea.Get(e)
		areaObject := components.Object.Get(e)
		playerObject := components.Object.Get(playerEntry)
		QueueDamage(playerEntry, components.DamageEventData{
			Amount:     area.Damage,
			KnockbackX: knockbackDirection(areaObject.CenterX(), playerObject.CenterX()) * area.KnockbackForce,
			KnockbackY: cfg.Combat.KnockbackUpwardForce,
		})
	}
	for _, e := range expired {
		factory.Destroy(ecs.World, e)
	}
}
