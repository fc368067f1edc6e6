package systems

import (
	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		// Dying entities freeze in place during the death delay
		if e.HasComponent(components.Death) {
			return
		}
		if frozen(e) {
			return
		}

		physics := components.Physics.Get(e)

		friction := physics.Friction
		if e.HasComponent(components.MeleeAttack) {
			if melee := components.MeleeAttack.Get(e); melee.IsAttacking {
				friction = physics.AttackFriction
			}
		}
		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, friction)
		physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, physics.MaxSpeed)

		if physics.Flying {
			return
		}

		physics.SpeedY += physics.Gravity
		if physics.MaxFallSpeed > 0 && physics.SpeedY > physics.MaxFallSpeed {
			physics.SpeedY = physics.MaxFallSpeed
		}
		if physics.WallSliding != nil && physics.SpeedY > cfg.Physics.WallSlideSpeed {
			physics.SpeedY = cfg.Physics.WallSlideSpeed
		}
	})
}

// frozen reports whether e belongs to an inactive reality that stops its
// behaviour.
func frozen(e *donburi.Entry) bool {
	if !e.HasComponent(components.RealityMember) {
		return false
	}
	member := components.RealityMember.Get(e)
	return member.Object != nil && member.Object.Frozen()
}
