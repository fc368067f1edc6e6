package systems

import (
	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/systems/factory"
	"github.com/automoto/exorcist/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovingPlatforms advances every platform along its leg and carries
// whatever stands on it. Platforms of an inactive reality hold still.
func UpdateMovingPlatforms(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		components.Physics.Get(e).Carried = components.Vector{}
	})

	tags.MovingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.RealityMember) {
			member := components.RealityMember.Get(e)
			if member.Object != nil && !member.Object.Active() {
				return
			}
		}

		platform := components.MovingPlatform.Get(e)
		obj := components.Object.Get(e).Object

		dx, dy := stepMovingPlatform(platform, obj.X, obj.Y)
		if dx == 0 && dy == 0 {
			return
		}
		carryRiders(ecs, obj, dx, dy)
		obj.X += dx
		obj.Y += dy
		obj.Update()
	})
}

// stepMovingPlatform advances the platform one frame and returns how far
// it moved from (x, y).
func stepMovingPlatform(p *components.MovingPlatformData, x, y float64) (dx, dy float64) {
	if p.WaitTimer > 0 {
		p.WaitTimer--
		return 0, 0
	}
	if p.Leg == nil {
		p.Leg = factory.NewPlatformLeg(p)
	}

	value, finished := p.Leg.Update(1)
	p.Progress = float64(value)

	nx := p.Start.X + (p.End.X-p.Start.X)*p.Progress
	ny := p.Start.Y + (p.End.Y-p.Start.Y)*p.Progress

	if finished {
		p.Forward = !p.Forward
		p.Leg = factory.NewPlatformLeg(p)
		p.WaitTimer = cfg.Platform.WaitFrames
	}
	return nx - x, ny - y
}

// carryRiders moves every character standing on platform along with it.
func carryRiders(ecs *ecs.ECS, platform *resolv.Object, dx, dy float64) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.OnGround != platform {
			return
		}
		obj := components.Object.Get(e).Object
		obj.X += dx
		obj.Y += dy
		obj.Update()
		physics.Carried = components.Vector{X: dx, Y: dy}
	})
}
