package systems

import (
	"math"

	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/gamemath"
	"github.com/automoto/exorcist/systems/factory"
	"github.com/automoto/exorcist/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOrbs drops, attracts, collects and merges experience orbs. Only
// orbs of the active reality react to the player.
func UpdateOrbs(ecs *ecs.ECS) {
	mgr := realityManager(ecs)

	var playerObject *resolv.Object
	if entry, ok := tags.Player.First(ecs.World); ok && !entry.HasComponent(components.Death) {
		playerObject = components.Object.Get(entry).Object
	}

	var collected []*donburi.Entry
	tags.Orb.Each(ecs.World, func(e *donburi.Entry) {
		orb := components.Orb.Get(e)
		if !orb.Active {
			return
		}
		obj := components.Object.Get(e)

		orb.Attracted = false
		if playerObject != nil && (mgr == nil || mgr.IsActive(orb.Reality)) {
			px, py := playerObject.X+playerObject.W/2, playerObject.Y+playerObject.H/2
			dist := gamemath.Distance(obj.CenterX(), obj.CenterY(), px, py)

			if dist <= cfg.Orb.CollectRange {
				collected = append(collected, e)
				return
			}
			if dist <= cfg.Orb.AttractRange {
				orb.Attracted = true
				orb.SpeedX, orb.SpeedY = gamemath.Homing(obj.CenterX(), obj.CenterY(), px, py, cfg.Orb.AttractSpeed)
				obj.X += orb.SpeedX
				obj.Y += orb.SpeedY
				obj.Update()
				return
			}
		}

		dropOrb(orb, obj.Object)
	})

	for _, e := range collected {
		collectOrb(ecs, e)
	}

	mergeOrbs(ecs)
}

// dropOrb lets a free orb fall onto the floors of its reality.
func dropOrb(orb *components.OrbData, obj *resolv.Object) {
	surfaces := enemySurfaces(orb.Reality)

	orb.SpeedX *= 0.9
	if math.Abs(orb.SpeedX) < 0.05 {
		orb.SpeedX = 0
	}
	if orb.SpeedX != 0 && obj.Check(orb.SpeedX, 0, surfaces.solids...) == nil {
		obj.X += orb.SpeedX
	} else {
		orb.SpeedX = 0
	}

	orb.SpeedY = min(orb.SpeedY+cfg.Orb.Gravity, cfg.Orb.MaxFallSpeed)
	dy := orb.SpeedY
	if dy > 0 {
		if check := obj.Check(0, dy, surfaces.floors...); check != nil {
			for _, floor := range check.Objects {
				if floor.Y < obj.Bottom()-cfg.Physics.PlatformDropThreshold {
					continue
				}
				dy = floor.Y - obj.Bottom()
				orb.SpeedY = 0
				break
			}
		}
	}
	obj.Y += dy
	obj.Update()
}

func collectOrb(ecs *ecs.ECS, e *donburi.Entry) {
	orb := components.Orb.Get(e)
	value, index := orb.Value, orb.Reality
	factory.ReleaseOrb(ecs.World, e)

	PlaySFX(ecs, cfg.SoundOrbCollect)
	GrantXP(ecs, index, value)
}

// mergeOrbs folds nearby orbs of the same reality into one every merge
// interval.
func mergeOrbs(ecs *ecs.ECS) {
	poolEntry, ok := components.OrbPool.First(ecs.World)
	if !ok {
		return
	}
	pool := components.OrbPool.Get(poolEntry)
	pool.MergeTimer--
	if pool.MergeTimer > 0 {
		return
	}
	pool.MergeTimer = cfg.Orb.MergeInterval

	var active []*donburi.Entry
	tags.Orb.Each(ecs.World, func(e *donburi.Entry) {
		if components.Orb.Get(e).Active {
			active = append(active, e)
		}
	})

	for _, e := range mergeOrbGroups(active, cfg.Orb.MergeRange) {
		factory.ReleaseOrb(ecs.World, e)
	}
}

// mergeOrbGroups adds the value of each absorbed orb to the orb that
// absorbed it and returns the absorbed orbs.
func mergeOrbGroups(orbs []*donburi.Entry, mergeRange float64) []*donburi.Entry {
	absorbed := make(map[*donburi.Entry]bool)
	var merged []*donburi.Entry

	for i, a := range orbs {
		if absorbed[a] {
			continue
		}
		orbA := components.Orb.Get(a)
		objA := components.Object.Get(a)
		for _, b := range orbs[i+1:] {
			if absorbed[b] {
				continue
			}
			orbB := components.Orb.Get(b)
			if orbB.Reality != orbA.Reality {
				continue
			}
			objB := components.Object.Get(b)
			if gamemath.Distance(objA.CenterX(), objA.CenterY(), objB.CenterX(), objB.CenterY()) > mergeRange {
				continue
			}
			orbA.Value += orbB.Value
			absorbed[b] = true
			merged = append(merged, b)
		}
	}
	return merged
}
