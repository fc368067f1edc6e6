package systems

import (
	"math"

	"github.com/automoto/exorcist/components"
	"github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// burstGrowth is the fraction of the remaining distance a burst ring
// expands each frame.
const burstGrowth = 0.25

// UpdateEffects processes visual effect components (flash, squash/stretch,
// bursts, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateSquashStretchEffects(ecs)
	updateBursts(ecs)
	updateAutoDestroy(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// updateSquashStretchEffects lerps scale values toward target. The
// component stays attached and snaps once close enough.
func updateSquashStretchEffects(ecs *ecs.ECS) {
	const threshold = 0.01

	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)

		ss.ScaleX += (ss.TargetX - ss.ScaleX) * ss.LerpSpeed
		ss.ScaleY += (ss.TargetY - ss.ScaleY) * ss.LerpSpeed

		if math.Abs(ss.ScaleX-ss.TargetX) < threshold && math.Abs(ss.ScaleY-ss.TargetY) < threshold {
			ss.ScaleX = ss.TargetX
			ss.ScaleY = ss.TargetY
		}
	})
}

func updateBursts(ecs *ecs.ECS) {
	components.Burst.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Burst.Get(e)
		b.Radius += (b.MaxRadius - b.Radius) * burstGrowth
	})
}

// updateAutoDestroy removes entities whose frame countdown ran out
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.FramesRemaining--
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		factory.Destroy(ecs.World, e)
	}
}

// TriggerSquashStretch starts a squash/stretch effect on an entity
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	if !entry.HasComponent(components.SquashStretch) {
		entry.AddComponent(components.SquashStretch)
	}
	components.SquashStretch.SetValue(entry, components.SquashStretchData{
		ScaleX:    scaleX,
		ScaleY:    scaleY,
		TargetX:   1.0,
		TargetY:   1.0,
		LerpSpeed: config.SquashStretch.LerpSpeed,
	})
}

// burstAlpha returns the burst opacity for the frames it has left.
func burstAlpha(e *donburi.Entry) float64 {
	if !e.HasComponent(components.AutoDestroy) {
		return 1
	}
	remaining := components.AutoDestroy.Get(e).FramesRemaining
	return math.Min(1, float64(remaining)/10)
}
