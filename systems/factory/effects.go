package factory

import (
	"image/color"

	"github.com/automoto/exorcist/archetypes"
	"github.com/automoto/exorcist/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnBurst creates an expanding ring that fades over frames.
func SpawnBurst(ecs *ecs.ECS, x, y, maxRadius float64, c color.RGBA, frames int) *donburi.Entry {
	burst := archetypes.Burst.Spawn(ecs)
	components.Burst.SetValue(burst, components.BurstData{
		X:         x,
		Y:         y,
		MaxRadius: maxRadius,
		Color:     [4]uint8{c.R, c.G, c.B, c.A},
	})
	components.AutoDestroy.SetValue(burst, components.AutoDestroyData{FramesRemaining: frames})
	return burst
}
