package factory

import (
	"math"

	"github.com/automoto/exorcist/archetypes"
	"github.com/automoto/exorcist/assets"
	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform creates a one-way platform.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64, realityIndex int) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	obj := newPlatformObject(x, y, w, h, realityIndex)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	attachReality(ecs, platform, obj, realityIndex, memberStatic)

	return platform
}

func newPlatformObject(x, y, w, h float64, realityIndex int) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	if realityIndex >= 0 {
		obj.AddTags(tags.RealityPlatform(realityIndex))
	}
	return obj
}

// CreateMovingPlatform creates a platform that travels to its end point
// and back, waiting at each end.
func CreateMovingPlatform(ecs *ecs.ECS, mp assets.MovingPlatform) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(ecs)
	obj := newPlatformObject(mp.X, mp.Y, mp.Width, mp.Height, mp.Reality)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	data := components.MovingPlatformData{
		Start:     components.Vector{X: mp.X, Y: mp.Y},
		End:       components.Vector{X: mp.X + mp.DX, Y: mp.Y + mp.DY},
		Forward:   true,
		WaitTimer: cfg.Platform.WaitFrames,
	}
	data.Leg = NewPlatformLeg(&data)
	components.MovingPlatform.SetValue(platform, data)

	addToSpace(ecs, obj)
	attachReality(ecs, platform, obj, mp.Reality, memberActive)

	return platform
}

// NewPlatformLeg builds the tween for the platform's current direction.
// Progress runs 0 to 1 forward and 1 to 0 back, taking one frame per
// Platform.Speed pixels travelled.
func NewPlatformLeg(p *components.MovingPlatformData) *gween.Tween {
	dist := math.Hypot(p.End.X-p.Start.X, p.End.Y-p.Start.Y)
	frames := float32(1)
	if cfg.Platform.Speed > 0 && dist > 0 {
		frames = float32(math.Max(1, dist/cfg.Platform.Speed))
	}
	if p.Forward {
		return gween.New(0, 1, frames, ease.InOutSine)
	}
	return gween.New(1, 0, frames, ease.InOutSine)
}
