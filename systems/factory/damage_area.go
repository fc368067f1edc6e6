package factory

import (
	"github.com/automoto/exorcist/archetypes"
	"github.com/automoto/exorcist/assets"
	"github.com/automoto/exorcist/components"
	cfg "github.com/automoto/exorcist/config"
	"github.com/automoto/exorcist/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDamageArea creates a temporary damage area centered on (x, y), as
// left behind by a Sulker.
func CreateDamageArea(ecs *ecs.ECS, x, y float64, realityIndex int) *donburi.Entry {
	size := cfg.DamageArea.Size
	return createDamageArea(ecs, x-size/2, y-size/2, size, size, realityIndex, components.DamageAreaData{
		Damage:         cfg.DamageArea.Damage,
		KnockbackForce: cfg.DamageArea.KnockbackForce,
		Interval:       cfg.DamageArea.Interval,
		Lifetime:       cfg.DamageArea.Lifetime,
	})
}

// CreateHazard creates a permanent damage area from level data.
func CreateHazard(ecs *ecs.ECS, h assets.Hazard) *donburi.Entry {
	return createDamageArea(ecs, h.X, h.Y, h.Width, h.Height, h.Reality, components.DamageAreaData{
		Damage:         h.Damage,
		KnockbackForce: cfg.DamageArea.KnockbackForce,
		Interval:       cfg.DamageArea.Interval,
		Lifetime:       -1,
	})
}

func createDamageArea(ecs *ecs.ECS, x, y, w, h float64, realityIndex int, data components.DamageAreaData) *donburi.Entry {
	area := archetypes.DamageArea.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvHazard)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = area

	components.Object.SetValue(area, components.ObjectData{Object: obj})
	components.DamageArea.SetValue(area, data)
	addToSpace(ecs, obj)
	attachReality(ecs, area, obj, realityIndex, memberActive)

	return area
}
