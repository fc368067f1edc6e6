package factory

import (
	"github.com/automoto/exorcist/archetypes"
	"github.com/automoto/exorcist/components"
	"github.com/automoto/exorcist/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeadZone creates an invisible collision zone that kills on touch
func CreateDeadZone(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	zone := archetypes.DeadZone.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvDeadZone)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = zone

	components.Object.SetValue(zone, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return zone
}
