package factory

import (
	"github.com/automoto/exorcist/archetypes"
	"github.com/automoto/exorcist/components"
	"github.com/automoto/exorcist/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall creates a solid block. realityIndex < 0 makes it shared.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64, realityIndex int) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	// Create collision object
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup
	if realityIndex >= 0 {
		obj.AddTags(tags.RealitySolid(realityIndex))
	}

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	attachReality(ecs, wall, obj, realityIndex, memberStatic)

	return wall
}
