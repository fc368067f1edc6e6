package systems

import (
	"github.com/automoto/exorcist/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every object that is in the space with the
// cells it now touches.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Object == nil || obj.Space == nil {
			continue
		}
		obj.Update()
	}
}
